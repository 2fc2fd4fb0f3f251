package dto

import "github.com/noah-isme/acc-analyzer/internal/models"

// ACCHours captures declared hours per activity nature.
type ACCHours struct {
	Teaching                 int `json:"teaching" validate:"min=0"`
	Research                 int `json:"research" validate:"min=0"`
	Extension                int `json:"extension" validate:"min=0"`
	ArtAndCulture            int `json:"artAndCulture" validate:"min=0"`
	UniversityAdministration int `json:"universityAdministration" validate:"min=0"`
	Interdisciplinary        int `json:"interdisciplinary" validate:"min=0"`
}

// ByNature maps the payload onto the evaluator's nature keys.
func (h ACCHours) ByNature() map[models.ActivityNature]int {
	return map[models.ActivityNature]int{
		models.NatureTeaching:                 h.Teaching,
		models.NatureResearch:                 h.Research,
		models.NatureExtension:                h.Extension,
		models.NatureArtAndCulture:            h.ArtAndCulture,
		models.NatureUniversityAdministration: h.UniversityAdministration,
		models.NatureInterdisciplinary:        h.Interdisciplinary,
	}
}

// AnalyzeRequest captures POST /analyses payload.
type AnalyzeRequest struct {
	EntryYear      int      `json:"entryYear" validate:"required"`
	EntryTerm      int      `json:"entryTerm" validate:"required,oneof=1 2"`
	Hours          ACCHours `json:"hours"`
	ExtensionHours int      `json:"extensionHours" validate:"min=0"`
}

// AnalysisSummary exposes the classification behind the findings.
type AnalysisSummary struct {
	CappedHours       map[models.ActivityNature]int `json:"cappedHours"`
	QualifyingNatures []models.ActivityNature       `json:"qualifyingNatures"`
	DiversityMet      bool                          `json:"diversityMet"`
	ACEX              models.ACEXStatus             `json:"acex"`
}

// AnalysisResponse is returned by the analysis endpoint.
type AnalysisResponse struct {
	EntrySemester string           `json:"entrySemester"`
	Findings      []models.Finding `json:"findings"`
	Summary       AnalysisSummary  `json:"summary"`
}

// NatureItem describes one nature for form rendering.
type NatureItem struct {
	Code         models.ActivityNature `json:"code"`
	Label        string                `json:"label"`
	Section      string                `json:"section"`
	CapHours     int                   `json:"capHours"`
	MinimumHours int                   `json:"minimumHours"`
}
