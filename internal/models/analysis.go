package models

// ActivityNature enumerates the complementary-activity categories recognised by the regulation.
type ActivityNature string

// Supported natures, in the order the regulation lists them.
const (
	NatureTeaching                 ActivityNature = "teaching"
	NatureResearch                 ActivityNature = "research"
	NatureExtension                ActivityNature = "extension"
	NatureArtAndCulture            ActivityNature = "art_and_culture"
	NatureUniversityAdministration ActivityNature = "university_administration"
	NatureInterdisciplinary        ActivityNature = "interdisciplinary"
)

var natureOrder = []ActivityNature{
	NatureTeaching,
	NatureResearch,
	NatureExtension,
	NatureArtAndCulture,
	NatureUniversityAdministration,
	NatureInterdisciplinary,
}

var natureLabels = map[ActivityNature]string{
	NatureTeaching:                 "Ensino",
	NatureResearch:                 "Pesquisa",
	NatureExtension:                "Extensão",
	NatureArtAndCulture:            "Arte e Cultura",
	NatureUniversityAdministration: "Administração Univ.",
	NatureInterdisciplinary:        "Interdisciplinar",
}

var natureSections = map[ActivityNature]string{
	NatureTeaching:                 "Art. 12, inciso I",
	NatureResearch:                 "Art. 12, inciso II",
	NatureExtension:                "Art. 12, inciso III",
	NatureArtAndCulture:            "Art. 12, inciso IV",
	NatureUniversityAdministration: "Art. 12, inciso V",
	NatureInterdisciplinary:        "Art. 12, inciso VI",
}

// ActivityNatures returns every nature in regulation order. The slice is a fresh copy.
func ActivityNatures() []ActivityNature {
	out := make([]ActivityNature, len(natureOrder))
	copy(out, natureOrder)
	return out
}

// Label returns the display name shown to students.
func (n ActivityNature) Label() string {
	if label, ok := natureLabels[n]; ok {
		return label
	}
	return string(n)
}

// Section returns the regulatory section defining the nature.
func (n ActivityNature) Section() string {
	return natureSections[n]
}

// Valid reports whether n is one of the enumerated natures.
func (n ActivityNature) Valid() bool {
	_, ok := natureLabels[n]
	return ok
}

// EnrollmentInput is the flat record the presentation layer hands to the evaluator.
type EnrollmentInput struct {
	EntryYear      int
	EntryTerm      int
	HoursByNature  map[ActivityNature]int
	ExtensionHours int
}

// Severity tags a finding for presentation grouping.
type Severity string

// Finding severities.
const (
	SeverityHeader  Severity = "header"
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
)

// Finding is a single reported outcome of an evaluation.
type Finding struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// ACEXStatus classifies the mandatory extension-hours rule.
type ACEXStatus string

// ACEX outcomes.
const (
	ACEXMet         ACEXStatus = "met"
	ACEXPending     ACEXStatus = "pending"
	ACEXNotRequired ACEXStatus = "not_required"
)

// Analysis bundles the ordered findings with the classification they were derived from.
type Analysis struct {
	Findings          []Finding
	CappedHours       map[ActivityNature]int
	QualifyingNatures []ActivityNature
	DiversityMet      bool
	ACEX              ACEXStatus
}

// ExportFormat enumerates downloadable analysis formats.
type ExportFormat string

// Supported export formats.
const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)
