package service

import (
	"fmt"

	"github.com/noah-isme/acc-analyzer/internal/models"
)

// Regulatory thresholds from Resolução CONSEPE Nº 008/2024.
const (
	// NatureHourCap is the maximum hours credited per nature (Art. 11).
	NatureHourCap = 120
	// NatureMinimumHours is the minimum for a nature to count towards diversity (Art. 10 and Art. 12).
	NatureMinimumHours = 15
	// RequiredQualifyingNatures is how many distinct natures must reach the minimum.
	RequiredQualifyingNatures = 2

	acexCutoffYear = 2022
	acexCutoffTerm = 2
)

const (
	accHeader  = "Análise de ACC (Atividades Complementares)"
	acexHeader = "Análise de ACEX (Atividades de Extensão)"
)

// CapHours applies the per-nature ceiling.
func CapHours(hours int) int {
	if hours > NatureHourCap {
		return NatureHourCap
	}
	return hours
}

// RequiresACEX reports whether cohorts entering at year.term are bound by Art. 38.
func RequiresACEX(year, term int) bool {
	return year > acexCutoffYear || (year == acexCutoffYear && term == acexCutoffTerm)
}

// EntrySemester formats the entry cohort the way the institution writes it, e.g. 2022.2.
func EntrySemester(year, term int) string {
	return fmt.Sprintf("%d.%d", year, term)
}

// Evaluate runs the ACC and ACEX rules once and returns the findings in emission order.
func Evaluate(input models.EnrollmentInput) []models.Finding {
	return Assess(input).Findings
}

// Assess is Evaluate plus the classification behind each finding.
func Assess(input models.EnrollmentInput) models.Analysis {
	natures := models.ActivityNatures()
	findings := make([]models.Finding, 0, len(natures)+4)
	capped := make(map[models.ActivityNature]int, len(natures))

	findings = append(findings, models.Finding{Severity: models.SeverityHeader, Message: accHeader})
	for _, nature := range natures {
		hours := CapHours(input.HoursByNature[nature])
		capped[nature] = hours
		if hours > 0 {
			findings = append(findings, models.Finding{
				Severity: models.SeverityInfo,
				Message: fmt.Sprintf("Para a natureza '%s' (%s), foram computadas %dh. (Limite de %dh por natureza aplicado conforme Art. 11).",
					nature.Label(), nature.Section(), hours, NatureHourCap),
			})
		}
	}

	qualifying := make([]models.ActivityNature, 0, len(natures))
	for _, nature := range natures {
		if capped[nature] >= NatureMinimumHours {
			qualifying = append(qualifying, nature)
		}
	}
	diversityMet := len(qualifying) >= RequiredQualifyingNatures
	if diversityMet {
		findings = append(findings, models.Finding{
			Severity: models.SeveritySuccess,
			Message: fmt.Sprintf("Requisito cumprido: Horas em %d naturezas distintas com no mínimo %dh cada (conforme Art. 10 e Art. 12).",
				len(qualifying), NatureMinimumHours),
		})
	} else {
		findings = append(findings, models.Finding{
			Severity: models.SeverityWarning,
			Message: fmt.Sprintf("Requisito pendente: Você precisa de no mínimo %dh em pelo menos DUAS naturezas distintas. Atualmente, você possui apenas %d (conforme Art. 10 e Art. 12).",
				NatureMinimumHours, len(qualifying)),
		})
	}

	findings = append(findings, models.Finding{Severity: models.SeverityHeader, Message: acexHeader})
	semester := EntrySemester(input.EntryYear, input.EntryTerm)
	var acex models.ACEXStatus
	switch {
	case !RequiresACEX(input.EntryYear, input.EntryTerm):
		acex = models.ACEXNotRequired
		findings = append(findings, models.Finding{
			Severity: models.SeverityInfo,
			Message:  fmt.Sprintf("ACEX não é obrigatória para seu ingresso em %s (anterior a 2022.2).", semester),
		})
	case input.ExtensionHours > 0:
		acex = models.ACEXMet
		findings = append(findings, models.Finding{
			Severity: models.SeveritySuccess,
			Message: fmt.Sprintf("ACEX declarada com %dh. Este requisito é obrigatório para seu ingresso em %s (conforme Art. 38).",
				input.ExtensionHours, semester),
		})
	default:
		acex = models.ACEXPending
		findings = append(findings, models.Finding{
			Severity: models.SeverityWarning,
			Message:  "Requisito pendente: A declaração de horas de ACEX é obrigatória para ingressantes a partir do semestre 2022.2 (conforme Art. 38).",
		})
	}

	return models.Analysis{
		Findings:          findings,
		CappedHours:       capped,
		QualifyingNatures: qualifying,
		DiversityMet:      diversityMet,
		ACEX:              acex,
	}
}
