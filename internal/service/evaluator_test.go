package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/acc-analyzer/internal/models"
)

func severities(findings []models.Finding) []models.Severity {
	out := make([]models.Severity, 0, len(findings))
	for _, f := range findings {
		out = append(out, f.Severity)
	}
	return out
}

func TestEvaluateNoHoursBeforeACEXCutoff(t *testing.T) {
	findings := Evaluate(models.EnrollmentInput{EntryYear: 2021, EntryTerm: 1})

	require.Len(t, findings, 4)
	assert.Equal(t, []models.Severity{
		models.SeverityHeader,
		models.SeverityWarning,
		models.SeverityHeader,
		models.SeverityInfo,
	}, severities(findings))
	assert.Equal(t, "Análise de ACC (Atividades Complementares)", findings[0].Message)
	assert.Contains(t, findings[1].Message, "Atualmente, você possui apenas 0")
	assert.Equal(t, "Análise de ACEX (Atividades de Extensão)", findings[2].Message)
	assert.Equal(t, "ACEX não é obrigatória para seu ingresso em 2021.1 (anterior a 2022.2).", findings[3].Message)
}

func TestEvaluateTwoQualifyingNaturesWithACEX(t *testing.T) {
	findings := Evaluate(models.EnrollmentInput{
		EntryYear: 2022,
		EntryTerm: 2,
		HoursByNature: map[models.ActivityNature]int{
			models.NatureTeaching: 20,
			models.NatureResearch: 20,
		},
		ExtensionHours: 10,
	})

	require.Len(t, findings, 6)
	assert.Equal(t, []models.Severity{
		models.SeverityHeader,
		models.SeverityInfo,
		models.SeverityInfo,
		models.SeveritySuccess,
		models.SeverityHeader,
		models.SeveritySuccess,
	}, severities(findings))
	assert.Equal(t, "Para a natureza 'Ensino' (Art. 12, inciso I), foram computadas 20h. (Limite de 120h por natureza aplicado conforme Art. 11).", findings[1].Message)
	assert.Contains(t, findings[2].Message, "'Pesquisa'")
	assert.Contains(t, findings[2].Message, "20h")
	assert.Contains(t, findings[3].Message, "Horas em 2 naturezas distintas")
	assert.Equal(t, "ACEX declarada com 10h. Este requisito é obrigatório para seu ingresso em 2022.2 (conforme Art. 38).", findings[5].Message)
}

func TestEvaluateCapsHoursAndFlagsMissingACEX(t *testing.T) {
	findings := Evaluate(models.EnrollmentInput{
		EntryYear:     2023,
		EntryTerm:     1,
		HoursByNature: map[models.ActivityNature]int{models.NatureTeaching: 150},
	})

	require.Len(t, findings, 5)
	assert.Equal(t, models.SeverityInfo, findings[1].Severity)
	assert.Contains(t, findings[1].Message, "foram computadas 120h")
	assert.Equal(t, models.SeverityWarning, findings[2].Severity)
	assert.Contains(t, findings[2].Message, "possui apenas 1")
	assert.Equal(t, models.SeverityWarning, findings[4].Severity)
	assert.Contains(t, findings[4].Message, "obrigatória para ingressantes a partir do semestre 2022.2")
}

func TestEvaluateInfoFollowsNatureOrder(t *testing.T) {
	hours := map[models.ActivityNature]int{}
	for i, nature := range models.ActivityNatures() {
		hours[nature] = i + 1
	}
	findings := Evaluate(models.EnrollmentInput{EntryYear: 2024, EntryTerm: 1, HoursByNature: hours})

	natures := models.ActivityNatures()
	require.Len(t, findings, len(natures)+4)
	for i, nature := range natures {
		assert.Contains(t, findings[i+1].Message, "'"+nature.Label()+"'")
		assert.Contains(t, findings[i+1].Message, nature.Section())
	}
}

func TestCapHours(t *testing.T) {
	for _, h := range []int{0, 1, 14, 15, 119, 120, 121, 500, 10000} {
		capped := CapHours(h)
		assert.LessOrEqual(t, capped, NatureHourCap, "hours %d", h)
		assert.LessOrEqual(t, capped, h, "hours %d", h)
		if h <= NatureHourCap {
			assert.Equal(t, h, capped)
		}
	}
}

func TestAssessDiversityThreshold(t *testing.T) {
	tests := []struct {
		name       string
		hours      map[models.ActivityNature]int
		qualifying int
		met        bool
	}{
		{"none", nil, 0, false},
		{"one at minimum", map[models.ActivityNature]int{models.NatureTeaching: 15}, 1, false},
		{"two just below", map[models.ActivityNature]int{models.NatureTeaching: 14, models.NatureResearch: 14}, 0, false},
		{"one below one above", map[models.ActivityNature]int{models.NatureTeaching: 14, models.NatureResearch: 200}, 1, false},
		{"two at minimum", map[models.ActivityNature]int{models.NatureArtAndCulture: 15, models.NatureInterdisciplinary: 15}, 2, true},
		{"all six capped", map[models.ActivityNature]int{
			models.NatureTeaching: 500, models.NatureResearch: 500, models.NatureExtension: 500,
			models.NatureArtAndCulture: 500, models.NatureUniversityAdministration: 500, models.NatureInterdisciplinary: 500,
		}, 6, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			analysis := Assess(models.EnrollmentInput{EntryYear: 2020, EntryTerm: 1, HoursByNature: tc.hours})
			assert.Len(t, analysis.QualifyingNatures, tc.qualifying)
			assert.Equal(t, tc.met, analysis.DiversityMet)

			var successes, warnings int
			for _, f := range analysis.Findings[:len(analysis.Findings)-2] {
				switch f.Severity {
				case models.SeveritySuccess:
					successes++
				case models.SeverityWarning:
					warnings++
				}
			}
			assert.Equal(t, 1, successes+warnings)
			if tc.met {
				assert.Equal(t, 1, successes)
			} else {
				assert.Equal(t, 1, warnings)
			}
			for nature, capped := range analysis.CappedHours {
				assert.LessOrEqual(t, capped, NatureHourCap, string(nature))
			}
		})
	}
}

func TestAssessACEXCohorts(t *testing.T) {
	tests := []struct {
		year, term, hours int
		want              models.ACEXStatus
		severity          models.Severity
	}{
		{2015, 1, 0, models.ACEXNotRequired, models.SeverityInfo},
		{2021, 2, 30, models.ACEXNotRequired, models.SeverityInfo},
		{2022, 1, 30, models.ACEXNotRequired, models.SeverityInfo},
		{2022, 2, 0, models.ACEXPending, models.SeverityWarning},
		{2022, 2, 1, models.ACEXMet, models.SeveritySuccess},
		{2023, 1, 0, models.ACEXPending, models.SeverityWarning},
		{2025, 2, 60, models.ACEXMet, models.SeveritySuccess},
	}

	for _, tc := range tests {
		analysis := Assess(models.EnrollmentInput{EntryYear: tc.year, EntryTerm: tc.term, ExtensionHours: tc.hours})
		assert.Equal(t, tc.want, analysis.ACEX, "%d.%d", tc.year, tc.term)
		assert.Equal(t, tc.want != models.ACEXNotRequired, RequiresACEX(tc.year, tc.term))

		last := analysis.Findings[len(analysis.Findings)-1]
		assert.Equal(t, tc.severity, last.Severity, "%d.%d", tc.year, tc.term)
		assert.Equal(t, models.SeverityHeader, analysis.Findings[len(analysis.Findings)-2].Severity)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	input := models.EnrollmentInput{
		EntryYear:      2024,
		EntryTerm:      2,
		HoursByNature:  map[models.ActivityNature]int{models.NatureExtension: 40, models.NatureUniversityAdministration: 16},
		ExtensionHours: 5,
	}
	first := Evaluate(input)
	second := Evaluate(input)
	assert.Equal(t, first, second)
	assert.Equal(t, 40, input.HoursByNature[models.NatureExtension])
}
