package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/acc-analyzer/internal/dto"
	"github.com/noah-isme/acc-analyzer/internal/models"
	appErrors "github.com/noah-isme/acc-analyzer/pkg/errors"
)

type analysisRecorder interface {
	RecordAnalysis(analysis models.Analysis)
}

// AnalysisServiceConfig bounds what the form may submit.
type AnalysisServiceConfig struct {
	MinEntryYear     int
	MaxEntryYear     int
	MaxDeclaredHours int
}

// AnalysisService validates student declarations and runs the requirement evaluator.
type AnalysisService struct {
	validator *validator.Validate
	metrics   analysisRecorder
	logger    *zap.Logger
	cfg       AnalysisServiceConfig
}

// NewAnalysisService constructs an AnalysisService.
func NewAnalysisService(validate *validator.Validate, metrics analysisRecorder, logger *zap.Logger, cfg AnalysisServiceConfig) *AnalysisService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return &AnalysisService{validator: validate, metrics: metrics, logger: logger, cfg: cfg}
}

// Analyze evaluates the declaration and returns the ordered findings with their summary.
func (s *AnalysisService) Analyze(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalysisResponse, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	input := models.EnrollmentInput{
		EntryYear:      req.EntryYear,
		EntryTerm:      req.EntryTerm,
		HoursByNature:  req.Hours.ByNature(),
		ExtensionHours: req.ExtensionHours,
	}
	analysis := Assess(input)
	if s.metrics != nil {
		s.metrics.RecordAnalysis(analysis)
	}

	semester := EntrySemester(req.EntryYear, req.EntryTerm)
	s.logger.Debug("analysis completed",
		zap.String("entry_semester", semester),
		zap.Int("qualifying_natures", len(analysis.QualifyingNatures)),
		zap.Bool("diversity_met", analysis.DiversityMet),
		zap.String("acex", string(analysis.ACEX)),
	)

	return &dto.AnalysisResponse{
		EntrySemester: semester,
		Findings:      analysis.Findings,
		Summary: dto.AnalysisSummary{
			CappedHours:       analysis.CappedHours,
			QualifyingNatures: analysis.QualifyingNatures,
			DiversityMet:      analysis.DiversityMet,
			ACEX:              analysis.ACEX,
		},
	}, nil
}

// Natures lists the activity natures with their thresholds.
func (s *AnalysisService) Natures(ctx context.Context) []dto.NatureItem {
	natures := models.ActivityNatures()
	items := make([]dto.NatureItem, 0, len(natures))
	for _, nature := range natures {
		items = append(items, dto.NatureItem{
			Code:         nature,
			Label:        nature.Label(),
			Section:      nature.Section(),
			CapHours:     NatureHourCap,
			MinimumHours: NatureMinimumHours,
		})
	}
	return items
}

func (s *AnalysisService) validate(req dto.AnalyzeRequest) error {
	if err := s.validator.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			field, message := describeFieldError(fieldErrs[0])
			return appErrors.WithField(appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, message), field)
		}
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid analysis payload")
	}
	if (s.cfg.MinEntryYear > 0 && req.EntryYear < s.cfg.MinEntryYear) || (s.cfg.MaxEntryYear > 0 && req.EntryYear > s.cfg.MaxEntryYear) {
		return appErrors.WithField(appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("entryYear must be between %d and %d", s.cfg.MinEntryYear, s.cfg.MaxEntryYear)), "entryYear")
	}
	if s.cfg.MaxDeclaredHours > 0 {
		for _, declared := range declaredHours(req) {
			if declared.hours > s.cfg.MaxDeclaredHours {
				return appErrors.WithField(appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("%s must not exceed %dh", declared.field, s.cfg.MaxDeclaredHours)), declared.field)
			}
		}
	}
	return nil
}

type declaredField struct {
	field string
	hours int
}

func declaredHours(req dto.AnalyzeRequest) []declaredField {
	return []declaredField{
		{"hours.teaching", req.Hours.Teaching},
		{"hours.research", req.Hours.Research},
		{"hours.extension", req.Hours.Extension},
		{"hours.artAndCulture", req.Hours.ArtAndCulture},
		{"hours.universityAdministration", req.Hours.UniversityAdministration},
		{"hours.interdisciplinary", req.Hours.Interdisciplinary},
		{"extensionHours", req.ExtensionHours},
	}
}

func describeFieldError(fe validator.FieldError) (string, string) {
	field := strings.TrimPrefix(fe.Namespace(), "AnalyzeRequest.")
	switch fe.Tag() {
	case "required":
		return field, fmt.Sprintf("%s is required", field)
	case "oneof":
		return field, fmt.Sprintf("%s must be one of [%s]", field, fe.Param())
	case "min":
		return field, fmt.Sprintf("%s must be at least %s", field, fe.Param())
	default:
		return field, fmt.Sprintf("%s is invalid", field)
	}
}
