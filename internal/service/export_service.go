package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/acc-analyzer/internal/dto"
	"github.com/noah-isme/acc-analyzer/internal/models"
	appErrors "github.com/noah-isme/acc-analyzer/pkg/errors"
	"github.com/noah-isme/acc-analyzer/pkg/export"
)

const (
	columnSection = "Seção"
	columnKind    = "Tipo"
	columnMessage = "Mensagem"

	exportTitle = "Analisador de ACC e ACEX - UFAPE"
)

type analysisRunner interface {
	Analyze(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalysisResponse, error)
}

type exportRecorder interface {
	RecordExport(format string)
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// ExportResult carries a rendered analysis document.
type ExportResult struct {
	Filename    string
	ContentType string
	Format      models.ExportFormat
	Content     []byte
}

// ExportService renders analyses as downloadable documents. Nothing is stored.
type ExportService struct {
	analyses analysisRunner
	csv      csvRenderer
	pdf      pdfRenderer
	metrics  exportRecorder
	logger   *zap.Logger
}

// NewExportService constructs an ExportService.
func NewExportService(analyses analysisRunner, metrics exportRecorder, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter(export.WithBOM())
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{
		analyses: analyses,
		csv:      csv,
		pdf:      pdf,
		metrics:  metrics,
		logger:   logger,
	}
}

// ParseFormat normalises a user supplied format name.
func ParseFormat(raw string) (models.ExportFormat, error) {
	switch models.ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case models.ExportFormatCSV:
		return models.ExportFormatCSV, nil
	case models.ExportFormatPDF, "":
		return models.ExportFormatPDF, nil
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", raw))
	}
}

// Render analyses the declaration and renders the findings in the requested format.
func (s *ExportService) Render(ctx context.Context, req dto.AnalyzeRequest, format models.ExportFormat) (*ExportResult, error) {
	if format != models.ExportFormatCSV && format != models.ExportFormatPDF {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
	analysis, err := s.analyses.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	dataset := buildFindingsDataset(analysis)
	result := &ExportResult{
		Filename: fmt.Sprintf("analise-acc-acex-%s.%s", analysis.EntrySemester, format),
		Format:   format,
	}
	switch format {
	case models.ExportFormatCSV:
		result.ContentType = "text/csv; charset=utf-8"
		result.Content, err = s.csv.Render(dataset)
	case models.ExportFormatPDF:
		result.ContentType = "application/pdf"
		result.Content, err = s.pdf.Render(dataset, exportTitle)
	}
	if err != nil {
		s.logger.Error("render analysis export", zap.String("format", string(format)), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render analysis document")
	}
	if s.metrics != nil {
		s.metrics.RecordExport(string(format))
	}
	return result, nil
}

func buildFindingsDataset(analysis *dto.AnalysisResponse) export.Dataset {
	dataset := export.Dataset{
		Headers:    []string{columnSection, columnKind, columnMessage},
		Rows:       make([]map[string]string, 0, len(analysis.Findings)),
		KindColumn: columnKind,
		Preamble: []string{
			"Resolução CONSEPE Nº 008/2024",
			fmt.Sprintf("Semestre de ingresso: %s", analysis.EntrySemester),
		},
	}
	section := ""
	for _, finding := range analysis.Findings {
		if finding.Severity == models.SeverityHeader {
			section = finding.Message
		}
		dataset.Rows = append(dataset.Rows, map[string]string{
			columnSection: section,
			columnKind:    string(finding.Severity),
			columnMessage: finding.Message,
		})
	}
	return dataset
}
