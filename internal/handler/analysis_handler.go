package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/acc-analyzer/internal/dto"
	"github.com/noah-isme/acc-analyzer/internal/models"
	"github.com/noah-isme/acc-analyzer/internal/service"
	appErrors "github.com/noah-isme/acc-analyzer/pkg/errors"
	"github.com/noah-isme/acc-analyzer/pkg/response"
)

type analysisService interface {
	Analyze(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalysisResponse, error)
	Natures(ctx context.Context) []dto.NatureItem
}

type exportService interface {
	Render(ctx context.Context, req dto.AnalyzeRequest, format models.ExportFormat) (*service.ExportResult, error)
}

// AnalysisHandler exposes the requirement analysis endpoints.
type AnalysisHandler struct {
	service analysisService
	exports exportService
}

// NewAnalysisHandler builds a new handler. A nil export service disables downloads.
func NewAnalysisHandler(service analysisService, exports exportService) *AnalysisHandler {
	return &AnalysisHandler{service: service, exports: exports}
}

// RegisterRoutes mounts the analysis endpoints on the given group.
func (h *AnalysisHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/natures", h.Natures)
	rg.POST("/analyses", h.Analyze)
	rg.POST("/analyses/export", h.Export)
}

// Natures godoc
// @Summary List activity natures
// @Tags Analyses
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /natures [get]
func (h *AnalysisHandler) Natures(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Natures(c.Request.Context()))
}

// Analyze godoc
// @Summary Analyze ACC and ACEX requirements
// @Tags Analyses
// @Accept json
// @Produce json
// @Param payload body dto.AnalyzeRequest true "Declared hours"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /analyses [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid analysis payload"))
		return
	}
	result, err := h.service.Analyze(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Export godoc
// @Summary Download the analysis as CSV or PDF
// @Tags Analyses
// @Accept json
// @Produce application/pdf,text/csv
// @Param format query string false "csv or pdf (default pdf)"
// @Param payload body dto.AnalyzeRequest true "Declared hours"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Router /analyses/export [post]
func (h *AnalysisHandler) Export(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrFeatureDisabled, "analysis exports are disabled"))
		return
	}
	format, err := service.ParseFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid analysis payload"))
		return
	}
	result, err := h.exports.Render(c.Request.Context(), req, format)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, result.Filename, result.ContentType, result.Content)
}
