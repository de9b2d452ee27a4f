package handler

import (
	"net/http"

	"github.com/fundr-ph/donation-ledger/internal/domain/entity"
	domainerr "github.com/fundr-ph/donation-ledger/internal/domain/error"
	coreport "github.com/fundr-ph/donation-ledger/internal/domain/port/core"
	reportUseCase "github.com/fundr-ph/donation-ledger/internal/domain/usecase/report"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/fundr-ph/donation-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles admin report HTTP requests
type ReportHandler struct {
	reportService *reportUseCase.Service
	logger        coreport.Logger
}

// NewReportHandler creates a new report handler instance
func NewReportHandler(reportService *reportUseCase.Service, logger coreport.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// GetReport handles the GET /admin/report endpoint
func (h *ReportHandler) GetReport(c *gin.Context) {
	caller, ok := middleware.CallerIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrUnauthenticated),
			Message: "Authentication required",
		})
		return
	}

	filterCategory := c.Query("category")

	summary, err := h.reportService.Summarize(c.Request.Context(), caller, filterCategory)
	if err != nil {
		h.logger.Error("Error building report", map[string]any{
			"userId":   caller.UserID,
			"category": filterCategory,
			"error":    err.Error(),
		})
		c.JSON(httpStatus(err), dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, toReportResponse(summary))
}

// toReportResponse maps a report summary to its API representation
func toReportResponse(summary *reportUseCase.Summary) dto.ReportResponse {
	perCategory := make(map[string]string, len(summary.PerCategoryTotal))
	for category, total := range summary.PerCategoryTotal {
		perCategory[string(category)] = entity.FormatCentavos(total)
	}

	ranking := make([]dto.DonorRankResponse, 0, len(summary.DonorRanking))
	for _, rank := range summary.DonorRanking {
		ranking = append(ranking, dto.DonorRankResponse{
			UserID:       rank.UserID,
			Email:        rank.Email,
			DisplayName:  rank.DisplayName,
			TotalDonated: entity.FormatCentavos(rank.TotalCentavos),
		})
	}

	return dto.ReportResponse{
		PerCategoryTotal: perCategory,
		GrandTotal:       entity.FormatCentavos(summary.GrandTotal),
		DonorCount:       summary.DonorCount,
		DonorRanking:     ranking,
	}
}
