package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/pennywiseapp/pennywise_backend/internal/core/ports/services"
	"github.com/pennywiseapp/pennywise_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler handles HTTP requests for the derived reports.
type reportHandler struct {
	insightsService portssvc.InsightsSvcFacade
}

func newReportHandler(is portssvc.InsightsSvcFacade) *reportHandler {
	return &reportHandler{insightsService: is}
}

// registerReportRoutes registers the report routes.
func registerReportRoutes(rg *gin.RouterGroup, insightsService portssvc.InsightsSvcFacade) {
	h := newReportHandler(insightsService)

	reports := rg.Group("/reports")
	{
		reports.GET("/monthly", h.monthlyReport)
	}
}

// monthlyReport godoc
// @Summary Monthly financial report
// @Description Builds the current calendar month's income/expense report with per-category totals, a savings suggestion and an advice line
// @Tags reports
// @Produce json
// @Success 200 {object} domain.MonthlyReport
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build report"
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportHandler) monthlyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	report, err := h.insightsService.MonthlyReport(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to build monthly report", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
