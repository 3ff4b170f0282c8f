package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pennywiseapp/pennywise_backend/internal/apperrors"
	portssvc "github.com/pennywiseapp/pennywise_backend/internal/core/ports/services"
	"github.com/pennywiseapp/pennywise_backend/internal/dto"
	"github.com/pennywiseapp/pennywise_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// billHandler handles HTTP requests related to bills.
type billHandler struct {
	billService     portssvc.BillSvcFacade
	insightsService portssvc.InsightsSvcFacade
}

func newBillHandler(bs portssvc.BillSvcFacade, is portssvc.InsightsSvcFacade) *billHandler {
	return &billHandler{billService: bs, insightsService: is}
}

// registerBillRoutes registers routes related to bills.
func registerBillRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade, insightsService portssvc.InsightsSvcFacade) {
	h := newBillHandler(billService, insightsService)

	bills := rg.Group("/bills")
	{
		bills.POST("", h.createBill)
		bills.GET("", h.listBills)
		bills.GET("/reminders", h.billReminders)
		bills.GET("/:id", h.getBill)
		bills.PUT("/:id", h.updateBill)
		bills.DELETE("/:id", h.deleteBill)
	}
}

// createBill godoc
// @Summary Track a bill
// @Description Creates an upcoming bill with a due date for the logged-in user
// @Tags bills
// @Accept json
// @Produce json
// @Param bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.BillResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create bill"
// @Security BearerAuth
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bill, err := h.billService.CreateBill(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating bill", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create bill", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create bill"})
		}
		return
	}

	logger.Info("Bill created", slog.String("bill_id", bill.BillID))
	c.JSON(http.StatusCreated, dto.ToBillResponse(bill))
}

// listBills godoc
// @Summary List bills
// @Description Lists the logged-in user's bills ordered by due date
// @Tags bills
// @Produce json
// @Success 200 {object} dto.ListBillsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list bills"
// @Security BearerAuth
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bills, err := h.billService.ListBills(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list bills", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list bills"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBillResponse(bills))
}

// billReminders godoc
// @Summary Bill reminders
// @Description Reports upcoming and overdue bills with urgency, most urgent first
// @Tags bills
// @Produce json
// @Success 200 {object} dto.ListBillRemindersResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute bill reminders"
// @Security BearerAuth
// @Router /bills/reminders [get]
func (h *billHandler) billReminders(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	reminders, err := h.insightsService.BillReminders(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute bill reminders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute bill reminders"})
		return
	}

	c.JSON(http.StatusOK, dto.ListBillRemindersResponse{Reminders: reminders})
}

// getBill godoc
// @Summary Get a bill by ID
// @Description Retrieves a single bill owned by the logged-in user
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 200 {object} dto.BillResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve bill"
// @Security BearerAuth
// @Router /bills/{id} [get]
func (h *billHandler) getBill(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	billID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bill, err := h.billService.GetBillByID(c.Request.Context(), userID, billID)
	if err != nil {
		respondRecordError(c, logger, err, "bill")
		return
	}

	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// updateBill godoc
// @Summary Update a bill
// @Description Updates fields of a bill owned by the logged-in user
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Bill ID"
// @Param bill body dto.UpdateBillRequest true "Fields to update"
// @Success 200 {object} dto.BillResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Failure 500 {object} ErrorResponse "Failed to update bill"
// @Security BearerAuth
// @Router /bills/{id} [put]
func (h *billHandler) updateBill(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	billID := c.Param("id")

	var req dto.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	bill, err := h.billService.UpdateBill(c.Request.Context(), userID, billID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating bill", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		respondRecordError(c, logger, err, "bill")
		return
	}

	logger.Info("Bill updated", slog.String("bill_id", billID))
	c.JSON(http.StatusOK, dto.ToBillResponse(bill))
}

// deleteBill godoc
// @Summary Delete a bill
// @Description Permanently removes a bill owned by the logged-in user
// @Tags bills
// @Produce json
// @Param id path string true "Bill ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Failure 500 {object} ErrorResponse "Failed to delete bill"
// @Security BearerAuth
// @Router /bills/{id} [delete]
func (h *billHandler) deleteBill(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	billID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.billService.DeleteBill(c.Request.Context(), userID, billID); err != nil {
		respondRecordError(c, logger, err, "bill")
		return
	}

	logger.Info("Bill deleted", slog.String("bill_id", billID))
	c.Status(http.StatusNoContent)
}
