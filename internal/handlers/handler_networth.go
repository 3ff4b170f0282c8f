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

// netWorthHandler handles HTTP requests related to net-worth entries.
type netWorthHandler struct {
	netWorthService portssvc.NetWorthSvcFacade
	insightsService portssvc.InsightsSvcFacade
}

func newNetWorthHandler(ns portssvc.NetWorthSvcFacade, is portssvc.InsightsSvcFacade) *netWorthHandler {
	return &netWorthHandler{netWorthService: ns, insightsService: is}
}

// registerNetWorthRoutes registers routes related to net-worth entries.
func registerNetWorthRoutes(rg *gin.RouterGroup, netWorthService portssvc.NetWorthSvcFacade, insightsService portssvc.InsightsSvcFacade) {
	h := newNetWorthHandler(netWorthService, insightsService)

	networth := rg.Group("/networth")
	{
		networth.POST("", h.createEntry)
		networth.GET("", h.listEntries)
		networth.GET("/summary", h.summary)
		networth.GET("/:id", h.getEntry)
		networth.PUT("/:id", h.updateEntry)
		networth.DELETE("/:id", h.deleteEntry)
	}
}

// createEntry godoc
// @Summary Record an asset or debt
// @Description Creates a net-worth entry (asset or debt) for the logged-in user
// @Tags networth
// @Accept json
// @Produce json
// @Param entry body dto.CreateNetWorthEntryRequest true "Entry details"
// @Success 201 {object} dto.NetWorthEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create entry"
// @Security BearerAuth
// @Router /networth [post]
func (h *netWorthHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.CreateNetWorthEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.netWorthService.CreateNetWorthEntry(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating net worth entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create net worth entry", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create entry"})
		}
		return
	}

	logger.Info("Net worth entry created", slog.String("entry_id", entry.EntryID))
	c.JSON(http.StatusCreated, dto.ToNetWorthEntryResponse(entry))
}

// listEntries godoc
// @Summary List net-worth entries
// @Description Lists the logged-in user's assets and debts
// @Tags networth
// @Produce json
// @Success 200 {object} dto.ListNetWorthEntriesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list entries"
// @Security BearerAuth
// @Router /networth [get]
func (h *netWorthHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entries, err := h.netWorthService.ListNetWorthEntries(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list net worth entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListNetWorthEntryResponse(entries))
}

// summary godoc
// @Summary Net-worth summary
// @Description Totals assets and debts and derives net worth and composition ratios
// @Tags networth
// @Produce json
// @Success 200 {object} domain.NetWorthSummary
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to compute summary"
// @Security BearerAuth
// @Router /networth/summary [get]
func (h *netWorthHandler) summary(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.insightsService.NetWorthSummary(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to compute net worth summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getEntry godoc
// @Summary Get a net-worth entry by ID
// @Description Retrieves a single entry owned by the logged-in user
// @Tags networth
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.NetWorthEntryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve entry"
// @Security BearerAuth
// @Router /networth/{id} [get]
func (h *netWorthHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	entryID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.netWorthService.GetNetWorthEntryByID(c.Request.Context(), userID, entryID)
	if err != nil {
		respondRecordError(c, logger, err, "net worth entry")
		return
	}

	c.JSON(http.StatusOK, dto.ToNetWorthEntryResponse(entry))
}

// updateEntry godoc
// @Summary Update a net-worth entry
// @Description Updates fields of an entry owned by the logged-in user
// @Tags networth
// @Accept json
// @Produce json
// @Param id path string true "Entry ID"
// @Param entry body dto.UpdateNetWorthEntryRequest true "Fields to update"
// @Success 200 {object} dto.NetWorthEntryResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Failed to update entry"
// @Security BearerAuth
// @Router /networth/{id} [put]
func (h *netWorthHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	entryID := c.Param("id")

	var req dto.UpdateNetWorthEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	entry, err := h.netWorthService.UpdateNetWorthEntry(c.Request.Context(), userID, entryID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating net worth entry", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		respondRecordError(c, logger, err, "net worth entry")
		return
	}

	logger.Info("Net worth entry updated", slog.String("entry_id", entryID))
	c.JSON(http.StatusOK, dto.ToNetWorthEntryResponse(entry))
}

// deleteEntry godoc
// @Summary Delete a net-worth entry
// @Description Permanently removes an entry owned by the logged-in user
// @Tags networth
// @Produce json
// @Param id path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Failed to delete entry"
// @Security BearerAuth
// @Router /networth/{id} [delete]
func (h *netWorthHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	entryID := c.Param("id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.netWorthService.DeleteNetWorthEntry(c.Request.Context(), userID, entryID); err != nil {
		respondRecordError(c, logger, err, "net worth entry")
		return
	}

	logger.Info("Net worth entry deleted", slog.String("entry_id", entryID))
	c.Status(http.StatusNoContent)
}
