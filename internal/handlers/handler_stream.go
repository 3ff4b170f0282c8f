package handlers

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/pennywiseapp/pennywise_backend/internal/middleware"
	"github.com/pennywiseapp/pennywise_backend/internal/platform/stream"
	"github.com/gin-gonic/gin"
)

// streamHandler exposes the record stream over Server-Sent Events.
type streamHandler struct {
	hub *stream.Hub
}

func newStreamHandler(hub *stream.Hub) *streamHandler {
	return &streamHandler{hub: hub}
}

// registerStreamRoutes registers the live record stream route.
func registerStreamRoutes(rg *gin.RouterGroup, hub *stream.Hub) {
	h := newStreamHandler(hub)

	rg.GET("/stream/:collection", h.streamCollection)
}

// streamCollection godoc
// @Summary Stream a record collection
// @Description Opens a Server-Sent Events stream of full snapshots of one record collection. The current snapshot is sent immediately, then a fresh one after every change.
// @Tags stream
// @Produce text/event-stream
// @Param collection path string true "transactions | budgets | bills | goals | networth"
// @Success 200 {object} stream.Snapshot
// @Failure 400 {object} ErrorResponse "Unknown collection"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to open stream"
// @Security BearerAuth
// @Router /stream/{collection} [get]
func (h *streamHandler) streamCollection(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	collection, ok := stream.ParseCollection(c.Param("collection"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown collection: " + c.Param("collection")})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	ch, unsubscribe, err := h.hub.Subscribe(c.Request.Context(), userID, collection)
	if err != nil {
		logger.Error("Failed to open record stream", slog.String("collection", string(collection)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to open stream"})
		return
	}
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	logger.Info("Record stream opened", slog.String("collection", string(collection)))
	c.Stream(func(w io.Writer) bool {
		select {
		case snap, open := <-ch:
			if !open {
				return false
			}
			c.SSEvent("snapshot", snap)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
