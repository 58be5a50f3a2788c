package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPoolStats returns a snapshot of the worker pool
// (GET /pool)
func (h *Handler) GetPoolStats(c *gin.Context) {
	c.JSON(http.StatusOK, NewPoolStatsFromModel(h.pool.Stats()))
}
