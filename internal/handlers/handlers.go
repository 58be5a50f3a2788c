package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/kubev2v/async-pool-agent/internal/services"
	"github.com/kubev2v/async-pool-agent/pkg/pool"
)

type PoolStats interface {
	Stats() pool.Stats
}

type Handler struct {
	roundSrv *services.RoundService
	pool     PoolStats
}

func New(roundSrv *services.RoundService, p PoolStats) *Handler {
	return &Handler{
		roundSrv: roundSrv,
		pool:     p,
	}
}

// RegisterHandlers mounts the API routes on a group prefixed with /api/v1.
func RegisterHandlers(router *gin.RouterGroup, h *Handler) {
	router.GET("/pool", h.GetPoolStats)
	router.GET("/rounds", h.ListRounds)
	router.POST("/rounds", h.RunRound)
	router.GET("/rounds/summary", h.GetRoundSummary)
	router.GET("/rounds/:id", h.GetRound)
}
