package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kubev2v/async-pool-agent/internal/services"
	srvErrors "github.com/kubev2v/async-pool-agent/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ListRounds returns the round history, newest first
// (GET /rounds)
func (h *Handler) ListRounds(c *gin.Context) {
	page := 1
	if v := c.Query("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
			return
		}
		// keeps (page-1)*pageSize within int for any accepted pageSize
		if p > math.MaxInt/maxPageSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "page is out of range"})
			return
		}
		page = p
	}

	pageSize := defaultPageSize
	if v := c.Query("pageSize"); v != "" {
		ps, err := strconv.Atoi(v)
		if err != nil || ps < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pageSize must be a positive integer"})
			return
		}
		pageSize = min(ps, maxPageSize)
	}

	params := services.RoundListParams{
		Limit:  uint64(pageSize),
		Offset: uint64((page - 1) * pageSize),
	}

	if v := c.Query("succeeded"); v != "" {
		succeeded, err := strconv.ParseBool(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "succeeded must be a boolean"})
			return
		}
		params.Succeeded = &succeeded
	}

	result, err := h.roundSrv.List(c.Request.Context(), params)
	if err != nil {
		zap.S().Named("round_handler").Errorw("failed to list rounds", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list rounds"})
		return
	}

	pageCount := (result.Total + pageSize - 1) / pageSize
	if pageCount == 0 {
		pageCount = 1
	}

	rounds := make([]RoundResponse, 0, len(result.Rounds))
	for _, r := range result.Rounds {
		rounds = append(rounds, NewRoundFromModel(r))
	}

	c.JSON(http.StatusOK, RoundListResponse{
		Page:      page,
		PageCount: pageCount,
		Total:     result.Total,
		Rounds:    rounds,
	})
}

// GetRound returns one round with its slots
// (GET /rounds/{id})
func (h *Handler) GetRound(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid round id"})
		return
	}

	round, err := h.roundSrv.Get(c.Request.Context(), id)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		zap.S().Named("round_handler").Errorw("failed to get round", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get round"})
		return
	}

	c.JSON(http.StatusOK, NewRoundFromModel(*round))
}

// GetRoundSummary returns totals over the round history
// (GET /rounds/summary)
func (h *Handler) GetRoundSummary(c *gin.Context) {
	summary, err := h.roundSrv.Summary(c.Request.Context())
	if err != nil {
		zap.S().Named("round_handler").Errorw("failed to summarize rounds", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to summarize rounds"})
		return
	}

	c.JSON(http.StatusOK, NewRoundSummaryFromModel(*summary))
}

// RunRound runs one round on demand. A failed round is still a 200: the
// slot errors are part of the body.
// (POST /rounds)
func (h *Handler) RunRound(c *gin.Context) {
	round, err := h.roundSrv.Run(c.Request.Context())
	if round == nil {
		zap.S().Named("round_handler").Errorw("failed to run round", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to run round"})
		return
	}

	resp := NewRoundFromModel(*round)
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusOK, resp)
}
