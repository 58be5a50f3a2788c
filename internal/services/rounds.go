package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/kubev2v/async-pool-agent/internal/models"
	"github.com/kubev2v/async-pool-agent/internal/store"
)

type RoundListParams struct {
	Succeeded *bool
	Limit     uint64
	Offset    uint64
}

type RoundListResult struct {
	Rounds []models.AggregateResult
	Total  int
}

// RoundService reads the round history and runs rounds on demand.
type RoundService struct {
	store       *store.RoundStore
	coordinator *JoinCoordinator
}

func NewRoundService(s *store.RoundStore, coordinator *JoinCoordinator) *RoundService {
	return &RoundService{
		store:       s,
		coordinator: coordinator,
	}
}

func (r *RoundService) List(ctx context.Context, params RoundListParams) (*RoundListResult, error) {
	var filters []store.ListOption
	if params.Succeeded != nil {
		filters = append(filters, store.BySucceeded(*params.Succeeded))
	}

	total, err := r.store.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	opts := filters
	if params.Limit > 0 {
		opts = append(opts, store.WithLimit(params.Limit))
	}
	if params.Offset > 0 {
		opts = append(opts, store.WithOffset(params.Offset))
	}

	rounds, err := r.store.List(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return &RoundListResult{Rounds: rounds, Total: total}, nil
}

func (r *RoundService) Get(ctx context.Context, id uuid.UUID) (*models.AggregateResult, error) {
	return r.store.Get(ctx, id)
}

func (r *RoundService) Summary(ctx context.Context) (*models.RoundSummary, error) {
	return r.store.Summary(ctx)
}

// Run executes one round outside the schedule. The round is recorded like
// any scheduled round; a failed round is returned together with its error.
func (r *RoundService) Run(ctx context.Context) (*models.AggregateResult, error) {
	return r.coordinator.RunRound(ctx)
}
