// Package store implements the data access layer for the async-pool-agent.
//
// The round history lives in an in-memory DuckDB database. It is rebuilt by
// migrations at every start and is lost when the agent exits.
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────┐
//	│                Store (facade)               │
//	├─────────────────────────────────────────────┤
//	│                 RoundStore                  │
//	│                     ▼                       │
//	│            rounds, round_slots              │
//	└─────────────────────────────────────────────┘
//
// Tables created by migrations (internal/store/migrations/sql/):
//
//	┌────────────────────┬───────────────────────────────────────────┐
//	│  Table             │  Purpose                                  │
//	├────────────────────┼───────────────────────────────────────────┤
//	│  rounds            │  One row per fan-out round                │
//	│  round_slots       │  One row per slot of a round              │
//	│  schema_migrations │  Migration version tracking               │
//	└────────────────────┴───────────────────────────────────────────┘
//
// # RoundStore
//
// Methods:
//   - Save(ctx, round) → error (round and slots in one transaction)
//   - Get(ctx, id) → *models.AggregateResult or ResourceNotFoundError
//   - List(ctx, opts...) → []models.AggregateResult, newest first
//   - Count(ctx, opts...) → int
//   - Summary(ctx) → *models.RoundSummary
//
// A failed round is stored with a NULL total; its slots carry error_kind
// and error instead of a value.
//
// List Options:
//
//	rounds, err := store.Rounds().List(ctx,
//	    store.BySucceeded(false),
//	    store.WithLimit(20),
//	    store.WithOffset(40),
//	)
//
//   - BySucceeded(bool)         WHERE succeeded = ?
//   - ByStartedAfter(time.Time) WHERE started_at >= ?
//   - WithLimit(uint64)         LIMIT n
//   - WithOffset(uint64)        OFFSET n
//
// Count accepts the same options; pass only the filters to get the total
// for pagination.
package store
