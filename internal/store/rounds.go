package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/kubev2v/async-pool-agent/internal/models"
	srvErrors "github.com/kubev2v/async-pool-agent/pkg/errors"
)

// RoundStore keeps the summary of every fan-out round.
type RoundStore struct {
	db *sql.DB
}

func NewRoundStore(db *sql.DB) *RoundStore {
	return &RoundStore{db: db}
}

// Save stores a round and its slots in one transaction.
func (s *RoundStore) Save(ctx context.Context, r *models.AggregateResult) error {
	var total any
	if r.Succeeded {
		total = r.Sum
	}

	roundQuery, roundArgs, err := sq.Insert(tableRounds).
		Columns(roundColumns...).
		Values(r.RoundID.String(), r.StartedAt.UTC(), r.Elapsed.Milliseconds(), r.Succeeded, total).
		ToSql()
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, roundQuery, roundArgs...); err != nil {
		return fmt.Errorf("failed to insert round: %w", err)
	}

	if len(r.Slots) > 0 {
		builder := sq.Insert(tableRoundSlots).Columns(slotColumns...)
		for _, slot := range r.Slots {
			var value, kind, msg any
			if slot.Ok() {
				value = slot.Value
			} else {
				kind = slot.ErrorKind
				msg = slot.Error
			}
			builder = builder.Values(r.RoundID.String(), slot.Slot, slot.Label, value, slot.Latency.Milliseconds(), kind, msg)
		}

		slotQuery, slotArgs, err := builder.ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, slotQuery, slotArgs...); err != nil {
			return fmt.Errorf("failed to insert round slots: %w", err)
		}
	}

	return tx.Commit()
}

// Get retrieves one round with its slots.
func (s *RoundStore) Get(ctx context.Context, id uuid.UUID) (*models.AggregateResult, error) {
	rounds, err := s.List(ctx, func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"id": id.String()})
	})
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, srvErrors.NewRoundNotFoundError(id.String())
	}
	return &rounds[0], nil
}

// List returns rounds, newest first.
func (s *RoundStore) List(ctx context.Context, opts ...ListOption) ([]models.AggregateResult, error) {
	builder := sq.Select(roundColumns...).From(tableRounds).OrderBy("started_at DESC", "id")
	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		rounds []models.AggregateResult
		ids    []string
	)
	for rows.Next() {
		var (
			r         models.AggregateResult
			id        string
			elapsedMs int64
			total     sql.NullInt64
		)
		if err := rows.Scan(&id, &r.StartedAt, &elapsedMs, &r.Succeeded, &total); err != nil {
			return nil, err
		}
		if r.RoundID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
		r.Sum = int(total.Int64)
		rounds = append(rounds, r)
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(rounds) == 0 {
		return rounds, nil
	}

	slots, err := s.slots(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range rounds {
		rounds[i].Slots = slots[rounds[i].RoundID.String()]
		for _, slot := range rounds[i].Slots {
			rounds[i].PerTaskLatency = append(rounds[i].PerTaskLatency, slot.Latency)
		}
	}

	return rounds, nil
}

func (s *RoundStore) slots(ctx context.Context, roundIDs []string) (map[string][]models.SlotResult, error) {
	query, args, err := sq.Select(slotColumns...).
		From(tableRoundSlots).
		Where(sq.Eq{"round_id": roundIDs}).
		OrderBy("round_id", "slot").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]models.SlotResult, len(roundIDs))
	for rows.Next() {
		var (
			roundID   string
			slot      models.SlotResult
			value     sql.NullInt64
			latencyMs int64
			kind      sql.NullString
			msg       sql.NullString
		)
		if err := rows.Scan(&roundID, &slot.Slot, &slot.Label, &value, &latencyMs, &kind, &msg); err != nil {
			return nil, err
		}
		slot.Value = int(value.Int64)
		slot.Latency = time.Duration(latencyMs) * time.Millisecond
		slot.ErrorKind = kind.String
		slot.Error = msg.String
		result[roundID] = append(result[roundID], slot)
	}

	return result, rows.Err()
}

// Count returns the number of rounds matching opts, ignoring pagination.
func (s *RoundStore) Count(ctx context.Context, opts ...ListOption) (int, error) {
	builder := sq.Select("COUNT(*)").From(tableRounds)
	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&count)
	return count, err
}

func (s *RoundStore) Summary(ctx context.Context) (*models.RoundSummary, error) {
	var (
		summary   models.RoundSummary
		avgMillis float64
	)
	err := s.db.QueryRowContext(ctx, querySummary).Scan(&summary.Total, &summary.Succeeded, &avgMillis)
	if errors.Is(err, sql.ErrNoRows) {
		return &summary, nil
	}
	if err != nil {
		return nil, err
	}
	summary.Failed = summary.Total - summary.Succeeded
	summary.AvgElapsed = time.Duration(avgMillis * float64(time.Millisecond))
	return &summary, nil
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func BySucceeded(succeeded bool) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.Eq{"succeeded": succeeded})
	}
}

func ByStartedAfter(t time.Time) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Where(sq.GtOrEq{"started_at": t.UTC()})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}
