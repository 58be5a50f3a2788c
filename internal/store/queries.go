package store

const (
	tableRounds     = "rounds"
	tableRoundSlots = "round_slots"
)

var roundColumns = []string{"id", "started_at", "elapsed_ms", "succeeded", "total"}

var slotColumns = []string{"round_id", "slot", "label", "value", "latency_ms", "error_kind", "error"}

const querySummary = `
	SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE succeeded),
		COALESCE(AVG(elapsed_ms), 0)
	FROM rounds`
