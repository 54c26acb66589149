// Package telemetry records engine operation counters. It is intentionally
// minimal; metrics backends can be added later under this package.
package telemetry

import (
	"github.com/rs/zerolog"
)

// Counters tallies sheet operations and reports them through the engine
// logger at debug level. Like the engine itself it is single-threaded.
type Counters struct {
	logger zerolog.Logger

	sets          int
	clears        int
	invalidations int
	rejects       map[string]int
}

// NewCounters constructs a Counters instance with the provided logger.
func NewCounters(logger zerolog.Logger) *Counters {
	return &Counters{
		logger:  logger,
		rejects: make(map[string]int),
	}
}

// RecordSet notes a committed cell edit.
func (c *Counters) RecordSet(pos string) {
	c.sets++
	c.logger.Debug().Str("pos", pos).Int("sets", c.sets).Msg("cell set")
}

// RecordReject notes a rejected edit by its rejection code.
func (c *Counters) RecordReject(code string) {
	c.rejects[code]++
	c.logger.Debug().Str("code", code).Int("count", c.rejects[code]).Msg("edit rejected")
}

// RecordClear notes a cleared cell.
func (c *Counters) RecordClear(pos string) {
	c.clears++
	c.logger.Debug().Str("pos", pos).Int("clears", c.clears).Msg("cell cleared")
}

// RecordInvalidation notes how many formula memos one edit flushed.
func (c *Counters) RecordInvalidation(n int) {
	if n == 0 {
		return
	}
	c.invalidations += n
	c.logger.Debug().Int("flushed", n).Int("invalidations", c.invalidations).Msg("cache invalidated")
}

// Snapshot returns the current tallies keyed by counter name. Rejection
// counters appear as "reject:" + code.
func (c *Counters) Snapshot() map[string]int {
	out := map[string]int{
		"sets":          c.sets,
		"clears":        c.clears,
		"invalidations": c.invalidations,
	}
	for code, n := range c.rejects {
		out["reject:"+code] = n
	}
	return out
}
