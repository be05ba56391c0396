package manager

import (
	"encoding/json"
	"time"
)

// SessionStats summarizes one run. It is logged on exit and never written to disk.
type SessionStats struct {
	UUID      string    `json:"uuid"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Ticks     int       `json:"ticks"`
	Growths   int       `json:"growths"`
	MaxLength int       `json:"max_length"`
	Reversals int       `json:"reversals"`
}

type StateManager struct {
	stats SessionStats
}

func NewStateManager(uuid string, start time.Time) *StateManager {
	return &StateManager{
		stats: SessionStats{
			UUID:      uuid,
			StartTime: start,
			MaxLength: 1,
		},
	}
}

// RecordTick updates the counters after a tick has been applied.
func (sm *StateManager) RecordTick(length int, grew, reversed bool) {
	sm.stats.Ticks++
	if grew {
		sm.stats.Growths++
	}
	if reversed {
		sm.stats.Reversals++
	}
	if length > sm.stats.MaxLength {
		sm.stats.MaxLength = length
	}
}

func (sm *StateManager) GetStats() SessionStats {
	return sm.stats
}

// Finish stamps the end time and returns the summary encoded as JSON.
func (sm *StateManager) Finish(end time.Time) ([]byte, error) {
	sm.stats.EndTime = end
	return json.Marshal(sm.stats)
}
