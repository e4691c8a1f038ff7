package models

import "time"

// Record aggregates play history for one level across sessions. High
// only ever goes up; History is most-recent-first and capped by the
// record service.
type Record struct {
	Plays   int           `json:"plays"`
	High    int           `json:"high"`
	Last    int           `json:"last"`
	History []RecordEntry `json:"history"`
}

// RecordEntry is one completed session in a level's history.
type RecordEntry struct {
	At    time.Time `json:"at"`
	Score int       `json:"score"`
}
