package domain

import "time"

const (
	EventRecorded = "care_log_recorded"
	EventUpdated  = "care_log_updated"
)

// CareLogEvent is what carelog-svc publishes on the care-logs topic.
type CareLogEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	CareLogID  int       `json:"care_log_id"`
	ResidentID int       `json:"resident_id"`
	Status     string    `json:"status"`
	StartTime  time.Time `json:"start_time"`
	Timestamp  time.Time `json:"timestamp"`
}
