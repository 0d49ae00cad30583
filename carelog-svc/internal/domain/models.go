package domain

import (
	"errors"
	"time"
)

type CareLog struct {
	ID           int        `json:"id"`
	ResidentID   int        `json:"resident_id"`
	StaffID      int        `json:"staff_id,omitempty"`
	Title        string     `json:"title"`
	ActivityType string     `json:"activity_type,omitempty"`
	MealType     string     `json:"meal_type,omitempty"`
	Quantity     string     `json:"quantity,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	FoodItems    string     `json:"food_items,omitempty"`
	Status       string     `json:"status"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// ListFilter selects one resident's logs with From <= start_time < To.
// Zero times leave that side of the range open.
type ListFilter struct {
	ResidentID int
	From       time.Time
	To         time.Time
	Page       int
	Limit      int
}

type Page struct {
	Data    []CareLog `json:"data"`
	Page    int       `json:"page"`
	Limit   int       `json:"limit"`
	Total   int       `json:"total"`
	HasMore bool      `json:"has_more"`
}

const (
	EventRecorded = "care_log_recorded"
	EventUpdated  = "care_log_updated"
)

type Event struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	CareLogID  int       `json:"care_log_id"`
	ResidentID int       `json:"resident_id"`
	Status     string    `json:"status"`
	StartTime  time.Time `json:"start_time"`
	Timestamp  time.Time `json:"timestamp"`
}

var ErrNotFound = errors.New("care log not found")
