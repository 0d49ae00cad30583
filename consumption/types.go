// Package consumption infers how much of a resident's planned weekly menu was
// eaten, from the free-text care logs staff record at meal time.
//
// Everything here is a pure function of already-fetched menu items and care
// logs. Nothing is persisted.
package consumption

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type MealSlot string

const (
	Breakfast MealSlot = "Breakfast"
	Lunch     MealSlot = "Lunch"
	Afternoon MealSlot = "Afternoon"
	Dinner    MealSlot = "Dinner"
)

// MealSlots lists the slots in serving order.
var MealSlots = []MealSlot{Breakfast, Lunch, Afternoon, Dinner}

// ParseMealSlot matches s against the known slots case-insensitively.
func ParseMealSlot(s string) (MealSlot, bool) {
	s = strings.TrimSpace(s)
	for _, slot := range MealSlots {
		if strings.EqualFold(s, string(slot)) {
			return slot, true
		}
	}
	return MealSlot(s), false
}

// DayOfWeek is the day a menu item is planned for. Backends send it either as
// a number (0 = Monday) or as an English day name, so both are kept verbatim
// and normalised on demand.
type DayOfWeek string

var dayNames = map[string]int{
	"monday": 0, "mon": 0,
	"tuesday": 1, "tue": 1, "tues": 1,
	"wednesday": 2, "wed": 2,
	"thursday": 3, "thu": 3, "thur": 3, "thurs": 3,
	"friday": 4, "fri": 4,
	"saturday": 5, "sat": 5,
	"sunday": 6, "sun": 6,
}

// Day returns the DayOfWeek for a numeric offset from Monday.
func Day(offset int) DayOfWeek {
	return DayOfWeek(strconv.Itoa(offset))
}

// Offset normalises d to 0..6 counted from Monday. ok is false for anything
// that is not an integer in range or a recognised day name.
func (d DayOfWeek) Offset() (offset int, ok bool) {
	s := strings.ToLower(strings.TrimSpace(string(d)))
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, n >= 0 && n <= 6
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		if math.IsNaN(f) || f != math.Trunc(f) || f < 0 || f > 6 {
			return 0, false
		}
		return int(f), true
	}
	n, ok := dayNames[s]
	return n, ok
}

func (d *DayOfWeek) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*d = DayOfWeek(s)
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*d = ""
		return nil
	}
	// Numbers and anything else are kept as their literal text; Offset decides.
	*d = DayOfWeek(data)
	return nil
}

func (d DayOfWeek) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(d)); err == nil {
		return []byte(strconv.Itoa(n)), nil
	}
	return json.Marshal(string(d))
}

type Dish struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories,omitempty"`
	Protein  float64 `json:"protein,omitempty"`
	Fat      float64 `json:"fat,omitempty"`
	Carbs    float64 `json:"carbs,omitempty"`
}

type WeeklyMenuItem struct {
	ID        int       `json:"id"`
	WeekStart string    `json:"week_start,omitempty"`
	DayOfWeek DayOfWeek `json:"day_of_week"`
	MealSlot  MealSlot  `json:"meal_slot"`
	Servings  int       `json:"servings"`
	Dish      Dish      `json:"dish"`
}

type LogStatus string

const (
	StatusPending    LogStatus = "pending"
	StatusInProgress LogStatus = "in_progress"
	StatusCompleted  LogStatus = "completed"
)

func (s LogStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// CareLog is a staff-entered record of something done for a resident.
// StartTime stays as text: one malformed timestamp must not reject the
// whole list it arrived in.
type CareLog struct {
	ID         int       `json:"id"`
	ResidentID int       `json:"resident_id"`
	Title      string    `json:"title"`
	StartTime  string    `json:"start_time"`
	MealType   string    `json:"meal_type,omitempty"`
	Quantity   string    `json:"quantity,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	FoodItems  string    `json:"food_items,omitempty"`
	Status     LogStatus `json:"status"`
}

// ConsumptionInfo is the inferred share of a planned meal that was eaten.
type ConsumptionInfo struct {
	Label string   `json:"label"`
	Ratio float64  `json:"ratio"`
	Log   *CareLog `json:"log,omitempty"`
}

type MenuConsumption struct {
	Item        WeeklyMenuItem  `json:"item"`
	Consumption ConsumptionInfo `json:"consumption"`
}

type WeeklyProgress struct {
	TotalMeals      int     `json:"total_meals"`
	ServedMeals     int     `json:"served_meals"`
	RatioSum        float64 `json:"ratio_sum"`
	ProgressPercent int     `json:"progress_percent"`
}
