package domain

import (
	"time"

	"carehome/consumption"
)

type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Servings int     `json:"servings"`
}

type SlotNutrition struct {
	DayOfWeek int             `json:"day_of_week"`
	MealSlot  string          `json:"meal_slot"`
	Totals    NutritionTotals `json:"totals"`
}

type DayNutrition struct {
	DayOfWeek int             `json:"day_of_week"`
	Totals    NutritionTotals `json:"totals"`
}

// NutritionReport is menu-svc's planned nutrition for a week. It is shown
// next to the consumption figures and never feeds into them.
type NutritionReport struct {
	WeekStart string          `json:"week_start"`
	Slots     []SlotNutrition `json:"slots"`
	Days      []DayNutrition  `json:"days"`
	Week      NutritionTotals `json:"week"`
}

type DaySummary struct {
	DayOfWeek int                           `json:"day_of_week"`
	Date      string                        `json:"date"`
	Meals     []consumption.MenuConsumption `json:"meals"`
	Progress  consumption.WeeklyProgress    `json:"progress"`
	Planned   *NutritionTotals              `json:"planned,omitempty"`
}

type WeeklySummary struct {
	ResidentID  int                           `json:"resident_id"`
	WeekStart   string                        `json:"week_start"`
	Timezone    string                        `json:"timezone"`
	Progress    consumption.WeeklyProgress    `json:"progress"`
	Meals       []consumption.MenuConsumption `json:"meals"`
	Days        []DaySummary                  `json:"days"`
	Nutrition   *NutritionReport              `json:"nutrition,omitempty"`
	Warnings    []string                      `json:"warnings,omitempty"`
	GeneratedAt time.Time                     `json:"generated_at"`
}

// Partial reports whether any source failed while building the summary.
func (s *WeeklySummary) Partial() bool {
	return len(s.Warnings) > 0
}

type ResidentActivity struct {
	ResidentID int `json:"resident_id"`
	Logs       int `json:"logs"`
}

type ActivityReport struct {
	Date      string             `json:"date"`
	Residents []ResidentActivity `json:"residents"`
}
