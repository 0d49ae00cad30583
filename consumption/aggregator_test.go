package consumption

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_EmptyWeek(t *testing.T) {
	assert.Equal(t, WeeklyProgress{}, Aggregate(nil))
	assert.Equal(t, 0, Aggregate([]MenuConsumption{}).ProgressPercent)
}

func TestAggregate_Rounding(t *testing.T) {
	rows := []MenuConsumption{
		{Consumption: ConsumptionInfo{Ratio: 1}},
		{Consumption: ConsumptionInfo{Ratio: 0.5}},
		{Consumption: ConsumptionInfo{Ratio: 0}},
	}

	got := Aggregate(rows)
	assert.Equal(t, 3, got.TotalMeals)
	assert.Equal(t, 2, got.ServedMeals)
	assert.InDelta(t, 1.5, got.RatioSum, 1e-9)
	assert.Equal(t, 50, got.ProgressPercent)
}

func TestEvaluate_OneServedOutOfSeven(t *testing.T) {
	matcher := NewMatcher(time.UTC, nil)

	items := make([]WeeklyMenuItem, 0, 7)
	for day := 0; day < 7; day++ {
		items = append(items, WeeklyMenuItem{
			ID:        day + 1,
			DayOfWeek: Day(day),
			MealSlot:  Lunch,
			Servings:  1,
			Dish:      Dish{ID: 100 + day, Name: "Cơm"},
		})
	}
	logs := []CareLog{
		{ID: 1, StartTime: "2026-10-12T11:15:00Z", MealType: "lunch", Notes: "ăn hết", Status: StatusCompleted},
	}

	rows := matcher.Evaluate(items, logs, testWeekStart)
	require.Len(t, rows, 7)
	assert.Equal(t, 1, rows[0].Item.ID)
	assert.Equal(t, 1.0, rows[0].Consumption.Ratio)
	for _, row := range rows[1:] {
		assert.Equal(t, LabelNotRecorded, row.Consumption.Label)
		assert.Nil(t, row.Consumption.Log)
	}

	progress := Aggregate(rows)
	assert.Equal(t, 7, progress.TotalMeals)
	assert.Equal(t, 1, progress.ServedMeals)
	assert.Equal(t, 14, progress.ProgressPercent)
}

func TestByDay(t *testing.T) {
	rows := []MenuConsumption{
		{Item: WeeklyMenuItem{ID: 1, DayOfWeek: "0"}},
		{Item: WeeklyMenuItem{ID: 2, DayOfWeek: "sunday"}},
		{Item: WeeklyMenuItem{ID: 3, DayOfWeek: "mon"}},
		{Item: WeeklyMenuItem{ID: 4, DayOfWeek: "9"}},
	}

	days := ByDay(rows)
	require.Len(t, days[0], 2)
	assert.Equal(t, 1, days[0][0].Item.ID)
	assert.Equal(t, 3, days[0][1].Item.ID)
	require.Len(t, days[6], 1)
	assert.Equal(t, 2, days[6][0].Item.ID)
	for _, day := range days[1:6] {
		assert.Empty(t, day)
	}
}

func TestWeekStart(t *testing.T) {
	loc := time.FixedZone("ICT", 7*60*60)

	got, err := ParseWeekStart("2026-10-15", loc)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-12", got.Format(DateLayout))

	got, err = ParseWeekStart("2026-10-18", loc)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-12", got.Format(DateLayout))

	_, err = ParseWeekStart("12/10/2026", loc)
	assert.Error(t, err)

	// Sunday 18:00 UTC is already Monday in UTC+7.
	sunday := time.Date(2026, 10, 18, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-10-19", WeekStartOf(sunday, loc).Format(DateLayout))
}
