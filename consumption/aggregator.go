package consumption

import "math"

// Aggregate rolls classified menu items up into weekly progress. An empty
// week reports 0%.
func Aggregate(rows []MenuConsumption) WeeklyProgress {
	progress := WeeklyProgress{TotalMeals: len(rows)}
	for _, row := range rows {
		progress.RatioSum += row.Consumption.Ratio
		if row.Consumption.Ratio > 0 {
			progress.ServedMeals++
		}
	}
	if progress.TotalMeals > 0 {
		progress.ProgressPercent = int(math.Round(progress.RatioSum / float64(progress.TotalMeals) * 100))
	}
	return progress
}

// ByDay splits rows by normalised day offset. Items whose day cannot be
// normalised are left out of every day but still count in Aggregate.
func ByDay(rows []MenuConsumption) [7][]MenuConsumption {
	var days [7][]MenuConsumption
	for _, row := range rows {
		if offset, ok := row.Item.DayOfWeek.Offset(); ok {
			days[offset] = append(days[offset], row)
		}
	}
	return days
}
