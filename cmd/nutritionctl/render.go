package main

import (
	"fmt"
	"strings"

	"carehome/consumption"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	eatenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	missedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

var dayLabels = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var columnWidths = []int{5, 11, 26, 16, 6}

func row(cells ...string) string {
	rendered := make([]string, len(cells))
	for i, c := range cells {
		rendered[i] = lipgloss.NewStyle().Width(columnWidths[i]).Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func dayLabel(d consumption.DayOfWeek) string {
	if offset, ok := d.Offset(); ok {
		return dayLabels[offset]
	}
	return string(d)
}

func progressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func renderConsumption(info consumption.ConsumptionInfo) string {
	style := eatenStyle
	if info.Ratio == 0 {
		style = missedStyle
	}
	return style.Render(info.Label) + fmt.Sprintf(" (%.0f%%)", info.Ratio*100)
}

func renderWeekly(s *weeklySummary) string {
	var b strings.Builder
	title := fmt.Sprintf("Resident %d, week of %s", s.ResidentID, s.WeekStart)
	if s.Timezone != "" {
		title += " (" + s.Timezone + ")"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	if len(s.Meals) == 0 {
		b.WriteString("No meals planned.\n")
	} else {
		b.WriteString(headerStyle.Render(row("Day", "Slot", "Dish", "Consumption", "Ratio")) + "\n")
		for _, meal := range s.Meals {
			info := meal.Consumption
			label := eatenStyle.Render(info.Label)
			if info.Ratio == 0 {
				label = missedStyle.Render(info.Label)
			}
			b.WriteString(row(
				dayLabel(meal.Item.DayOfWeek),
				string(meal.Item.MealSlot),
				meal.Item.Dish.Name,
				label,
				fmt.Sprintf("%.0f%%", info.Ratio*100),
			) + "\n")
		}
	}

	p := s.Progress
	b.WriteString(fmt.Sprintf("\n%s %d%%  %d/%d meals served\n",
		progressBar(p.ProgressPercent, 20), p.ProgressPercent, p.ServedMeals, p.TotalMeals))

	for _, w := range s.Warnings {
		b.WriteString(warningStyle.Render("warning: "+w) + "\n")
	}
	return b.String()
}
