package consumption

import (
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// DefaultSlotKeywords are the meal-type tags, English and Vietnamese, that
// identify a care log as belonging to a slot.
var DefaultSlotKeywords = map[MealSlot][]string{
	Breakfast: {"breakfast", "sáng", "morning"},
	Lunch:     {"lunch", "trưa", "midday"},
	Afternoon: {"afternoon", "chiều", "snack", "xế"},
	Dinner:    {"dinner", "tối", "evening", "supper"},
}

// Matcher pairs menu items with the care log that best describes how the
// meal went. Calendar days are evaluated in the matcher's location.
type Matcher struct {
	loc      *time.Location
	keywords map[MealSlot][]string
}

// NewMatcher builds a matcher for loc. extra keywords are appended to the
// defaults of their slot; slots outside the defaults are accepted too.
func NewMatcher(loc *time.Location, extra map[MealSlot][]string) *Matcher {
	if loc == nil {
		loc = time.UTC
	}
	keywords := make(map[MealSlot][]string, len(DefaultSlotKeywords))
	for slot, words := range DefaultSlotKeywords {
		keywords[slot] = foldAll(words)
	}
	for slot, words := range extra {
		if known, ok := ParseMealSlot(string(slot)); ok {
			slot = known
		}
		keywords[slot] = append(keywords[slot], foldAll(words)...)
	}
	return &Matcher{loc: loc, keywords: keywords}
}

func (m *Matcher) Location() *time.Location {
	return m.loc
}

// Keywords returns the folded keywords for slot, nil when it has none.
func (m *Matcher) Keywords(slot MealSlot) []string {
	if known, ok := ParseMealSlot(string(slot)); ok {
		slot = known
	}
	return m.keywords[slot]
}

// Match picks the single care log that best describes item, or nil.
//
// Candidates are the logs starting on the item's calendar date. Logs tagged
// with one of the slot's keywords narrow that set unless none are tagged.
// Within the candidates a log mentioning the dish by name wins; otherwise
// the first candidate does. Bad dates never error, they just don't match.
func (m *Matcher) Match(item WeeklyMenuItem, logs []CareLog, weekStart time.Time) *CareLog {
	if weekStart.IsZero() {
		return nil
	}
	offset, ok := item.DayOfWeek.Offset()
	if !ok {
		return nil
	}
	target := time.Date(weekStart.Year(), weekStart.Month(), weekStart.Day()+offset, 0, 0, 0, 0, m.loc)

	var sameDay []int
	for i := range logs {
		start, ok := ParseTimestamp(logs[i].StartTime, m.loc)
		if !ok || !sameDate(start, target) {
			continue
		}
		sameDay = append(sameDay, i)
	}
	if len(sameDay) == 0 {
		return nil
	}

	candidates := sameDay
	if words := m.Keywords(item.MealSlot); len(words) > 0 {
		var inSlot []int
		for _, i := range sameDay {
			if containsAny(fold(logs[i].MealType), words) {
				inSlot = append(inSlot, i)
			}
		}
		if len(inSlot) > 0 {
			candidates = inSlot
		}
	}

	chosen := candidates[0]
	if dish := fold(item.Dish.Name); strings.TrimSpace(dish) != "" {
		for _, i := range candidates {
			if strings.Contains(logText(logs[i]), dish) {
				chosen = i
				break
			}
		}
	}

	found := logs[chosen]
	return &found
}

// Evaluate matches and classifies every item of a week, in menu order.
func (m *Matcher) Evaluate(items []WeeklyMenuItem, logs []CareLog, weekStart time.Time) []MenuConsumption {
	rows := make([]MenuConsumption, 0, len(items))
	for _, item := range items {
		rows = append(rows, MenuConsumption{
			Item:        item,
			Consumption: Classify(m.Match(item, logs, weekStart)),
		})
	}
	return rows
}

func logText(log CareLog) string {
	return fold(log.Notes + " " + log.Title + " " + log.FoodItems)
}

// fold lowercases after NFC so precomposed and combining Vietnamese
// diacritics compare equal.
func fold(s string) string {
	return strings.ToLower(norm.NFC.String(s))
}

func foldAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(fold(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
