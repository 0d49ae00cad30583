package consumption

import (
	"regexp"
	"strings"
)

// Classification labels.
const (
	LabelFinished       = "Finished"
	LabelMostly         = "Ate 75%"
	LabelHalf           = "Ate half"
	LabelLittle         = "Ate a little"
	LabelRefused        = "Did not eat"
	LabelCompleted      = "Completed"
	LabelInProgress     = "In progress"
	LabelAwaitingRecord = "Awaiting record"
	LabelNotRecorded    = "Not recorded"
)

type consumptionPattern struct {
	re    *regexp.Regexp
	ratio float64
	label string
}

// Order matters: "100%" and "50%" both contain "0%".
var consumptionPatterns = []consumptionPattern{
	{regexp.MustCompile(`100\s*%|\bfull\b|\bfinished\b|\bate everything\b|ăn hết|hết suất|hết phần`), 1, LabelFinished},
	{regexp.MustCompile(`75\s*%|\bthree[- ]quarters?\b|3/4|ba phần tư`), 0.75, LabelMostly},
	{regexp.MustCompile(`50\s*%|\bhalf\b|1/2|một nửa|nửa suất|nửa phần`), 0.5, LabelHalf},
	{regexp.MustCompile(`25\s*%|\blight(ly)?\b|\ba little\b|1/4|ăn nhẹ|ăn ít`), 0.25, LabelLittle},
	{regexp.MustCompile(`(^|[^0-9])0\s*%|\bskip(ped|s)?\b|\brefus|bỏ bữa|không ăn|từ chối`), 0, LabelRefused},
}

// Classify estimates how much of a meal was eaten from the log that was
// matched to it. A nil log means nothing was recorded.
//
// This is keyword matching over free text, not a measurement: "ăn nhẹ" is
// always 25% whatever was actually served, and negations are not
// understood. Treat the ratio as approximate and never as a clinical
// source of truth.
func Classify(log *CareLog) ConsumptionInfo {
	if log == nil {
		return ConsumptionInfo{Label: LabelNotRecorded, Ratio: 0}
	}
	info := ClassifyText(log.Quantity+" "+log.Notes+" "+log.FoodItems, log.Status)
	matched := *log
	info.Log = &matched
	return info
}

// ClassifyText applies the pattern table to text and falls back on status
// when nothing matches.
func ClassifyText(text string, status LogStatus) ConsumptionInfo {
	folded := fold(text)
	if strings.TrimSpace(folded) != "" {
		for _, p := range consumptionPatterns {
			if p.re.MatchString(folded) {
				return ConsumptionInfo{Label: p.label, Ratio: p.ratio}
			}
		}
	}
	switch status {
	case StatusCompleted:
		return ConsumptionInfo{Label: LabelCompleted, Ratio: 1}
	case StatusInProgress:
		return ConsumptionInfo{Label: LabelInProgress, Ratio: 0.5}
	default:
		return ConsumptionInfo{Label: LabelAwaitingRecord, Ratio: 0}
	}
}
