package consumption

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		log       *CareLog
		wantRatio float64
		wantLabel string
	}{
		{name: "no log", log: nil, wantRatio: 0, wantLabel: LabelNotRecorded},
		{name: "ate everything vietnamese", log: &CareLog{Notes: "Ăn hết"}, wantRatio: 1, wantLabel: LabelFinished},
		{name: "hundred percent in quantity", log: &CareLog{Quantity: "100 %"}, wantRatio: 1, wantLabel: LabelFinished},
		{name: "full portion", log: &CareLog{Notes: "Full bowl"}, wantRatio: 1, wantLabel: LabelFinished},
		{name: "three quarters", log: &CareLog{Quantity: "75%"}, wantRatio: 0.75, wantLabel: LabelMostly},
		{name: "fifty percent", log: &CareLog{Notes: "ăn 50%"}, wantRatio: 0.5, wantLabel: LabelHalf},
		{name: "half in food items", log: &CareLog{FoodItems: "half of the rice"}, wantRatio: 0.5, wantLabel: LabelHalf},
		{name: "light meal vietnamese", log: &CareLog{Notes: "ăn nhẹ"}, wantRatio: 0.25, wantLabel: LabelLittle},
		{name: "twenty five percent", log: &CareLog{Quantity: "25%"}, wantRatio: 0.25, wantLabel: LabelLittle},
		{name: "zero percent", log: &CareLog{Quantity: "0%"}, wantRatio: 0, wantLabel: LabelRefused},
		{name: "refused", log: &CareLog{Notes: "Refused dinner", Status: StatusCompleted}, wantRatio: 0, wantLabel: LabelRefused},
		{name: "skipped vietnamese", log: &CareLog{Notes: "bỏ bữa"}, wantRatio: 0, wantLabel: LabelRefused},
		{name: "ten percent matches nothing", log: &CareLog{Quantity: "10%"}, wantRatio: 0, wantLabel: LabelAwaitingRecord},
		{name: "status completed fallback", log: &CareLog{Notes: "served", Status: StatusCompleted}, wantRatio: 1, wantLabel: LabelCompleted},
		{name: "status in progress fallback", log: &CareLog{Status: StatusInProgress}, wantRatio: 0.5, wantLabel: LabelInProgress},
		{name: "status pending fallback", log: &CareLog{Status: StatusPending}, wantRatio: 0, wantLabel: LabelAwaitingRecord},
		{name: "unknown status fallback", log: &CareLog{Status: "cancelled"}, wantRatio: 0, wantLabel: LabelAwaitingRecord},
		{name: "first pattern wins", log: &CareLog{Quantity: "50%", Notes: "ăn hết"}, wantRatio: 1, wantLabel: LabelFinished},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			got := Classify(testCase.log)
			assert.Equal(t, testCase.wantRatio, got.Ratio)
			assert.Equal(t, testCase.wantLabel, got.Label)
			if testCase.log == nil {
				assert.Nil(t, got.Log)
			} else {
				assert.Equal(t, *testCase.log, *got.Log)
			}
		})
	}
}

func TestClassify_Idempotent(t *testing.T) {
	log := &CareLog{ID: 4, Quantity: "1 bowl", Notes: "ăn 75%", FoodItems: "cháo", Status: StatusInProgress}

	first := Classify(log)
	second := Classify(log)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("classification changed between calls (-first +second):\n%s", diff)
	}
	assert.NotSame(t, log, first.Log)
}

func TestClassifyText(t *testing.T) {
	assert.Equal(t, 0.5, ClassifyText("MỘT NỬA suất", StatusPending).Ratio)
	assert.Equal(t, 1.0, ClassifyText("   ", StatusCompleted).Ratio)
	assert.Equal(t, LabelAwaitingRecord, ClassifyText("", "").Label)
}
