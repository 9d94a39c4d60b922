package feature

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestAnalyzeQAResponseScoreRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		fb := AnalyzeQAResponse("We deliver because our process works.")
		if fb.ConfidenceScore < 60 || fb.ConfidenceScore > 100 {
			t.Fatalf("confidence score %d outside [60,100]", fb.ConfidenceScore)
		}
	}
}

func TestAnalyzeQAResponseTone(t *testing.T) {
	short := AnalyzeQAResponse("We can help.")
	if short.Tone != "Too brief, needs more detail" {
		t.Fatalf("short tone = %q", short.Tone)
	}

	long := AnalyzeQAResponse(strings.Repeat("Our team delivers measurable results. ", 5))
	if long.Tone != "Professional and thorough" {
		t.Fatalf("long tone = %q", long.Tone)
	}
}

func TestAnalyzeQAResponseStructure(t *testing.T) {
	withReason := AnalyzeQAResponse("You should hire us because we ship on time.")
	if withReason.Structure != "Good use of reasoning" {
		t.Fatalf("structure = %q", withReason.Structure)
	}

	withoutReason := AnalyzeQAResponse("We are the best choice on the market.")
	if withoutReason.Structure != "Could use more explanation" {
		t.Fatalf("structure = %q", withoutReason.Structure)
	}

	if len(withoutReason.Improvements) != 3 {
		t.Fatalf("expected 3 improvements, got %d", len(withoutReason.Improvements))
	}
}

func TestQATrainerGenerate(t *testing.T) {
	m := &QATrainer{}

	body, _ := json.Marshal(map[string]any{
		"difficulty": "skeptical",
		"response":   "We stand out because our results are audited.",
	})
	out, err := m.Generate(context.Background(), body)
	if err != nil {
		t.Fatalf("Generate error = %v", err)
	}
	fb, ok := out.(QAFeedback)
	if !ok {
		t.Fatalf("expected QAFeedback, got %T", out)
	}
	if fb.Structure != "Good use of reasoning" {
		t.Fatalf("structure = %q", fb.Structure)
	}
}

func TestQATrainerGenerateValidation(t *testing.T) {
	m := &QATrainer{}
	cases := []struct {
		name string
		body string
	}{
		{"empty response", `{"difficulty":"beginner","response":"   "}`},
		{"unknown difficulty", `{"difficulty":"impossible","response":"hello"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := m.Generate(context.Background(), json.RawMessage(tc.body))
			var inputErr InputError
			if !errors.As(err, &inputErr) {
				t.Fatalf("expected InputError, got %v", err)
			}
		})
	}
}

func TestScenarios(t *testing.T) {
	for _, d := range []Difficulty{DifficultyBeginner, DifficultySkeptical, DifficultyAggressive} {
		list, ok := Scenarios(d)
		if !ok || len(list) != 3 {
			t.Fatalf("Scenarios(%s) = (%d, %v)", d, len(list), ok)
		}
	}
	if _, ok := Scenarios("nightmare"); ok {
		t.Fatalf("expected unknown difficulty miss")
	}
}

func TestRandomScenarioFromBank(t *testing.T) {
	bank, _ := Scenarios(DifficultyAggressive)
	known := map[string]bool{}
	for _, s := range bank {
		known[s] = true
	}
	for i := 0; i < 20; i++ {
		s, ok := RandomScenario(DifficultyAggressive)
		if !ok || !known[s] {
			t.Fatalf("RandomScenario returned unexpected scenario %q", s)
		}
	}
}
