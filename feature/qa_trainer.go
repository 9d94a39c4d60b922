package feature

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
)

const QATrainerID = "qa-trainer"

type Difficulty string

const (
	DifficultyBeginner   Difficulty = "beginner"
	DifficultySkeptical  Difficulty = "skeptical"
	DifficultyAggressive Difficulty = "aggressive"
)

var qaScenarios = map[Difficulty][]string{
	DifficultyBeginner: {
		"I'm interested in your services, but I'd like to know more about what you offer.",
		"Could you tell me about your experience in this field?",
		"What makes your business unique?",
	},
	DifficultySkeptical: {
		"I've worked with similar providers before and wasn't impressed. Why should I choose you?",
		"Your competitors are offering lower prices. What's your justification?",
		"I need to see concrete evidence of your results. Can you provide case studies?",
	},
	DifficultyAggressive: {
		"Your prices are way too high. I can find someone cheaper easily.",
		"I don't see the value in what you're offering. Convince me.",
		"This seems like a waste of my time and money. What guarantees do you offer?",
	},
}

var qaImprovements = []string{
	"Add specific examples to support your points",
	"Consider addressing potential concerns proactively",
	"Include a clear call to action",
}

// QATrainer scores a practice answer to a simulated client question.
type QATrainer struct{}

type qaInput struct {
	Difficulty Difficulty `json:"difficulty"`
	Response   string     `json:"response"`
}

type QAFeedback struct {
	ConfidenceScore int      `json:"confidenceScore"`
	Tone            string   `json:"tone"`
	Structure       string   `json:"structure"`
	Improvements    []string `json:"improvements"`
}

func (q *QATrainer) ID() string    { return QATrainerID }
func (q *QATrainer) Title() string { return "AI Business Q&A Trainer" }

func (q *QATrainer) Generate(_ context.Context, input json.RawMessage) (any, error) {
	var in qaInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, InputError{Message: "invalid request body"}
	}
	if in.Difficulty == "" {
		in.Difficulty = DifficultyBeginner
	}
	if _, ok := qaScenarios[in.Difficulty]; !ok {
		return nil, InputError{Message: "unknown difficulty"}
	}
	if strings.TrimSpace(in.Response) == "" {
		return nil, InputError{Message: "response is required"}
	}
	return AnalyzeQAResponse(in.Response), nil
}

// AnalyzeQAResponse synthesizes feedback from local rules: a random
// confidence score in [60,100], tone judged by a length threshold and
// structure by the presence of reasoning language.
func AnalyzeQAResponse(response string) QAFeedback {
	fb := QAFeedback{
		ConfidenceScore: 60 + rand.Intn(41),
		Tone:            "Too brief, needs more detail",
		Structure:       "Could use more explanation",
		Improvements:    append([]string(nil), qaImprovements...),
	}
	if len(response) > 100 {
		fb.Tone = "Professional and thorough"
	}
	if strings.Contains(strings.ToLower(response), "because") {
		fb.Structure = "Good use of reasoning"
	}
	return fb
}

// Scenarios returns the fixed scenario bank for a difficulty.
func Scenarios(d Difficulty) ([]string, bool) {
	list, ok := qaScenarios[d]
	if !ok {
		return nil, false
	}
	return append([]string(nil), list...), true
}

// RandomScenario picks one scenario for a difficulty.
func RandomScenario(d Difficulty) (string, bool) {
	list, ok := qaScenarios[d]
	if !ok {
		return "", false
	}
	return list[rand.Intn(len(list))], true
}
