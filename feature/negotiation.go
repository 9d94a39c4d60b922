package feature

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
)

const NegotiationTrainerID = "negotiation-trainer"

// Objection is one simulated client pushback with coaching material.
type Objection struct {
	Type                 string   `json:"type"`
	Text                 string   `json:"text"`
	SuggestedRebuttals   []string `json:"suggestedRebuttals"`
	PsychologicalTactics []string `json:"psychologicalTactics"`
}

var objectionDatabase = map[string][]Objection{
	"price": {
		{
			Type: "price",
			Text: "That's way too expensive for what you're offering.",
			SuggestedRebuttals: []string{
				"Let's focus on the return on investment rather than the initial cost.",
				"What would be a comfortable investment range for you?",
				"Could you help me understand what price point you were expecting?",
			},
			PsychologicalTactics: []string{
				"Use value-based pricing discussion",
				"Break down cost into smaller daily/monthly amounts",
				"Compare to cost of not taking action",
			},
		},
		{
			Type: "price",
			Text: "I can find someone cheaper who offers the same thing.",
			SuggestedRebuttals: []string{
				"What specific features are you comparing?",
				"While there may be cheaper options, our focus is on delivering premium value.",
				"Could you share what alternatives you're considering? I'd love to explain our unique advantages.",
			},
			PsychologicalTactics: []string{
				"Highlight unique differentiators",
				"Focus on long-term benefits",
				"Address quality vs. cost trade-off",
			},
		},
	},
	"value": {
		{
			Type: "value",
			Text: "I don't see how this will benefit our business.",
			SuggestedRebuttals: []string{
				"Let me share some specific examples of how similar businesses have benefited.",
				"What specific outcomes would make this investment worthwhile for you?",
				"Could you tell me more about your current challenges?",
			},
			PsychologicalTactics: []string{
				"Use case studies and social proof",
				"Paint picture of before/after scenarios",
				"Focus on pain points and solutions",
			},
		},
	},
	"competitor": {
		{
			Type: "competitor",
			Text: "Your competitor offers more features for the same price.",
			SuggestedRebuttals: []string{
				"Which specific features are you most interested in?",
				"Our focus is on delivering quality over quantity.",
				"Let me explain our unique approach and why it might be more valuable for you.",
			},
			PsychologicalTactics: []string{
				"Differentiate on quality and service",
				"Focus on specific client needs",
				"Highlight unique methodology",
			},
		},
	},
	"timing": {
		{
			Type: "timing",
			Text: "We're not ready to make this decision right now.",
			SuggestedRebuttals: []string{
				"What would need to happen for you to feel ready?",
				"Could you share your concerns about timing?",
				"What if we created a phased approach?",
			},
			PsychologicalTactics: []string{
				"Create urgency without pressure",
				"Offer flexible timeline options",
				"Address underlying concerns",
			},
		},
	},
}

// Coaching flag messages. The checks are independent; any combination can
// appear in one feedback set.
const (
	FlagTooBrief       = "Response is too brief. Elaborate more on your points."
	FlagGoodLength     = "Good response length."
	FlagDefensiveTone  = "Try avoiding defensive language ('but'). Use 'and' instead."
	FlagGoodValueFocus = "Good focus on value proposition."
	FlagMissingValue   = "Consider emphasizing the value more explicitly."
	FlagGoodQuestions  = "Good use of questions to engage the client."
	FlagNoQuestions    = "Consider asking questions to better understand the client's perspective."
)

// NegotiationTrainer applies rule-based text checks to a rebuttal attempt.
type NegotiationTrainer struct{}

type negotiationInput struct {
	ObjectionType string `json:"objectionType"`
	Response      string `json:"response"`
}

type NegotiationFeedback struct {
	Feedback         []string `json:"feedback"`
	SuggestedTactics []string `json:"suggestedTactics"`
}

func (n *NegotiationTrainer) ID() string    { return NegotiationTrainerID }
func (n *NegotiationTrainer) Title() string { return "Negotiation Trainer" }

func (n *NegotiationTrainer) Generate(_ context.Context, input json.RawMessage) (any, error) {
	var in negotiationInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, InputError{Message: "invalid request body"}
	}
	if in.ObjectionType == "" {
		in.ObjectionType = "price"
	}
	if _, ok := objectionDatabase[in.ObjectionType]; !ok {
		return nil, InputError{Message: "unknown objection type"}
	}
	if strings.TrimSpace(in.Response) == "" {
		return nil, InputError{Message: "response is required"}
	}
	return AnalyzeNegotiationResponse(in.ObjectionType, in.Response), nil
}

// AnalyzeNegotiationResponse runs the heuristic checks: length, defensive
// language, value focus and engagement questions. Each check is evaluated
// independently of the others.
func AnalyzeNegotiationResponse(objectionType, response string) NegotiationFeedback {
	lower := strings.ToLower(response)
	var feedback []string

	if len(response) < 50 {
		feedback = append(feedback, FlagTooBrief)
	} else {
		feedback = append(feedback, FlagGoodLength)
	}

	if strings.Contains(lower, "but") {
		feedback = append(feedback, FlagDefensiveTone)
	}

	if strings.Contains(lower, "value") || strings.Contains(lower, "benefit") {
		feedback = append(feedback, FlagGoodValueFocus)
	} else {
		feedback = append(feedback, FlagMissingValue)
	}

	if strings.Contains(response, "?") {
		feedback = append(feedback, FlagGoodQuestions)
	} else {
		feedback = append(feedback, FlagNoQuestions)
	}

	var tactics []string
	for _, objection := range objectionDatabase[objectionType] {
		tactics = append(tactics, objection.PsychologicalTactics...)
	}

	return NegotiationFeedback{
		Feedback:         feedback,
		SuggestedTactics: tactics,
	}
}

// ObjectionTypes lists the supported objection categories.
func ObjectionTypes() []string {
	return []string{"price", "value", "competitor", "timing"}
}

// RandomObjection picks one objection for a category.
func RandomObjection(objectionType string) (Objection, bool) {
	list, ok := objectionDatabase[objectionType]
	if !ok {
		return Objection{}, false
	}
	return list[rand.Intn(len(list))], true
}
