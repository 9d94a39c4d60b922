package feature

import (
	"context"
	"encoding/json"
	"strings"
)

const ShotgunID = "shotgun"

// Shotgun turns one client question into several ready-to-send reply drafts
// in different styles.
type Shotgun struct{}

type shotgunInput struct {
	Question string `json:"question"`
}

type StyledResponse struct {
	Style   string `json:"style"`
	Content string `json:"content"`
	Tone    string `json:"tone"`
}

type ShotgunResult struct {
	Responses []StyledResponse `json:"responses"`
}

var shotgunResponses = []StyledResponse{
	{
		Style:   "Professional",
		Content: "Thank you for your inquiry. Based on the details you've provided, we can certainly help with this project. Our team has extensive experience in similar situations, and we'd be happy to discuss how our approach can meet your specific needs. Would you be available for a brief call to discuss the requirements in more detail?",
		Tone:    "Formal and confident",
	},
	{
		Style:   "Friendly",
		Content: "Thanks so much for reaching out! This sounds like an exciting project, and it's right up our alley. We've worked on similar projects before and would love to bring that experience to your situation. I'd be happy to chat more about your specific needs and how we can help make this a success for you. When would be a good time to connect?",
		Tone:    "Warm and approachable",
	},
	{
		Style:   "Direct",
		Content: "I appreciate your question. Here's what we can do: Based on our experience with similar projects, we can deliver what you need within your timeframe. Our process involves three steps that ensure quality results. Let's schedule a 15-minute call to discuss specifics and determine if we're the right fit for your needs.",
		Tone:    "Straightforward and efficient",
	},
	{
		Style:   "Value-focused",
		Content: "Thank you for your inquiry. What sets us apart is our proven track record of delivering 30% better results than industry standards for projects like yours. Our clients typically see ROI within the first month. I'd like to understand your specific goals better so we can tailor our approach to maximize your investment. Would tomorrow at 2 PM work for a quick discussion?",
		Tone:    "Results-oriented and confident",
	},
}

func (s *Shotgun) ID() string    { return ShotgunID }
func (s *Shotgun) Title() string { return "Shotgun" }

func (s *Shotgun) Generate(_ context.Context, input json.RawMessage) (any, error) {
	var in shotgunInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, InputError{Message: "invalid request body"}
	}
	if strings.TrimSpace(in.Question) == "" {
		return nil, InputError{Message: "question is required"}
	}

	out := ShotgunResult{Responses: make([]StyledResponse, len(shotgunResponses))}
	copy(out.Responses, shotgunResponses)
	return out, nil
}
