// Package models defines user, plan and saved-response types.
package models

type Plan string

const (
	PlanBasic Plan = "basic"
	PlanPro   Plan = "pro"
)

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsPremium bool   `json:"isPremium"`
}
