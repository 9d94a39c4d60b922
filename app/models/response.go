package models

// SavedResponse is a reusable reply template kept in the in-memory library.
// IDs are millisecond timestamp strings; uniqueness is on ID only.
type SavedResponse struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
}
