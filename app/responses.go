package app

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Twosense-Dev/BizBot/app/models"
)

// ResponseStore is the persistence boundary for saved responses. The demo
// system deliberately keeps everything in memory; a restart loses all edits
// and re-seeds the samples.
type ResponseStore struct {
	mu        sync.Mutex
	responses []models.SavedResponse
	lastID    int64
}

func NewResponseStore() *ResponseStore {
	return &ResponseStore{responses: seedResponses()}
}

func seedResponses() []models.SavedResponse {
	return []models.SavedResponse{
		{
			ID:        "1",
			Title:     "Project Timeline Explanation",
			Content:   "Our project timeline is structured to ensure quality at every stage. We begin with a discovery phase (1-2 weeks), followed by planning and design (2-3 weeks), development (3-4 weeks), testing (1-2 weeks), and launch (1 week). Each phase includes checkpoints for your feedback to ensure we're aligned with your vision.",
			Category:  "Project Management",
			Tags:      []string{"timeline", "process", "planning"},
			CreatedAt: "2023-11-15T10:30:00Z",
		},
		{
			ID:        "2",
			Title:     "Premium Pricing Justification",
			Content:   "Our pricing reflects the comprehensive value we provide. Unlike competitors who offer basic solutions, our service includes in-depth strategy, premium execution, ongoing optimization, and dedicated support. Our clients typically see a 30% higher ROI compared to industry averages, making our service an investment rather than an expense.",
			Category:  "Pricing",
			Tags:      []string{"value", "premium", "roi"},
			CreatedAt: "2023-12-01T14:45:00Z",
		},
		{
			ID:        "3",
			Title:     "Handling Revision Requests",
			Content:   "We welcome revision requests as part of our collaborative process. Our standard package includes two rounds of revisions at no additional cost. For revisions beyond this, we assess the scope and may propose a small additional fee depending on the extent of changes. This approach allows us to maintain quality while ensuring your complete satisfaction.",
			Category:  "Client Management",
			Tags:      []string{"revisions", "feedback", "process"},
			CreatedAt: "2024-01-10T09:15:00Z",
		},
	}
}

// ParseTags splits a comma-separated tag string, trimming whitespace and
// discarding empty entries.
func ParseTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Create appends a new response and returns it with id and createdAt set.
// IDs are millisecond timestamps, bumped when two creates land in the same
// millisecond so uniqueness holds.
func (s *ResponseStore) Create(title, content, category string, tags []string) models.SavedResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	resp := models.SavedResponse{
		ID:        strconv.FormatInt(id, 10),
		Title:     title,
		Content:   content,
		Category:  category,
		Tags:      tags,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	s.responses = append(s.responses, resp)
	return resp
}

// Update replaces the editable fields of an entry, keeping id and createdAt.
func (s *ResponseStore) Update(id, title, content, category string, tags []string) (models.SavedResponse, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.responses {
		if s.responses[i].ID != id {
			continue
		}
		s.responses[i].Title = title
		s.responses[i].Content = content
		s.responses[i].Category = category
		s.responses[i].Tags = tags
		return s.responses[i], true
	}
	return models.SavedResponse{}, false
}

// Delete removes the entry with the given id, preserving the order of the
// remaining entries.
func (s *ResponseStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.responses {
		if s.responses[i].ID == id {
			s.responses = append(s.responses[:i], s.responses[i+1:]...)
			return true
		}
	}
	return false
}

// List filters by free-text query over title/content/tags and by category
// facet. Category "all" (or empty) is the identity filter; both filters are
// AND-combined. Matching is case-insensitive substring.
func (s *ResponseStore) List(query, category string) []models.SavedResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]models.SavedResponse, 0, len(s.responses))
	for _, resp := range s.responses {
		if !matchesQuery(resp, query) {
			continue
		}
		if category != "" && category != "all" && resp.Category != category {
			continue
		}
		out = append(out, resp)
	}
	return out
}

func matchesQuery(resp models.SavedResponse, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(resp.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(resp.Content), query) {
		return true
	}
	for _, tag := range resp.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// Categories returns "all" followed by the distinct categories in first-seen
// order, mirroring the dashboard facet list.
func (s *ResponseStore) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := map[string]bool{}
	categories := []string{"all"}
	for _, resp := range s.responses {
		if !seen[resp.Category] {
			seen[resp.Category] = true
			categories = append(categories, resp.Category)
		}
	}
	return categories
}
