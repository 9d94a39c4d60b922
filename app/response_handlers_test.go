package app

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/Twosense-Dev/BizBot/app/models"
)

func TestResponsesRequireAuth(t *testing.T) {
	router := newTestRouter(t)
	resp := doJSON(router, http.MethodGet, "/api/responses", "", "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
}

func TestListResponsesWithFilters(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, "user@example.com")

	resp := doJSON(router, http.MethodGet, "/api/responses", token, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("list failed: %d", resp.Code)
	}
	var out struct {
		Responses  []models.SavedResponse `json:"responses"`
		Categories []string               `json:"categories"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid list body: %v", err)
	}
	if len(out.Responses) != 3 {
		t.Fatalf("expected 3 seeded responses, got %d", len(out.Responses))
	}
	if len(out.Categories) == 0 || out.Categories[0] != "all" {
		t.Fatalf("categories = %v", out.Categories)
	}

	resp = doJSON(router, http.MethodGet, "/api/responses?query=roi&category=all", token, "")
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid filtered body: %v", err)
	}
	if len(out.Responses) != 1 || out.Responses[0].ID != "2" {
		t.Fatalf("filtered = %v", out.Responses)
	}
}

func TestCreateSavedResponse(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, "user@example.com")

	resp := doJSON(router, http.MethodPost, "/api/responses", token,
		`{"title":"Kickoff Email","content":"Thanks for choosing us.","category":"Client Management","tags":"email, onboarding"}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var created models.SavedResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("invalid created body: %v", err)
	}
	if created.ID == "" || created.CreatedAt == "" {
		t.Fatalf("created = %+v", created)
	}
	if len(created.Tags) != 2 || created.Tags[0] != "email" {
		t.Fatalf("tags = %v", created.Tags)
	}
}

func TestCreateSavedResponseValidation(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, "user@example.com")

	for _, body := range []string{
		`{"title":"","content":"c","category":"General"}`,
		`{"title":"t","content":"  ","category":"General"}`,
		`{"title":"t","content":"c","category":""}`,
		`not json`,
	} {
		resp := doJSON(router, http.MethodPost, "/api/responses", token, body)
		if resp.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, resp.Code)
		}
	}

	resp := doJSON(router, http.MethodGet, "/api/responses", token, "")
	var out struct {
		Responses []models.SavedResponse `json:"responses"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid list body: %v", err)
	}
	if len(out.Responses) != 3 {
		t.Fatalf("rejected creates must not persist, got %d entries", len(out.Responses))
	}
}

func TestUpdateSavedResponseHandler(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, "user@example.com")

	resp := doJSON(router, http.MethodPut, "/api/responses/1", token,
		`{"title":"Revised Timeline","content":"Updated.","category":"Project Management","tags":"timeline"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var updated models.SavedResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &updated); err != nil {
		t.Fatalf("invalid updated body: %v", err)
	}
	if updated.ID != "1" || updated.Title != "Revised Timeline" {
		t.Fatalf("updated = %+v", updated)
	}

	resp = doJSON(router, http.MethodPut, "/api/responses/999", token,
		`{"title":"t","content":"c","category":"General"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("unknown id: expected 404, got %d", resp.Code)
	}
}

func TestDeleteSavedResponseHandler(t *testing.T) {
	router := newTestRouter(t)
	token := loginToken(t, router, "user@example.com")

	resp := doJSON(router, http.MethodDelete, "/api/responses/2", token, "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	resp = doJSON(router, http.MethodDelete, "/api/responses/2", token, "")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("second delete: expected 404, got %d", resp.Code)
	}

	resp = doJSON(router, http.MethodGet, "/api/responses", token, "")
	var out struct {
		Responses []models.SavedResponse `json:"responses"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid list body: %v", err)
	}
	if len(out.Responses) != 2 {
		t.Fatalf("expected 2 entries after delete, got %d", len(out.Responses))
	}
}
