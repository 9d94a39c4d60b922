package app

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var responseStore = NewResponseStore()

type savedResponseRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Tags     string `json:"tags"`
}

func (r savedResponseRequest) validate() (string, bool) {
	if strings.TrimSpace(r.Title) == "" {
		return "title is required", false
	}
	if strings.TrimSpace(r.Content) == "" {
		return "content is required", false
	}
	if strings.TrimSpace(r.Category) == "" {
		return "category is required", false
	}
	return "", true
}

// ListSavedResponses returns the library filtered by free-text query and
// category facet.
func ListSavedResponses(c *gin.Context) {
	query := c.Query("query")
	category := c.Query("category")

	c.JSON(http.StatusOK, gin.H{
		"responses":  responseStore.List(query, category),
		"categories": responseStore.Categories(),
	})
}

// CreateSavedResponse adds a new entry to the library.
func CreateSavedResponse(c *gin.Context) {
	var req savedResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if msg, ok := req.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	resp := responseStore.Create(req.Title, req.Content, req.Category, ParseTags(req.Tags))
	c.JSON(http.StatusCreated, resp)
}

// UpdateSavedResponse edits an existing entry in place.
func UpdateSavedResponse(c *gin.Context) {
	var req savedResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if msg, ok := req.validate(); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	resp, ok := responseStore.Update(c.Param("id"), req.Title, req.Content, req.Category, ParseTags(req.Tags))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "response not found"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteSavedResponse removes an entry by id. There is no confirmation step
// and no undo.
func DeleteSavedResponse(c *gin.Context) {
	if !responseStore.Delete(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "response not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
