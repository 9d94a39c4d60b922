package app

import (
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/Twosense-Dev/BizBot/app/config"
	"github.com/Twosense-Dev/BizBot/auth"
	"github.com/Twosense-Dev/BizBot/feature"

	"github.com/gin-gonic/gin"
)

var (
	featureRegistry = feature.DefaultRegistry()
	usageGate       = NewGate()

	// analyzerRunner simulates inference latency. Zero delay by default so
	// tests stay fast; InitAnalyzer applies the configured delay.
	analyzerRunner feature.Runner = feature.MockRunner{}
)

// InitAnalyzer configures the simulated analysis latency from the environment.
func InitAnalyzer() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config for analyzer: %v", err)
	}
	if cfg.Analyzer.Mock {
		delay := time.Duration(cfg.Analyzer.DelayMS) * time.Millisecond
		analyzerRunner = feature.MockRunner{Delay: delay}
	}
}

// GenerateFeedback runs a feature module's generate/analyze action. The
// usage gate is enforced here, once, for every module.
func GenerateFeedback(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
		return
	}

	featureID := c.Param("id")
	module, ok := featureRegistry.Get(featureID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown feature"})
		return
	}

	if !usageGate.Allow(claims.Subject, featureID, claims.IsPremium) {
		used := usageGate.Used(claims.Subject, featureID)
		qErr := quotaError{Limit: FreeUseLimit, Used: used}
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error": qErr.Error(),
			"limit": qErr.Limit,
			"used":  qErr.Used,
		})
		return
	}

	const maxBodyBytes = int64(65536)
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx := c.Request.Context()
	result, err := analyzerRunner.Run(ctx, func() (any, error) {
		return module.Generate(ctx, body)
	})
	if err != nil {
		var inputErr feature.InputError
		if errors.As(err, &inputErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": inputErr.Message})
			return
		}
		log.Printf("feature generate failed feature=%s: %v", featureID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate feedback"})
		return
	}

	// Charge the quota only after a successful generation so rejected input
	// has no side effects.
	usageGate.RecordUse(claims.Subject, featureID, claims.IsPremium)

	c.JSON(http.StatusOK, gin.H{
		"feature": featureID,
		"result":  result,
	})
}

// QAScenario returns a random practice scenario for a difficulty. Prompt
// fetches are free; only generate/analyze actions charge the quota.
func QAScenario(c *gin.Context) {
	difficulty := feature.Difficulty(c.DefaultQuery("difficulty", string(feature.DifficultyBeginner)))
	scenario, ok := feature.RandomScenario(difficulty)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown difficulty"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"difficulty": difficulty,
		"scenario":   scenario,
	})
}

// NegotiationObjection returns a random client objection for a category.
func NegotiationObjection(c *gin.Context) {
	objectionType := c.DefaultQuery("type", "price")
	objection, ok := feature.RandomObjection(objectionType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown objection type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"objection": objection})
}

// Dashboard composes the session, per-feature usage and the feature catalog.
func Dashboard(c *gin.Context) {
	claims, ok := auth.ClaimsFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth context"})
		return
	}

	features := make([]gin.H, 0, len(featureRegistry.IDs()))
	for _, id := range featureRegistry.IDs() {
		module, _ := featureRegistry.Get(id)

		var limit any = nil
		var remaining any = nil
		used := usageGate.Used(claims.Subject, id)
		if !claims.IsPremium {
			limit = FreeUseLimit
			remainingCount := FreeUseLimit - used
			if remainingCount < 0 {
				remainingCount = 0
			}
			remaining = remainingCount
		}

		features = append(features, gin.H{
			"id":        id,
			"title":     module.Title(),
			"used":      used,
			"limit":     limit,
			"remaining": remaining,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":        claims.Subject,
			"name":      claims.Name,
			"email":     claims.Email,
			"isPremium": claims.IsPremium,
		},
		"features": features,
	})
}
