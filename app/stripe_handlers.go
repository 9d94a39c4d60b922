package app

import (
	"log"
	"net/http"
	"strings"

	"github.com/Twosense-Dev/BizBot/app/config"
	"github.com/Twosense-Dev/BizBot/app/models"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79"
)

type checkoutRequest struct {
	Plan       models.Plan `json:"plan"`
	SuccessURL string      `json:"successUrl"`
	CancelURL  string      `json:"cancelUrl"`
}

// CreateCheckoutSession starts a subscription-mode Stripe Checkout Session
// for one of the offered plans and returns the session handle for the client
// to redirect with.
func CreateCheckoutSession(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan"})
		return
	}

	plan, ok := plans[req.Plan]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan"})
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("stripe checkout config load failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating checkout session"})
		return
	}

	baseURL := strings.TrimRight(cfg.Stripe.AppBaseURL, "/")
	successURL := req.SuccessURL
	if successURL == "" {
		successURL = baseURL + "/dashboard?success=true"
	}
	cancelURL := req.CancelURL
	if cancelURL == "" {
		cancelURL = baseURL + "/pricing?canceled=true"
	}

	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(plan.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:          stripe.String(successURL),
		CancelURL:           stripe.String(cancelURL),
		AllowPromotionCodes: stripe.Bool(true),
	}

	sess, err := newCheckoutSession(params)
	if err != nil {
		log.Printf("stripe checkout session failed plan=%s: %v", req.Plan, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating checkout session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionId": sess.ID,
		"url":       sess.URL,
	})
}
