package app

import (
	"log"

	"github.com/Twosense-Dev/BizBot/app/config"
	"github.com/Twosense-Dev/BizBot/app/models"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

type planInfo struct {
	PriceID string
	Name    string
}

// Offered plans with their fixed Stripe price identifiers.
var plans = map[models.Plan]planInfo{
	models.PlanBasic: {
		PriceID: "price_1QzpSpLE4SNcqRNLcdLCQ1Er",
		Name:    "Basic Plan",
	},
	models.PlanPro: {
		PriceID: "price_1QzpV0LE4SNcqRNLBN5CjmGP",
		Name:    "Pro Plan",
	},
}

// InitStripe wires the Stripe API key from the environment.
func InitStripe() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config for stripe: %v", err)
	}
	stripe.Key = cfg.Stripe.SecretKey
}

// newCheckoutSession is swapped out in tests so no request reaches Stripe.
var newCheckoutSession = func(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}
