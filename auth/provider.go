package auth

import (
	"log"
	"strings"

	"github.com/Twosense-Dev/BizBot/app/models"

	"golang.org/x/crypto/bcrypt"
)

// demoPassword is shared by both demo accounts. There is no account store
// behind this provider; the two seeded users are the only valid credentials.
const demoPassword = "password"

type demoAccount struct {
	user         models.User
	passwordHash []byte
}

var demoAccounts = seedDemoAccounts()

func seedDemoAccounts() []demoAccount {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.MinCost)
	if err != nil {
		log.Fatalf("failed to seed demo accounts: %v", err)
	}
	return []demoAccount{
		{
			user: models.User{
				ID:        "1",
				Name:      "Demo User",
				Email:     "user@example.com",
				IsPremium: false,
			},
			passwordHash: hash,
		},
		{
			user: models.User{
				ID:        "2",
				Name:      "Premium User",
				Email:     "premium@example.com",
				IsPremium: true,
			},
			passwordHash: hash,
		},
	}
}

// Authorize checks credentials against the fixed demo accounts. It returns
// nil for any unknown email or wrong password.
func Authorize(email, password string) *models.User {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, account := range demoAccounts {
		if account.user.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword(account.passwordHash, []byte(password)) != nil {
			return nil
		}
		user := account.user
		return &user
	}
	return nil
}
