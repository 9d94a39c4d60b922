package auth

import "testing"

func TestAuthorizeDemoUser(t *testing.T) {
	user := Authorize("user@example.com", "password")
	if user == nil {
		t.Fatalf("expected demo user session")
	}
	if user.ID != "1" || user.Name != "Demo User" || user.IsPremium {
		t.Fatalf("unexpected demo user: %+v", user)
	}
}

func TestAuthorizePremiumUser(t *testing.T) {
	user := Authorize("premium@example.com", "password")
	if user == nil {
		t.Fatalf("expected premium user session")
	}
	if user.ID != "2" || !user.IsPremium {
		t.Fatalf("unexpected premium user: %+v", user)
	}
}

func TestAuthorizeNormalizesEmail(t *testing.T) {
	if Authorize("  User@Example.com ", "password") == nil {
		t.Fatalf("expected email to be trimmed and lowercased")
	}
}

func TestAuthorizeRejectsBadCredentials(t *testing.T) {
	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "user@example.com", "hunter2"},
		{"unknown email", "nobody@example.com", "password"},
		{"empty credentials", "", ""},
		{"premium wrong password", "premium@example.com", "Password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if user := Authorize(tc.email, tc.password); user != nil {
				t.Fatalf("expected nil session, got %+v", user)
			}
		})
	}
}

func TestAuthorizeReturnsCopy(t *testing.T) {
	first := Authorize("user@example.com", "password")
	first.IsPremium = true

	second := Authorize("user@example.com", "password")
	if second.IsPremium {
		t.Fatalf("Authorize must not share state between calls")
	}
}
