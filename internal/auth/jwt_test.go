package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	username, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if username != "admin" {
		t.Fatalf("subject = %q, want admin", username)
	}
}

// The secret must be read when a token is signed, not at package init:
// the real boot order loads .env (and with it JWT_SECRET) long after
// this package initializes.
func TestSecretReadAtSigningTime(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-from-dotenv")

	token, err := GenerateToken("admin")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (interface{}, error) {
		return []byte("secret-from-dotenv"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token not signed with the env secret: valid=%v err=%v", parsed != nil && parsed.Valid, err)
	}

	// And a token signed under one secret must die with the secret.
	t.Setenv("JWT_SECRET", "rotated-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("token issued under the old secret still validates")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("garbage token validated")
	}

	// A token signed with a foreign key must fail verification.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "admin"})
	signed, err := foreign.SignedString([]byte("someone-elses-key"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := ValidateToken(signed); err == nil {
		t.Fatal("foreign-signed token validated")
	}
}
