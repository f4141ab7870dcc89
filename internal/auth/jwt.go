package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecretKey returns the key that signs admin session tokens. It is
// read per call, not at package init, so a JWT_SECRET loaded from .env
// by godotenv is picked up even though that load happens after this
// package initializes.
func jwtSecretKey() []byte {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return []byte(s)
	}
	return []byte("A_VERY_SECURE_SECRET_KEY_REPLACE_LATER")
}

// GenerateToken creates a session JWT for an authenticated admin.
func GenerateToken(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(time.Hour * 72).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecretKey())
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

// ValidateToken parses a token string and returns the admin username it
// was issued to.
func ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecretKey(), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		username, ok := claims["sub"].(string)
		if !ok {
			return "", errors.New("invalid subject claim")
		}
		return username, nil
	}
	return "", errors.New("invalid token")
}
