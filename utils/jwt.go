package utils

import (
	"errors"
	"os"
	"time"

	"github.com/yihao03/Aistronaut/config"

	"github.com/golang-jwt/jwt/v4"
)

// secretKey resolves the HS256 signing key at call time. Config takes
// precedence over the environment; the fallback keeps local development
// working without either (not recommended in production).
func secretKey() []byte {
	if config.AppConfig.JWTSecret != "" {
		return []byte(config.AppConfig.JWTSecret)
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("AISTRONAUT")
}

// GenerateToken creates a signed JWT token carrying the user's identity.
// The token expires after the specified duration.
func GenerateToken(userID, username string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userID":   userID,
		"username": username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractIdentityFromToken extracts the user ID and username claims from a
// valid JWT token string.
func ExtractIdentityFromToken(tokenString string) (string, string, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token")
	}

	userID, ok := claims["userID"].(string)
	if !ok || userID == "" {
		return "", "", errors.New("token does not contain a valid 'userID' claim")
	}
	username, _ := claims["username"].(string)

	return userID, username, nil
}
