package session

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
	"github.com/google/uuid"       // Token ids for the revocation list
)

// Lifetime is how long a browser session stays valid without logging out
const Lifetime = 24 * time.Hour

// Claims carries the authenticated identity for the browser session
type Claims struct {
	Email                string `json:"email"`    // Custom claim: account email
	Username             string `json:"username"` // Custom claim: display name
	Role                 string `json:"role"`     // Custom claim: patient or doctor
	jwt.RegisteredClaims                          // Standard JWT claims
}

// Issue creates a signed session token for the identity
func Issue(email, username, role, secret string) (string, error) {
	// Set token claims
	claims := Claims{
		Email:    email,    // Account email
		Username: username, // Display name
		Role:     role,     // Role claim gates doctor-only routes
		// Standard claims
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),                             // Token id, keyed by the revocation list
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(Lifetime)), // Session expiry
			IssuedAt:  jwt.NewNumericDate(time.Now()),               // Issued at current time
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// Parse validates a session token string and returns its claims
func Parse(tokenStr, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors
	if err != nil {
		return nil, err // Return error if parsing fails
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil // Return claims if valid
	}
	// Return error if token is invalid
	return nil, jwt.ErrSignatureInvalid
}
