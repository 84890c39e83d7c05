package auth

import "github.com/golang-jwt/jwt/v5"

// Claims are the only supported JWT claims shape for this service.
// Tokens identify a company account; agent members authenticate through
// the same account-scoped tokens handed out by the dashboard.
type Claims struct {
	jwt.RegisteredClaims

	AccountID string `json:"account_id"`
}
