package types

import "github.com/golang-jwt/jwt/v5"

// Scope roles carried in unlock tokens
const (
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// Claims represents the JWT claims for an unlocked scope. TenantID is empty
// for admin tokens.
type Claims struct {
	TenantID string `json:"tenant_id,omitempty"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
