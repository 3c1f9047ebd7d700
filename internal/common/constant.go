// Package common contains shared constants and sentinel errors used across
// SkillSwap components.
package common

// BearerScheme is the authorization scheme expected in the HTTP
// Authorization header on authenticated requests.
const BearerScheme = "Bearer"

// RoleUser and RoleAdmin are the two account roles the platform knows about.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
