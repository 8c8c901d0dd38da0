package globals

import (
	"context"
	"os"
)

// JwtSecret signs and verifies access tokens. Override via JWT_SECRET.
var JwtSecret = []byte(envOr("JWT_SECRET", "secretkey"))

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const RoleKey ContextKey = "role"

var Ctx = context.Background()

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
