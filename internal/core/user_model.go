package core

import (
	"context"
	"strings"
)

// Role is the access level derived from a user's department code.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleEmployee Role = "EMPLOYEE"
)

// LoginResult is returned on a successful credential check. Dept is the
// stored value as-is; Role is derived from it.
type LoginResult struct {
	UserID   string  `json:"userId"`
	Dept     *string `json:"dept"`
	Division *string `json:"division"`
	Role     Role    `json:"role"`
}

// UserService provides the single credential check this system performs.
type UserService interface {
	// Login looks up the user by exact userID and compares the supplied
	// password against the stored one byte for byte. It returns (nil, nil) —
	// one uniform not-found signal — whether the user is unknown, the stored
	// password is NULL, or the password differs, so the caller cannot tell
	// which part of the credential failed. A non-nil error means the
	// datastore itself failed.
	//
	// The stored password is compared in plaintext. This mirrors the
	// upstream table's contents; hashing here would break every existing
	// credential.
	Login(ctx context.Context, userID, password string) (*LoginResult, error)
}

// RoleForDept maps a department code to a role: "PUD" and "ADMIN"
// (trimmed, case-insensitive) are admins, everything else — including a
// missing or blank department — is an employee.
func RoleForDept(dept *string) Role {
	if dept == nil {
		return RoleEmployee
	}
	switch strings.ToUpper(strings.TrimSpace(*dept)) {
	case "PUD", "ADMIN":
		return RoleAdmin
	}
	return RoleEmployee
}
