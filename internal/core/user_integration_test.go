package core_test

import (
	"context"
	"testing"

	"po-reporting/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
)

func seedUser(t *testing.T, pool *pgxpool.Pool, userID string, password, dept, division *string) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO z_po_pl_user (userid, password, dept, division)
		VALUES ($1, $2, $3, $4)`,
		userID, password, dept, division)
	if err != nil {
		t.Fatalf("Failed to seed user %s: %v", userID, err)
	}
}

func TestUser_Login(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	str := func(s string) *string { return &s }
	seedUser(t, pool, "alice", str("secret"), str(" pud "), str("A"))
	seedUser(t, pool, "bob", str("hunter2"), str("IT"), nil)
	seedUser(t, pool, "carol", nil, str("PUD"), str("B"))

	users := core.NewUserService(pool)
	ctx := context.Background()

	t.Run("valid credentials with admin dept", func(t *testing.T) {
		result, err := users.Login(ctx, "alice", "secret")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if result == nil {
			t.Fatal("Expected a login result")
		}
		if result.Role != core.RoleAdmin {
			t.Errorf("Role = %s, want ADMIN", result.Role)
		}
		// Dept comes back raw, not normalized.
		if result.Dept == nil || *result.Dept != " pud " {
			t.Errorf("Dept = %v, want the stored value verbatim", result.Dept)
		}
		if result.Division == nil || *result.Division != "A" {
			t.Errorf("Division = %v, want A", result.Division)
		}
	})

	t.Run("valid credentials with employee dept", func(t *testing.T) {
		result, err := users.Login(ctx, "bob", "hunter2")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		if result == nil || result.Role != core.RoleEmployee {
			t.Errorf("result = %+v, want EMPLOYEE role", result)
		}
	})

	// The three failure modes must be observably identical: (nil, nil).
	failures := []struct {
		name             string
		userID, password string
	}{
		{"wrong password", "alice", "wrong"},
		{"unknown user", "nobody", "secret"},
		{"null stored password", "carol", "anything"},
		{"case-sensitive password", "alice", "SECRET"},
	}
	for _, tc := range failures {
		t.Run(tc.name, func(t *testing.T) {
			result, err := users.Login(ctx, tc.userID, tc.password)
			if err != nil {
				t.Fatalf("Login returned an error, want the uniform not-found signal: %v", err)
			}
			if result != nil {
				t.Errorf("Login = %+v, want nil", result)
			}
		})
	}
}
