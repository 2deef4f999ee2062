package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userService struct {
	pool *pgxpool.Pool
}

// NewUserService constructs a UserService backed by PostgreSQL.
func NewUserService(pool *pgxpool.Pool) UserService {
	return &userService{pool: pool}
}

func (s *userService) Login(ctx context.Context, userID, password string) (*LoginResult, error) {
	var (
		storedID       string
		storedPassword *string
		dept, division *string
	)
	err := s.pool.QueryRow(ctx, `
		SELECT userid, password, dept, division
		FROM z_po_pl_user
		WHERE userid = $1
		LIMIT 1`,
		userID,
	).Scan(&storedID, &storedPassword, &dept, &division)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if storedPassword == nil || *storedPassword != password {
		return nil, nil
	}

	return &LoginResult{
		UserID:   storedID,
		Dept:     dept,
		Division: division,
		Role:     RoleForDept(dept),
	}, nil
}
