package friendships

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/dbx"
	"github.com/t4gged/t4gged/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, f *models.Friendship) (*models.Friendship, error) {
	query :=
		`INSERT INTO friendships (id, user_a, user_b, since)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_a, user_b) DO NOTHING
		 RETURNING id
		 `

	f.UserA, f.UserB = models.CanonicalPair(f.UserA, f.UserB)

	err := r.db.QueryRowContext(ctx, query, f.ID, f.UserA, f.UserB, f.Since).Scan(&f.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return f, nil
}

func (r *PostgresRepository) FindByPair(ctx context.Context, a, b string) (*models.Friendship, error) {
	query :=
		`SELECT id, user_a, user_b, since FROM friendships
		 WHERE user_a = $1 AND user_b = $2
		 `

	userA, userB := models.CanonicalPair(a, b)

	f := &models.Friendship{}
	err := r.db.QueryRowContext(ctx, query, userA, userB).Scan(&f.ID, &f.UserA, &f.UserB, &f.Since)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return f, nil
}

func (r *PostgresRepository) ListForUser(ctx context.Context, user string) ([]*models.Friendship, error) {
	query :=
		`SELECT id, user_a, user_b, since FROM friendships
		 WHERE user_a = $1 OR user_b = $1
		 ORDER BY since ASC, id ASC
		 `

	rows, err := r.db.QueryContext(ctx, query, user)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Friendship
	for rows.Next() {
		f := &models.Friendship{}
		if err := rows.Scan(&f.ID, &f.UserA, &f.UserB, &f.Since); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
