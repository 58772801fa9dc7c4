package identities

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

func (r *PostgresRepository) Get(ctx context.Context, ref string) (*models.Identity, error) {
	query :=
		`SELECT identity_ref, given_name, created_at FROM identities
		 WHERE identity_ref = $1
		 `

	identity := &models.Identity{}
	err := r.db.QueryRowContext(ctx, query, ref).Scan(&identity.Ref, &identity.GivenName, &identity.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return identity, nil
}

func (r *PostgresRepository) Upsert(ctx context.Context, identity *models.Identity) error {
	query :=
		`INSERT INTO identities (identity_ref, given_name)
		 VALUES ($1, $2)
		 ON CONFLICT (identity_ref) DO UPDATE SET given_name = EXCLUDED.given_name
		 `

	if _, err := r.db.ExecContext(ctx, query, identity.Ref, identity.GivenName); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
