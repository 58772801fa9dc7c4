package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/t4gged/t4gged/internal/client/models"
	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/dbx"
)

// SQLiteRepository implements Repository over a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const profileColumns = `record_name, username, avatar_data, email, passcode_salt, passcode_verifier, updated_at`

func (r *SQLiteRepository) Save(ctx context.Context, p *models.Profile) error {
	if p.RecordName == "" {
		return common.ErrInvalidArgument
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now().UTC()
	}

	query := `INSERT INTO profiles (` + profileColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(record_name) DO UPDATE SET
			username = excluded.username,
			avatar_data = excluded.avatar_data,
			email = excluded.email,
			passcode_salt = excluded.passcode_salt,
			passcode_verifier = excluded.passcode_verifier,
			updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		p.RecordName, p.Username, p.AvatarData, p.Email,
		p.PasscodeSalt, p.PasscodeVerifier, p.UpdatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, recordName string) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE record_name = ?`
	return scanProfile(r.db.QueryRowContext(ctx, query, recordName))
}

func (r *SQLiteRepository) Current(ctx context.Context) (*models.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY updated_at DESC LIMIT 1`
	return scanProfile(r.db.QueryRowContext(ctx, query))
}

func (r *SQLiteRepository) Delete(ctx context.Context, recordName string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE record_name = ?`, recordName); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

func scanProfile(row *sql.Row) (*models.Profile, error) {
	var (
		p         models.Profile
		username  sql.NullString
		email     sql.NullString
		updatedAt int64
	)

	err := row.Scan(&p.RecordName, &username, &p.AvatarData, &email,
		&p.PasscodeSalt, &p.PasscodeVerifier, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to select profile: %w", err)
	}

	if username.Valid {
		p.Username = &username.String
	}
	if email.Valid {
		p.Email = &email.String
	}
	p.UpdatedAt = time.Unix(0, updatedAt).UTC()

	return &p, nil
}
