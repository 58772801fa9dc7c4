package invites

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/dbx"
	"github.com/t4gged/t4gged/internal/server/models"
)

const pendingPairIndex = "friend_invites_pending_pair"

const selectColumns = `SELECT id, from_user, to_user, status, sent_at FROM friend_invites`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, invite *models.FriendInvite) error {
	query :=
		`INSERT INTO friend_invites (id, from_user, to_user, status, sent_at)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query,
		invite.ID, invite.FromUser, invite.ToUser, string(invite.Status), invite.SentAt)

	switch {
	case err == nil:
		return nil
	case dbx.IsUniqueViolation(err, pendingPairIndex):
		return common.ErrDuplicatePending
	case dbx.IsForeignKeyViolation(err):
		return common.ErrNotFound
	default:
		return fmt.Errorf("db error: %w", err)
	}
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.FriendInvite, error) {
	return r.getOne(ctx, selectColumns+`
		 WHERE id = $1
		 `, id)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id string) (*models.FriendInvite, error) {
	return r.getOne(ctx, selectColumns+`
		 WHERE id = $1
		 FOR UPDATE
		 `, id)
}

func (r *PostgresRepository) FindPending(ctx context.Context, from, to string) (*models.FriendInvite, error) {
	return r.getOne(ctx, selectColumns+`
		 WHERE from_user = $1 AND to_user = $2 AND status = 'pending'
		 `, from, to)
}

func (r *PostgresRepository) Resolve(ctx context.Context, id string, status models.InviteStatus) error {
	query :=
		`UPDATE friend_invites SET status = $2
		 WHERE id = $1 AND status = 'pending'
		 `

	res, err := r.db.ExecContext(ctx, query, id, string(status))
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrAlreadyResolved
	}
	return nil
}

func (r *PostgresRepository) List(ctx context.Context, user string, direction models.Direction, status *models.InviteStatus) ([]*models.FriendInvite, error) {
	column := "to_user"
	if direction == models.DirectionOutgoing {
		column = "from_user"
	}

	query := selectColumns + ` WHERE ` + column + ` = $1`
	args := []any{user}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, string(*status))
	}
	query += ` ORDER BY sent_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.FriendInvite
	for rows.Next() {
		invite, err := scanInvite(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, invite)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, args ...any) (*models.FriendInvite, error) {
	invite, err := scanInvite(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return invite, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanInvite(s scanner) (*models.FriendInvite, error) {
	invite := &models.FriendInvite{}
	var status string
	if err := s.Scan(&invite.ID, &invite.FromUser, &invite.ToUser, &status, &invite.SentAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	st, err := models.ParseInviteStatus(status)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	invite.Status = st
	return invite, nil
}
