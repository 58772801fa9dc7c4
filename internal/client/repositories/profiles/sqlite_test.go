package profiles

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t4gged/t4gged/internal/client/client"
	"github.com/t4gged/t4gged/internal/client/models"
	"github.com/t4gged/t4gged/internal/common"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := client.OpenDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

func strPtr(s string) *string { return &s }

func TestSaveAndGet(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	p := &models.Profile{
		RecordName:       "icloud-123",
		Username:         strPtr("Dominique"),
		AvatarData:       []byte{0x89, 0x50},
		Email:            strPtr("d@example.com"),
		PasscodeSalt:     []byte{1, 2},
		PasscodeVerifier: []byte{3, 4},
	}
	require.NoError(t, r.Save(ctx, p))
	assert.False(t, p.UpdatedAt.IsZero())

	got, err := r.Get(ctx, "icloud-123")
	require.NoError(t, err)
	assert.Equal(t, "icloud-123", got.RecordName)
	assert.Equal(t, "Dominique", *got.Username)
	assert.Equal(t, []byte{0x89, 0x50}, got.AvatarData)
	assert.Equal(t, "d@example.com", *got.Email)
	assert.Equal(t, []byte{1, 2}, got.PasscodeSalt)
	assert.Equal(t, []byte{3, 4}, got.PasscodeVerifier)
	assert.True(t, p.UpdatedAt.Equal(got.UpdatedAt))
}

func TestSave_NullableFields(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, &models.Profile{RecordName: "r"}))

	got, err := r.Get(ctx, "r")
	require.NoError(t, err)
	assert.Nil(t, got.Username)
	assert.Nil(t, got.Email)
	assert.Empty(t, got.AvatarData)
	assert.False(t, got.HasPasscode())
}

func TestSave_UpsertReplacesRow(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, &models.Profile{RecordName: "r", Username: strPtr("a"), Email: strPtr("x@y")}))
	require.NoError(t, r.Save(ctx, &models.Profile{RecordName: "r", Username: strPtr("b")}))

	got, err := r.Get(ctx, "r")
	require.NoError(t, err)
	assert.Equal(t, "b", *got.Username)
	assert.Nil(t, got.Email)
}

func TestSave_RequiresRecordName(t *testing.T) {
	r := setupRepo(t)
	assert.ErrorIs(t, r.Save(context.Background(), &models.Profile{}), common.ErrInvalidArgument)
}

func TestGet_NotFound(t *testing.T) {
	r := setupRepo(t)
	_, err := r.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestCurrent_MostRecent(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	_, err := r.Current(ctx)
	assert.ErrorIs(t, err, common.ErrNotFound)

	now := time.Now().UTC()
	require.NoError(t, r.Save(ctx, &models.Profile{RecordName: "old", UpdatedAt: now.Add(-time.Hour)}))
	require.NoError(t, r.Save(ctx, &models.Profile{RecordName: "new", UpdatedAt: now}))

	got, err := r.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", got.RecordName)
}

func TestDelete(t *testing.T) {
	r := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, r.Save(ctx, &models.Profile{RecordName: "r"}))
	require.NoError(t, r.Delete(ctx, "r"))

	_, err := r.Get(ctx, "r")
	assert.ErrorIs(t, err, common.ErrNotFound)

	assert.NoError(t, r.Delete(ctx, "r"))
}
