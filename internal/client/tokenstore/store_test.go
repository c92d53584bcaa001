package tokenstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/shopkeeper/internal/client/client"
	"github.com/dmitrijs2005/shopkeeper/internal/client/repositories/metadata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, dsn string) Store {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return New(metadata.NewSQLiteRepository(db))
}

func TestStore_SetGetClear(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, filepath.Join(t.TempDir(), "tokens.db"))

	_, ok, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "fresh store must be empty")

	require.NoError(t, s.SetToken(ctx, "first"))
	require.NoError(t, s.SetToken(ctx, "second"))

	tok, ok, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "second", tok, "SetToken must overwrite")

	require.NoError(t, s.ClearToken(ctx))
	_, ok, err = s.GetToken(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.ClearToken(ctx), "clearing twice must not fail")
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "tokens.db")

	require.NoError(t, newStore(t, dsn).SetToken(ctx, "durable"))

	tok, ok, err := newStore(t, dsn).GetToken(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "durable", tok)
}

func TestStore_DoesNotInterpretToken(t *testing.T) {
	ctx := context.Background()
	s := newStore(t, filepath.Join(t.TempDir(), "tokens.db"))

	raw := "not.a.jwt ✓ \x01"
	require.NoError(t, s.SetToken(ctx, raw))

	tok, ok, err := s.GetToken(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, raw, tok)
}

type brokenRepo struct{ err error }

func (b brokenRepo) Get(context.Context, string) ([]byte, error) { return nil, b.err }
func (b brokenRepo) Set(context.Context, string, []byte) error   { return b.err }
func (b brokenRepo) Delete(context.Context, string) error        { return b.err }

func TestStore_ErrorsWrapped(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("disk gone")
	s := New(brokenRepo{err: boom})

	require.ErrorIs(t, s.SetToken(ctx, "x"), boom)
	_, _, err := s.GetToken(ctx)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, s.ClearToken(ctx), boom)
}
