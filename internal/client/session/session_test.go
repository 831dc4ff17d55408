package session

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/dmitrijs2005/vidwave/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/vidwave/internal/client/storage"
	"github.com/dmitrijs2005/vidwave/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore()

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)

	require.NoError(t, s.SetToken(ctx, "T1"))
	tok, _ = s.Token(ctx)
	assert.Equal(t, "T1", tok)

	require.NoError(t, s.SetToken(ctx, "T2"))
	tok, _ = s.Token(ctx)
	assert.Equal(t, "T2", tok, "last writer wins")

	require.NoError(t, s.Clear(ctx))
	tok, _ = s.Token(ctx)
	assert.Empty(t, tok)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); _ = s.SetToken(ctx, "T") }()
		go func() { defer wg.Done(); _, _ = s.Token(ctx) }()
	}
	wg.Wait()

	tok, _ := s.Token(ctx)
	assert.Equal(t, "T", tok)
}

func TestMemoryStore_IsolatedInstances(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	a, b := NewMemoryStore(), NewMemoryStore()

	require.NoError(t, a.SetToken(ctx, "A"))
	tok, _ := b.Token(ctx)
	assert.Empty(t, tok)
}

func openStore(t *testing.T, dsn string) *PersistentStore {
	t.Helper()
	db, err := storage.InitDatabase(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPersistentStore(metadata.NewSQLiteRepository(db))
}

func TestPersistentStore_SurvivesReopen(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "vidwave.db")

	first := openStore(t, dsn)
	require.NoError(t, first.SetToken(ctx, "T1"))

	second := openStore(t, dsn)
	tok, err := second.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "T1", tok)

	require.NoError(t, second.Clear(ctx))
	tok, err = first.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestPersistentStore_EmptyTokenClears(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := openStore(t, filepath.Join(t.TempDir(), "vidwave.db"))

	require.NoError(t, s.SetToken(ctx, "T1"))
	require.NoError(t, s.SetToken(ctx, ""))

	tok, err := s.Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, tok)
}

type brokenRepo struct{ metadata.Repository }

var errDisk = errors.New("disk gone")

func (brokenRepo) Get(context.Context, string) (string, bool, error) { return "", false, errDisk }
func (brokenRepo) Set(context.Context, string, string) error        { return errDisk }
func (brokenRepo) Delete(context.Context, string) error             { return errDisk }

func TestPersistentStore_WrapsRepositoryErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewPersistentStore(brokenRepo{})

	_, err := s.Token(ctx)
	require.ErrorIs(t, err, errDisk)

	require.ErrorIs(t, s.SetToken(ctx, "T"), errDisk)
	require.ErrorIs(t, s.Clear(ctx), errDisk)
}

func TestPersistentStore_UsesFixedKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db, err := storage.InitDatabase(ctx, filepath.Join(t.TempDir(), "vidwave.db"))
	require.NoError(t, err)
	defer db.Close()

	repo := metadata.NewSQLiteRepository(db)
	require.NoError(t, NewPersistentStore(repo).SetToken(ctx, "T9"))

	v, found, err := repo.Get(ctx, common.TokenStorageKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "T9", v)
}
