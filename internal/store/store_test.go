package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quantmind-br/viteassets/internal/cache"
	"github.com/quantmind-br/viteassets/internal/domain"
	"github.com/quantmind-br/viteassets/internal/manifest"
	"github.com/quantmind-br/viteassets/internal/mocks"
	"github.com/quantmind-br/viteassets/internal/testutil"
	"github.com/quantmind-br/viteassets/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newStore(t *testing.T, root string, c domain.Cache) *Store {
	t.Helper()
	return New(Options{
		FileSystem: utils.NewLocalFS(root),
		Cache:      c,
		Logger:     testutil.NewTestLogger(t),
	})
}

func TestStore_Resolve(t *testing.T) {
	root, build := testutil.WriteBuild(t)
	s := newStore(t, root, nil)

	t.Run("relative reference", func(t *testing.T) {
		path, err := s.Resolve("dist/manifest.json")
		require.NoError(t, err)
		assert.Equal(t, build.Manifest, path)
	})

	t.Run("absolute reference", func(t *testing.T) {
		path, err := s.Resolve(build.Manifest)
		require.NoError(t, err)
		assert.Equal(t, build.Manifest, path)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := s.Resolve("dist/nope.json")
		assert.ErrorIs(t, err, domain.ErrResolution)

		var resErr *domain.ResolutionError
		require.True(t, errors.As(err, &resErr))
		assert.Equal(t, "dist/nope.json", resErr.Reference)
		assert.Equal(t, filepath.Join(root, "dist", "nope.json"), resErr.Resolved)
	})

	t.Run("empty reference", func(t *testing.T) {
		_, err := s.Resolve("")
		assert.ErrorIs(t, err, domain.ErrResolution)
	})
}

func TestStore_Resolve_WrapsForeignErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	fs := mocks.NewMockFileSystem(ctrl)
	fs.EXPECT().Resolve("manifest.json").Return("", os.ErrPermission)

	s := New(Options{FileSystem: fs})
	_, err := s.Resolve("manifest.json")

	assert.ErrorIs(t, err, domain.ErrResolution)
	assert.ErrorIs(t, err, os.ErrPermission)
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("parses valid manifest", func(t *testing.T) {
		root, build := testutil.WriteBuild(t)
		s := newStore(t, root, testutil.NewMemoryCache(t))

		m, err := s.Load(ctx, build.Manifest)
		require.NoError(t, err)
		assert.Equal(t, build.Manifest, m.Path())
		assert.Equal(t, filepath.ToSlash(build.Dir)+"/", m.Dir())
		assert.Equal(t, []string{"Main.css", "Main.js"}, m.Identifiers())
	})

	t.Run("invalid json is a format error", func(t *testing.T) {
		dir := testutil.TempDir(t)
		path := testutil.WriteManifest(t, dir, testutil.InvalidManifest)
		s := newStore(t, dir, nil)

		_, err := s.Load(ctx, path)
		assert.ErrorIs(t, err, domain.ErrFormat)

		var formatErr *domain.FormatError
		require.True(t, errors.As(err, &formatErr))
		assert.Equal(t, path, formatErr.Path)
	})

	t.Run("unreadable path is a read error", func(t *testing.T) {
		dir := testutil.TempDir(t)
		s := newStore(t, dir, nil)

		// a directory resolves but cannot be read as a file
		_, err := s.Load(ctx, dir)
		assert.ErrorIs(t, err, domain.ErrRead)

		var readErr *domain.ReadError
		require.True(t, errors.As(err, &readErr))
		assert.Equal(t, dir, readErr.Path)
	})

	t.Run("format errors are not cached", func(t *testing.T) {
		dir := testutil.TempDir(t)
		path := testutil.WriteManifest(t, dir, testutil.InvalidManifest)
		c := testutil.NewMemoryCache(t)
		s := newStore(t, dir, c)

		_, err := s.Load(ctx, path)
		require.Error(t, err)
		assert.Equal(t, 0, c.Size())
	})
}

func TestStore_Load_CachesByPath(t *testing.T) {
	ctx := context.Background()
	root, build := testutil.WriteBuild(t)
	c := testutil.NewBadgerCache(t)
	s := newStore(t, root, c)

	first, err := s.Load(ctx, build.Manifest)
	require.NoError(t, err)
	assert.True(t, c.Has(ctx, cache.ManifestKey(build.Manifest)))

	// Rewrite the file: the warm entry still wins because the key is the path.
	testutil.WriteManifest(t, build.Dir, testutil.NoEntriesManifest)

	second, err := s.Load(ctx, build.Manifest)
	require.NoError(t, err)
	assert.Equal(t, first.Identifiers(), second.Identifiers())
	assert.Equal(t, first.Entries(), second.Entries())

	chunk, ok := second.Get("Main.js")
	require.True(t, ok)
	assert.Equal(t, "assets/Main-4483b920.js", chunk.File)
	assert.Equal(t, []string{"assets/Main-973bb662.css"}, chunk.CSS)
	assert.Equal(t, "Main.js", chunk.Source())

	// Once the entry is dropped the new content is read.
	require.NoError(t, s.Invalidate(ctx, build.Manifest))
	third, err := s.Load(ctx, build.Manifest)
	require.NoError(t, err)
	assert.Equal(t, []string{"Shared.js"}, third.Identifiers())
}

func TestStore_Load_WithoutCacheRereads(t *testing.T) {
	ctx := context.Background()
	root, build := testutil.WriteBuild(t)
	s := newStore(t, root, cache.NullCache{})

	_, err := s.Load(ctx, build.Manifest)
	require.NoError(t, err)

	testutil.WriteManifest(t, build.Dir, testutil.NoEntriesManifest)

	m, err := s.Load(ctx, build.Manifest)
	require.NoError(t, err)
	assert.Equal(t, []string{"Shared.js"}, m.Identifiers())
}

func TestStore_Load_CacheInteractions(t *testing.T) {
	ctx := context.Background()
	path := "/srv/app/dist/manifest.json"
	key := cache.ManifestKey(path)

	t.Run("miss reads and stores with ttl", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fs := mocks.NewMockFileSystem(ctrl)
		c := mocks.NewMockCache(ctrl)

		gomock.InOrder(
			c.EXPECT().Get(ctx, key).Return(nil, domain.ErrCacheMiss),
			fs.EXPECT().ReadFile(path).Return([]byte(testutil.ValidManifest), nil),
			c.EXPECT().Set(ctx, key, gomock.Any(), time.Hour).Return(nil),
		)

		s := New(Options{FileSystem: fs, Cache: c, TTL: time.Hour})
		m, err := s.Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, 2, m.Len())
	})

	t.Run("hit skips the file system", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fs := mocks.NewMockFileSystem(ctrl)
		c := mocks.NewMockCache(ctrl)

		parsed, err := manifest.Parse([]byte(testutil.ValidManifest), "/elsewhere/manifest.json")
		require.NoError(t, err)
		encoded, err := encodeManifest(parsed)
		require.NoError(t, err)

		c.EXPECT().Get(ctx, key).Return(encoded, nil)

		s := New(Options{FileSystem: fs, Cache: c})
		m, err := s.Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, path, m.Path())
		assert.Equal(t, []string{"Main.js"}, m.Entries())
	})

	t.Run("corrupt cached value falls back to the file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fs := mocks.NewMockFileSystem(ctrl)
		c := mocks.NewMockCache(ctrl)

		c.EXPECT().Get(ctx, key).Return([]byte("garbage"), nil)
		fs.EXPECT().ReadFile(path).Return([]byte(testutil.ValidManifest), nil)
		c.EXPECT().Set(ctx, key, gomock.Any(), time.Duration(0)).Return(nil)

		s := New(Options{FileSystem: fs, Cache: c})
		m, err := s.Load(ctx, path)
		require.NoError(t, err)
		assert.Equal(t, 2, m.Len())
	})

	t.Run("cache failures are not fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fs := mocks.NewMockFileSystem(ctrl)
		c := mocks.NewMockCache(ctrl)

		c.EXPECT().Get(ctx, key).Return(nil, errors.New("disk gone"))
		fs.EXPECT().ReadFile(path).Return([]byte(testutil.ValidManifest), nil)
		c.EXPECT().Set(ctx, key, gomock.Any(), gomock.Any()).Return(errors.New("disk gone"))

		s := New(Options{FileSystem: fs, Cache: c})
		_, err := s.Load(ctx, path)
		assert.NoError(t, err)
	})
}

func TestStore_Open(t *testing.T) {
	ctx := context.Background()
	root, build := testutil.WriteBuild(t)
	s := newStore(t, root, testutil.NewMemoryCache(t))

	m, err := s.Open(ctx, "dist/manifest.json")
	require.NoError(t, err)
	assert.Equal(t, build.Manifest, m.Path())

	_, err = s.Open(ctx, "missing/manifest.json")
	assert.ErrorIs(t, err, domain.ErrResolution)
}
