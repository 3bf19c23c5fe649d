package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lode/internal/adapters/cas"
	"go.trai.ch/lode/internal/adapters/config"
	"go.trai.ch/lode/internal/adapters/telemetry"
	"go.trai.ch/lode/internal/app"
	"go.trai.ch/lode/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const lodeYAML = `dependencies:
  - name: Alamofire
    version: "~> 5.0"
targets:
  - name: App
    dependencies:
      - name: SnapKit
`

func newStoreApp(t *testing.T, logger *mocks.MockLogger) (*app.App, string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lode.yaml"), []byte(lodeYAML), 0o600))
	t.Chdir(dir)

	store := cas.NewStoreWithPath(filepath.Join(dir, cas.DefaultPath))
	return app.New(config.NewLoader(logger), store, telemetry.NewNoOp(), logger), dir
}

func TestApp_Index_PathSpellingsShareSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	a, dir := newStoreApp(t, mocks.NewMockLogger(ctrl))

	first, err := a.Index(context.Background(), app.IndexOptions{Path: "."})
	require.NoError(t, err)
	assert.True(t, first.Changed)
	assert.Equal(t, filepath.Join(dir, "lode.yaml"), first.Manifest.Path())

	for _, path := range []string{"./lode.yaml", "lode.yaml", dir, filepath.Join(dir, "sub", "..", "lode.yaml")} {
		t.Run(path, func(t *testing.T) {
			idx, err := a.Index(context.Background(), app.IndexOptions{Path: path})
			require.NoError(t, err)
			assert.False(t, idx.Changed)
			assert.Equal(t, first.Manifest.Path(), idx.Manifest.Path())
		})
	}
}

func TestApp_Index_CorruptSnapshotStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	a, dir := newStoreApp(t, logger)

	storePath := filepath.Join(dir, cas.DefaultPath)
	require.NoError(t, os.MkdirAll(filepath.Dir(storePath), 0o750))
	require.NoError(t, os.WriteFile(storePath, []byte{0xff, 0x00, 0x13}, 0o600))

	logger.EXPECT().Warn(gomock.Any()).Times(1)

	idx, err := a.Index(context.Background(), app.IndexOptions{Path: "."})
	require.NoError(t, err)
	assert.True(t, idx.Changed)

	// The rewritten store is readable again.
	again, err := a.Index(context.Background(), app.IndexOptions{Path: "."})
	require.NoError(t, err)
	assert.False(t, again.Changed)
}
