package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func TestApply_Idempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	files, err := Files()
	require.NoError(t, err)
	require.NotEmpty(t, files)

	pending, err := Pending(ctx, db)
	require.NoError(t, err)
	require.Equal(t, files, pending)

	require.NoError(t, Apply(ctx, db))
	require.NoError(t, Apply(ctx, db))

	pending, err = Pending(ctx, db)
	require.NoError(t, err)
	require.Empty(t, pending)

	_, err = db.ExecContext(ctx, "INSERT INTO kv (key, value) VALUES (?, ?)", "k", "v")
	require.NoError(t, err)
}
