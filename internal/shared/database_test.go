package shared

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatabase(t *testing.T) {
	t.Run("dsn", func(t *testing.T) {
		assert.Equal(t, ":memory:", dsn(":memory:"))
		assert.Equal(t, "file:./applyx.db?_busy_timeout=5000", dsn("./applyx.db"))
	})

	t.Run("OpenDatabase creates the directory and migrates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "applyx.db")

		db, err := OpenDatabase(DatabaseConfig{Path: path, MaxOpenConns: 2, MaxIdleConns: 1})
		require.NoError(t, err)
		defer db.Close()

		_, err = os.Stat(path)
		require.NoError(t, err)
		_, err = db.Exec("INSERT INTO settings (key, value) VALUES ('k', 'v')")
		assert.NoError(t, err)
		assert.Equal(t, 2, db.Stats().MaxOpenConnections)
	})

	t.Run("in-memory keeps a single connection", func(t *testing.T) {
		db, err := OpenDatabase(DatabaseConfig{Path: ":memory:", MaxOpenConns: 8})
		require.NoError(t, err)
		defer db.Close()

		assert.Equal(t, 1, db.Stats().MaxOpenConnections)
		_, err = db.Exec("SELECT 1 FROM settings")
		assert.NoError(t, err)
	})
}
