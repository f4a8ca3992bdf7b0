package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInitLogger(t *testing.T) {
	prev := Lg
	t.Cleanup(func() { Lg = prev })

	t.Run("writes json to file at configured level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "activity.log")
		require.NoError(t, InitLogger("info", path))

		Lg.Debug("hidden")
		Lg.Info("api_fetch_done", zap.String("username", "alice"))
		require.NoError(t, Lg.Sync())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"api_fetch_done"`)
		assert.Contains(t, string(data), `"username":"alice"`)
		assert.NotContains(t, string(data), "hidden")
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		assert.Error(t, InitLogger("loud", ""))
	})
}
