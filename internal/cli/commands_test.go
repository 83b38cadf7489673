package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useInMemoryStorage(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", ":memory:")
	t.Setenv("NATS_URL", "")
	t.Setenv("LOG_LEVEL", "disabled")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := RootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	root := RootCmd()
	for _, name := range []string{"serve", "reconcile", "elapsed"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestReconcileCmd_JSONReport(t *testing.T) {
	useInMemoryStorage(t)

	out, err := run(t, "reconcile", "--json")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, false, report["skipped"])
	assert.Equal(t, float64(0), report["orders_scanned"])
	assert.NotEmpty(t, report["run_id"])
}

func TestReconcileCmd_TextReport(t *testing.T) {
	useInMemoryStorage(t)

	out, err := run(t, "reconcile")
	require.NoError(t, err)
	assert.Contains(t, out, "orders scanned:  0")
	assert.Contains(t, out, "failures:        0")
}

func TestElapsedCmd_RequiresWorkOrderID(t *testing.T) {
	useInMemoryStorage(t)

	_, err := run(t, "elapsed")
	assert.Error(t, err)
}

func TestElapsedCmd_UnknownWorkOrder(t *testing.T) {
	useInMemoryStorage(t)

	_, err := run(t, "elapsed", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "work order missing")
}
