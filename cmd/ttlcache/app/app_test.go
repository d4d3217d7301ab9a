package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return out.String()
}

func TestDemoPrintsEveryKey(t *testing.T) {
	out := run(t, "demo", "--ttl", "20ms", "--log-level", "error")

	lines := strings.Fields(out)
	assert.ElementsMatch(t, []string{"k1", "k2", "k3", "k4", "k5"}, lines)
}

func TestDemoSharded(t *testing.T) {
	out := run(t, "demo", "--ttl", "20ms", "--shards", "3", "--log-level", "error")

	assert.ElementsMatch(t, []string{"k1", "k2", "k3", "k4", "k5"}, strings.Fields(out))
}

func TestDemoConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`ttl: 10ms
logLevel: error
demo:
  entries:
  - key: alpha
    value: one
  - key: beta
    value: two
`), 0o600))

	out := run(t, "demo", "--config-file", path)
	assert.ElementsMatch(t, []string{"alpha", "beta"}, strings.Fields(out))
}

func TestInvalidFlags(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"demo", "--shards", "0"})

	assert.Error(t, cmd.Execute())
}

func TestBenchNeedsShardsForWorkers(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"bench", "--workers", "4"})

	assert.ErrorContains(t, cmd.Execute(), "sharded cache")
}

func TestBenchDefaults(t *testing.T) {
	out := run(t, "bench", "--ttl", "10ms", "--entries", "20", "--log-level", "error")

	assert.Contains(t, out, "Workers      : 1")
	assert.Contains(t, out, "Evicted          : 20")
}

func TestErrorsAreNotPrintedByCobra(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"demo", "--shards", "0"})

	require.Error(t, cmd.Execute())
	assert.NotContains(t, out.String(), "Error:")
}

func TestMetricsBindAddressFromFileNeedsMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("metrics:\n  bindAddress: \"127.0.0.1:0\"\n"), 0o600))

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"demo", "--config-file", path})

	assert.ErrorContains(t, cmd.Execute(), "metrics are disabled")
}

func TestBench(t *testing.T) {
	out := run(t, "bench", "--ttl", "10ms", "--shards", "4", "--workers", "2", "--entries", "50", "--log-level", "error")

	assert.Contains(t, out, "Inserted         : 100")
	assert.Contains(t, out, "Evicted          : 100")
}
