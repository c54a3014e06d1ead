package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coreStateFixture = `{
  "version": 4,
  "outputs": {
    "cloud_provider": {"value": "aws"},
    "cloud_region": {"value": "us-east-1"},
    "confluent_environment_display_name": {"value": "workshop-env"},
    "confluent_environment_id": {"value": "env-abc"},
    "confluent_kafka_cluster_display_name": {"value": "workshop-cluster"},
    "confluent_flink_compute_pool_id": {"value": "lfcp-123"},
    "app_manager_service_account_id": {"value": "sa-456"}
  },
  "resources": [
    {
      "type": "confluent_flink_connection",
      "name": "bedrock",
      "instances": [
        {"attributes": {
          "type": "bedrock",
          "display_name": "bedrock-connection",
          "endpoint": "https://bedrock-runtime.us-east-1.amazonaws.com",
          "aws_access_key_id": "AKIAEXAMPLE",
          "aws_secret_access_key": "SECRETKEY"
        }}
      ]
    }
  ]
}`

const labStateFixture = `{
  "version": 4,
  "resources": [
    {
      "type": "confluent_flink_statement",
      "name": "orders",
      "instances": [
        {"attributes": {
          "statement_name": "create-orders",
          "statement": "CREATE TABLE ` + "`env`.`cluster`.`orders`" + ` (id INT)"
        }}
      ]
    }
  ]
}`

const walkthroughFixture = "# Walkthrough\n\n## 1. Query orders\n\n```sql\nSELECT * FROM orders;\n```\n"

// newTestApp builds an App over a synthetic project tree with core and lab1
// deployed and returns the app, the tree root, and the output buffer.
func newTestApp(t *testing.T, lab string) (*App, string, *bytes.Buffer) {
	t.Helper()
	root := t.TempDir()

	coreDir := filepath.Join(root, "aws", "core")
	require.NoError(t, os.MkdirAll(coreDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(coreDir, "terraform.tfstate"), []byte(coreStateFixture), 0o600))

	labDir := filepath.Join(root, "aws", "lab1-tool-calling")
	require.NoError(t, os.MkdirAll(labDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(labDir, "terraform.tfstate"), []byte(labStateFixture), 0o600))

	require.NoError(t, os.WriteFile(filepath.Join(root, "LAB1-Walkthrough.md"), []byte(walkthroughFixture), 0o600))

	out := &bytes.Buffer{}
	cfg, err := NewConfig(Config{
		Lab:       lab,
		Cloud:     "aws",
		StateDir:  root,
		LogLevel:  "error",
		LogFormat: "text",
	})
	require.NoError(t, err)

	a, err := NewApp(out, cfg)
	require.NoError(t, err)
	a.now = func() time.Time { return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC) }

	return a, root, out
}

func TestAppRun(t *testing.T) {
	t.Parallel()

	t.Run("generates summaries for deployed labs and skips the rest", func(t *testing.T) {
		t.Parallel()
		a, root, out := newTestApp(t, "")

		require.NoError(t, a.Run(context.Background()))

		summaryPath := filepath.Join(root, "aws", "lab1-tool-calling", "FLINK_SQL_COMMANDS.md")
		data, err := os.ReadFile(summaryPath)
		require.NoError(t, err)
		content := string(data)

		assert.Contains(t, content, "# Lab1 Tool Calling - Flink SQL Commands")
		assert.Contains(t, content, "### 1. create-orders")
		assert.Contains(t, content, "CREATE TABLE `orders` (id INT)", "qualification stripped")
		assert.Contains(t, content, "bedrock-connection")
		assert.Contains(t, content, "'aws-secret-access-key' = 'SECRETKEY'")
		assert.Contains(t, content, "## 1. Query orders")
		assert.Contains(t, content, "**Environment**: workshop-env")
		assert.Contains(t, content, "**Generated**: 2026-03-14 09:26:53 UTC")

		assert.Contains(t, out.String(), "Flink SQL summary saved to: "+summaryPath)
		assert.Contains(t, out.String(), "Generated summaries for: lab1")
		assert.Contains(t, out.String(), "Skipped (not deployed): lab2, lab3")
	})

	t.Run("writes the deployed-resources report for core", func(t *testing.T) {
		t.Parallel()
		a, root, out := newTestApp(t, "")

		require.NoError(t, a.Run(context.Background()))

		reportPath := filepath.Join(root, "aws", "core", "DEPLOYED_RESOURCES.md")
		data, err := os.ReadFile(reportPath)
		require.NoError(t, err)

		assert.Contains(t, string(data), "# Confluent Cloud Resources")
		assert.Contains(t, string(data), "`env-abc`")
		assert.Contains(t, out.String(), "Resource summary saved to: "+reportPath)
	})

	t.Run("single lab selection", func(t *testing.T) {
		t.Parallel()
		a, _, out := newTestApp(t, "lab1")

		require.NoError(t, a.Run(context.Background()))

		assert.Contains(t, out.String(), "Generated summaries for: lab1")
		assert.NotContains(t, out.String(), "lab2")
	})

	t.Run("unknown lab is an error", func(t *testing.T) {
		t.Parallel()
		a, _, _ := newTestApp(t, "lab9")

		err := a.Run(context.Background())
		assert.ErrorContains(t, err, "unknown lab")
	})

	t.Run("nothing deployed is not an error", func(t *testing.T) {
		t.Parallel()
		out := &bytes.Buffer{}
		cfg, err := NewConfig(Config{
			Cloud:     "aws",
			StateDir:  t.TempDir(),
			LogLevel:  "error",
			LogFormat: "text",
		})
		require.NoError(t, err)

		a, err := NewApp(out, cfg)
		require.NoError(t, err)

		require.NoError(t, a.Run(context.Background()))
		assert.Contains(t, out.String(), "Skipped (not deployed): lab1, lab2, lab3")
	})
}
