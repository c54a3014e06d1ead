package flinksql

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coreState = `{
  "version": 4,
  "resources": [
    {
      "type": "confluent_flink_statement",
      "name": "textgen_model",
      "instances": [
        {"attributes": {
          "statement_name": "create-llm-textgen-model",
          "statement": "CREATE MODEL ` + "`env`.`cluster`.`llm_textgen_model`" + ` INPUT (prompt STRING) OUTPUT (response STRING)"
        }}
      ]
    },
    {
      "type": "confluent_flink_statement",
      "name": "housekeeping",
      "instances": [
        {"attributes": {
          "statement_name": "create-orders-table",
          "statement": "CREATE TABLE orders (id INT)"
        }}
      ]
    },
    {
      "type": "confluent_flink_connection",
      "name": "bedrock",
      "instances": [
        {"attributes": {
          "type": "bedrock",
          "display_name": "bedrock-connection",
          "endpoint": "https://bedrock-runtime.us-east-1.amazonaws.com",
          "aws_access_key_id": "AKIAEXAMPLE",
          "aws_secret_access_key": "secret/key"
        }}
      ]
    },
    {
      "type": "confluent_flink_connection",
      "name": "zapier",
      "instances": [
        {"attributes": {
          "type": "MCP_SERVER",
          "display_name": "zapier-mcp-connection",
          "endpoint": "https://mcp.zapier.com/api/mcp/sse"
        }}
      ]
    }
  ]
}`

func TestExtractSharedResources(t *testing.T) {
	t.Parallel()

	t.Run("keyword and provider filtering with origin comments", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "terraform.tfstate")
		require.NoError(t, os.WriteFile(path, []byte(coreState), 0o600))

		got := ExtractSharedResources(context.Background(), path)

		require.Len(t, got, 2)
		assert.Equal(t, "create-llm-textgen-model", got[0].Title)
		assert.Contains(t, got[0].SQL, "-- Created in Core Terraform\n")
		assert.Contains(t, got[0].SQL, "CREATE MODEL `llm_textgen_model`", "qualification stripped")

		assert.Equal(t, "bedrock-connection", got[1].Title)
		assert.Contains(t, got[1].SQL, "-- Created in Core Terraform\n")
		assert.Contains(t, got[1].SQL, "'aws-secret-access-key' = 'secret/key'")
	})

	t.Run("non-LLM resources are excluded", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "terraform.tfstate")
		require.NoError(t, os.WriteFile(path, []byte(coreState), 0o600))

		got := ExtractSharedResources(context.Background(), path)

		for _, stmt := range got {
			assert.NotEqual(t, "create-orders-table", stmt.Title)
			assert.NotEqual(t, "zapier-mcp-connection", stmt.Title)
		}
	})

	t.Run("missing core state degrades to empty", func(t *testing.T) {
		t.Parallel()
		got := ExtractSharedResources(context.Background(), filepath.Join(t.TempDir(), "terraform.tfstate"))
		assert.Empty(t, got)
	})
}
