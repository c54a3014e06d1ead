package summary

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confluentinc/quickstart-streaming-agents/internal/flinksql"
)

var generatedAt = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

func TestFlinkSQLSummary(t *testing.T) {
	t.Parallel()

	base := FlinkSQLInput{
		LabName:     "lab1-tool-calling",
		Cloud:       "aws",
		Environment: "workshop-env",
		Cluster:     "workshop-cluster",
		Region:      "us-east-1",
		GeneratedAt: generatedAt,
	}

	t.Run("sections render in fixed order", func(t *testing.T) {
		t.Parallel()
		in := base
		in.Shared = []flinksql.Statement{{Title: "bedrock-connection", SQL: "-- Created in Core Terraform\nCREATE CONNECTION"}}
		in.Automated = []flinksql.Statement{{Title: "create-orders", SQL: "CREATE TABLE orders (id INT)"}}
		in.Manual = "## 1. Do the thing\n\n```sql\nSELECT 1;\n```"

		got := FlinkSQLSummary(in)

		sections := []string{
			"# Lab1 Tool Calling - Flink SQL Commands",
			"## Shared Resources from Core Infrastructure",
			"## Automated Commands (Created by Terraform)",
			"## Manual Commands (From Walkthrough)",
			"## Notes",
			"**Generated**: 2026-03-14 09:26:53 UTC",
		}
		last := -1
		for _, section := range sections {
			idx := strings.Index(got, section)
			require.NotEqual(t, -1, idx, "missing section %q", section)
			assert.Greater(t, idx, last, "section %q out of order", section)
			last = idx
		}
	})

	t.Run("metadata header carries core outputs", func(t *testing.T) {
		t.Parallel()
		got := FlinkSQLSummary(base)

		assert.Contains(t, got, "**Environment**: workshop-env")
		assert.Contains(t, got, "**Cluster**: workshop-cluster")
		assert.Contains(t, got, "**Cloud Provider**: AWS")
		assert.Contains(t, got, "**Region**: us-east-1")
	})

	t.Run("items are numbered per section", func(t *testing.T) {
		t.Parallel()
		in := base
		in.Shared = []flinksql.Statement{
			{Title: "textgen-model", SQL: "CREATE MODEL a"},
			{Title: "embedding-model", SQL: "CREATE MODEL b"},
		}
		in.Automated = []flinksql.Statement{
			{Title: "create-orders", SQL: "CREATE TABLE orders"},
		}

		got := FlinkSQLSummary(in)

		assert.Contains(t, got, "### 1. textgen-model")
		assert.Contains(t, got, "### 2. embedding-model")
		assert.Contains(t, got, "### 1. create-orders", "numbering restarts per section")
	})

	t.Run("statement bodies render as fenced sql blocks", func(t *testing.T) {
		t.Parallel()
		in := base
		in.Automated = []flinksql.Statement{{Title: "create-orders", SQL: "CREATE TABLE orders (id INT)"}}

		got := FlinkSQLSummary(in)
		assert.Contains(t, got, "```sql\nCREATE TABLE orders (id INT)\n```")
	})

	t.Run("empty automated section emits the placeholder sentence", func(t *testing.T) {
		t.Parallel()
		got := FlinkSQLSummary(base)
		assert.Contains(t, got, "_No automated SQL commands for this lab._")
	})

	t.Run("empty manual section emits the placeholder sentence", func(t *testing.T) {
		t.Parallel()
		got := FlinkSQLSummary(base)
		assert.Contains(t, got, "_No manual SQL commands for this lab._")
	})

	t.Run("shared section is omitted entirely when empty", func(t *testing.T) {
		t.Parallel()
		got := FlinkSQLSummary(base)
		assert.NotContains(t, got, "## Shared Resources from Core Infrastructure")
	})

	t.Run("manual markdown is embedded verbatim", func(t *testing.T) {
		t.Parallel()
		in := base
		in.Manual = "## 2. Configure the agent\n\n```bash\nconfluent login\n```"

		got := FlinkSQLSummary(in)
		assert.Contains(t, got, in.Manual)
	})
}
