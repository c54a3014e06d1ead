// Package summary assembles the generated markdown reports: the per-lab
// Flink SQL command summary and the deployed-resources credentials report.
// Everything here is pure string composition over pre-extracted inputs; no
// cloud calls, no state reads.
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/confluentinc/quickstart-streaming-agents/internal/flinksql"
)

// Placeholder sentences emitted when a section has no items. A report never
// contains an empty heading with no explanation.
const (
	noAutomatedPlaceholder = "_No automated SQL commands for this lab._"
	noManualPlaceholder    = "_No manual SQL commands for this lab._"
)

const timestampLayout = "2006-01-02 15:04:05 UTC"

// FlinkSQLInput carries everything the per-lab summary needs. Statements are
// pre-extracted, the walkthrough markdown is pre-assembled, and GeneratedAt
// is injected so output is deterministic under test.
type FlinkSQLInput struct {
	LabName     string
	Cloud       string
	Environment string
	Cluster     string
	Region      string
	Shared      []flinksql.Statement
	Automated   []flinksql.Statement
	Manual      string
	GeneratedAt time.Time
}

// FlinkSQLSummary renders the complete Flink SQL command summary for one
// lab, with sections in fixed order: metadata header, shared core resources,
// automated commands, manual walkthrough commands, footer.
func FlinkSQLSummary(in FlinkSQLInput) string {
	var b strings.Builder

	title := labTitle(in.LabName)
	fmt.Fprintf(&b, "# %s - Flink SQL Commands\n\n", title)
	fmt.Fprintf(&b, "This file contains the Flink SQL commands used in %s.\n\n", title)
	fmt.Fprintf(&b, "**Environment**: %s\n", in.Environment)
	fmt.Fprintf(&b, "**Cluster**: %s\n", in.Cluster)
	fmt.Fprintf(&b, "**Cloud Provider**: %s\n", strings.ToUpper(in.Cloud))
	fmt.Fprintf(&b, "**Region**: %s\n\n---\n\n", in.Region)

	if len(in.Shared) > 0 {
		b.WriteString("## Shared Resources from Core Infrastructure\n\n")
		b.WriteString("The following LLM connections and models were created in Core Terraform and are used by this lab:\n\n")
		writeStatements(&b, in.Shared)
		b.WriteString("---\n\n")
	}

	b.WriteString("## Automated Commands (Created by Terraform)\n\n")
	b.WriteString("The following Flink SQL commands were automatically executed during Terraform deployment:\n\n")
	if len(in.Automated) > 0 {
		writeStatements(&b, in.Automated)
	} else {
		b.WriteString(noAutomatedPlaceholder + "\n\n")
	}

	b.WriteString("---\n\n## Manual Commands (From Walkthrough)\n\n")
	b.WriteString("The following commands are meant to be run manually as part of the lab walkthrough:\n\n")
	if in.Manual != "" {
		b.WriteString(in.Manual + "\n\n")
	} else {
		b.WriteString(noManualPlaceholder + "\n\n")
	}

	b.WriteString("---\n\n## Notes\n\n")
	b.WriteString("- This file is auto-generated during Terraform deployment\n")
	b.WriteString("- Commands shown without full table qualification for readability\n")
	b.WriteString("- Refer to the lab walkthrough for complete usage instructions and context\n")
	b.WriteString("- This file will be automatically removed on destroy\n\n")
	fmt.Fprintf(&b, "**Generated**: %s\n", in.GeneratedAt.UTC().Format(timestampLayout))

	return b.String()
}

// writeStatements renders each statement as a level-3 numbered heading and a
// fenced sql block. Numbering restarts per section.
func writeStatements(b *strings.Builder, statements []flinksql.Statement) {
	for i, stmt := range statements {
		fmt.Fprintf(b, "### %d. %s\n\n", i+1, stmt.Title)
		fmt.Fprintf(b, "```sql\n%s\n```\n\n", stmt.SQL)
	}
}

// labTitle turns a lab directory name into a display title:
// "lab1-tool-calling" becomes "Lab1 Tool Calling".
func labTitle(labName string) string {
	words := strings.Split(strings.ReplaceAll(labName, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
