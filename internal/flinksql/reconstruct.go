// Package flinksql reconstructs human-readable Flink SQL statements from
// deployed Terraform state. Statements authored as SQL are read back
// verbatim; native connection resources are re-expressed as equivalent
// CREATE CONNECTION statements, credentials included, because the state
// document is the only place those values survive provisioning.
package flinksql

import (
	"context"
	"fmt"
	"strings"

	"github.com/confluentinc/quickstart-streaming-agents/internal/ctxlog"
	"github.com/confluentinc/quickstart-streaming-agents/internal/tfstate"
)

// Resource types emitted by the Confluent Terraform provider.
const (
	statementResourceType  = "confluent_flink_statement"
	connectionResourceType = "confluent_flink_connection"
)

// Statement is a reconstructed declarative command ready for display.
type Statement struct {
	Title string
	SQL   string
}

// credentialAttrs is the allow-list of connection attributes carried into a
// reconstructed CREATE CONNECTION statement. It is the single point of truth
// for which attribute shapes count as credentials.
var credentialAttrs = []string{
	"api-key", "api_key",
	"password",
	"connection-string", "connection_string",
	"username",
	"aws_access_key_id",
	"aws_secret_access_key",
}

// ExtractStatements reads the state file at statePath and returns every
// Flink statement and connection resource as a displayable Statement.
// Missing or malformed state degrades to an empty result with a warning;
// documentation generation never blocks a deployment.
func ExtractStatements(ctx context.Context, statePath string) []Statement {
	logger := ctxlog.FromContext(ctx)

	state, err := tfstate.ReadFile(statePath)
	if err != nil {
		logger.Warn("Skipping Flink SQL extraction.", "path", statePath, "reason", err)
		return nil
	}

	records := state.Records()
	var statements []Statement

	for _, rec := range records {
		if rec.Type != statementResourceType {
			continue
		}
		if stmt, ok := Reconstruct(rec); ok {
			statements = append(statements, stmt)
		}
	}

	// Connection resources are native config, not authored SQL, so they are
	// re-synthesized as CREATE CONNECTION statements and listed after the
	// authored ones.
	for _, rec := range records {
		if rec.Type != connectionResourceType {
			continue
		}
		if stmt, ok := Reconstruct(rec); ok {
			statements = append(statements, stmt)
		}
	}

	return statements
}

// Reconstruct turns a single record of a known resource type into a
// displayable statement. It reports false for resource types that carry no
// statement to show.
func Reconstruct(rec tfstate.Record) (Statement, bool) {
	switch rec.Type {
	case statementResourceType:
		return Statement{
			Title: rec.StringAttr("statement_name", "Unknown"),
			SQL:   SanitizeSQL(rec.StringAttr("statement", "")),
		}, true
	case connectionResourceType:
		return Statement{
			Title: rec.StringAttr("display_name", "Unknown Connection"),
			SQL:   ReconstructConnectionSQL(rec),
		}, true
	}
	return Statement{}, false
}

// ReconstructConnectionSQL synthesizes a CREATE CONNECTION statement from a
// native connection record. The WITH clause starts with type and endpoint,
// then carries every present attribute on the credential allow-list,
// unredacted, with underscores converted to hyphens in emitted key names
// (the Flink SQL convention). Absent and empty attributes are omitted.
func ReconstructConnectionSQL(rec tfstate.Record) string {
	connType := rec.StringAttr("type", "UNKNOWN")
	displayName := rec.StringAttr("display_name", "unknown-connection")
	endpoint := rec.StringAttr("endpoint", "")

	withClauses := []string{fmt.Sprintf("'type' = '%s'", connType)}
	if endpoint != "" {
		withClauses = append(withClauses, fmt.Sprintf("'endpoint' = '%s'", endpoint))
	}

	for _, attr := range credentialAttrs {
		value := rec.StringAttr(attr, "")
		if value == "" {
			continue
		}
		sqlAttr := strings.ReplaceAll(attr, "_", "-")
		withClauses = append(withClauses, fmt.Sprintf("'%s' = '%s'", sqlAttr, value))
	}

	return fmt.Sprintf("CREATE CONNECTION IF NOT EXISTS `%s` WITH (\n  %s\n)",
		displayName, strings.Join(withClauses, ",\n  "))
}
