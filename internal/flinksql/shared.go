package flinksql

import (
	"context"
	"strings"

	"github.com/confluentinc/quickstart-streaming-agents/internal/ctxlog"
	"github.com/confluentinc/quickstart-streaming-agents/internal/tfstate"
)

// sharedOriginComment marks statements that were created by the core module
// rather than a lab's own terraform.
const sharedOriginComment = "-- Created in Core Terraform"

// sharedKeywords select statement resources that belong to the shared LLM
// infrastructure; matched against the lowercased statement name.
var sharedKeywords = []string{"llm", "model", "textgen", "embedding", "bedrock", "azureopenai"}

// sharedConnectionTypes select connection resources that front an LLM
// provider.
var sharedConnectionTypes = map[string]bool{
	"bedrock":     true,
	"azureopenai": true,
}

// ExtractSharedResources reads the core state file and returns the LLM
// connection and model statements a lab cross-references from shared
// infrastructure. Each statement carries an origin comment so the report can
// distinguish shared setup from lab-local setup. Missing or malformed state
// degrades to an empty result with a warning.
func ExtractSharedResources(ctx context.Context, coreStatePath string) []Statement {
	logger := ctxlog.FromContext(ctx)

	state, err := tfstate.ReadFile(coreStatePath)
	if err != nil {
		logger.Warn("Skipping shared resource extraction.", "path", coreStatePath, "reason", err)
		return nil
	}

	records := state.Records()
	var resources []Statement

	for _, rec := range records {
		if rec.Type != statementResourceType {
			continue
		}
		name := strings.ToLower(rec.StringAttr("statement_name", ""))
		if !containsAny(name, sharedKeywords) {
			continue
		}
		resources = append(resources, Statement{
			Title: rec.StringAttr("statement_name", "Unknown"),
			SQL:   sharedOriginComment + "\n" + SanitizeSQL(rec.StringAttr("statement", "")),
		})
	}

	for _, rec := range records {
		if rec.Type != connectionResourceType {
			continue
		}
		connType := strings.ToLower(rec.StringAttr("type", ""))
		if !sharedConnectionTypes[connType] {
			continue
		}
		resources = append(resources, Statement{
			Title: rec.StringAttr("display_name", "Unknown Connection"),
			SQL:   sharedOriginComment + "\n" + ReconstructConnectionSQL(rec),
		})
	}

	return resources
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
