package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/confluentinc/quickstart-streaming-agents/internal/ctxlog"
	"github.com/confluentinc/quickstart-streaming-agents/internal/deployment"
	"github.com/confluentinc/quickstart-streaming-agents/internal/flinksql"
	"github.com/confluentinc/quickstart-streaming-agents/internal/fsutil"
	"github.com/confluentinc/quickstart-streaming-agents/internal/labs"
	"github.com/confluentinc/quickstart-streaming-agents/internal/summary"
	"github.com/confluentinc/quickstart-streaming-agents/internal/tfstate"
	"github.com/confluentinc/quickstart-streaming-agents/internal/walkthrough"
)

// Run generates the Flink SQL summary for every selected deployed lab, plus
// the deployed-resources report for the core module. Labs that are not
// deployed are skipped; every non-fatal condition degrades to a warning.
// Run never fails over missing or malformed state.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("Summary generation started.",
		"cloud", a.config.Cloud, "state_dir", a.config.StateDir, "lab", a.config.Lab)

	selected := a.manifest.Labs
	if a.config.Lab != "" {
		lab, ok := a.manifest.Find(a.config.Lab)
		if !ok {
			return fmt.Errorf("unknown lab %q: not in manifest", a.config.Lab)
		}
		selected = []labs.Lab{lab}
	}

	a.generateDeployedResources(ctx)

	var generated, skipped []string
	for _, lab := range selected {
		if a.generateLabSummary(ctx, lab) {
			generated = append(generated, lab.Name)
		} else {
			skipped = append(skipped, lab.Name)
		}
	}

	if len(generated) > 0 {
		fmt.Fprintf(a.outW, "Generated summaries for: %s\n", strings.Join(generated, ", "))
	}
	if len(skipped) > 0 {
		fmt.Fprintf(a.outW, "Skipped (not deployed): %s\n", strings.Join(skipped, ", "))
	}

	a.logger.Debug("Summary generation finished.",
		"generated", len(generated), "skipped", len(skipped))
	return nil
}

// generateLabSummary builds FLINK_SQL_COMMANDS.md for one lab. It reports
// false when the lab or the core module is not deployed.
func (a *App) generateLabSummary(ctx context.Context, lab labs.Lab) bool {
	labDir := filepath.Join(a.config.StateDir, a.config.Cloud, lab.DirName)
	if !fsutil.DirExists(labDir) {
		a.logger.Debug("Lab directory absent, skipping.", "lab", lab.Name, "dir", labDir)
		return false
	}

	coreStatePath := deployment.CoreStatePath(a.config.StateDir, a.config.Cloud)
	coreState, err := tfstate.ReadFile(coreStatePath)
	if err != nil {
		a.logger.Warn("Core state not readable, skipping lab summary.",
			"lab", lab.Name, "reason", err)
		return false
	}

	labStatePath := filepath.Join(labDir, "terraform.tfstate")
	automated := flinksql.ExtractStatements(ctx, labStatePath)
	shared := flinksql.ExtractSharedResources(ctx, coreStatePath)
	a.logger.Info("Extracted Flink SQL from Terraform state.",
		"lab", lab.Name, "automated", len(automated), "shared", len(shared))

	manual := ""
	if lab.Walkthrough != "" {
		manual = walkthrough.ExtractFile(ctx, filepath.Join(a.config.StateDir, lab.Walkthrough))
	}

	content := summary.FlinkSQLSummary(summary.FlinkSQLInput{
		LabName:     lab.DirName,
		Cloud:       a.config.Cloud,
		Environment: coreState.OutputString("confluent_environment_display_name", ""),
		Cluster:     coreState.OutputString("confluent_kafka_cluster_display_name", ""),
		Region:      coreState.OutputString("cloud_region", ""),
		Shared:      shared,
		Automated:   automated,
		Manual:      manual,
		GeneratedAt: a.now(),
	})

	outputPath := filepath.Join(labDir, "FLINK_SQL_COMMANDS.md")
	if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
		a.logger.Warn("Failed to write Flink SQL summary.", "path", outputPath, "reason", err)
		return false
	}

	fmt.Fprintf(a.outW, "Flink SQL summary saved to: %s\n", outputPath)
	return true
}

// generateDeployedResources builds DEPLOYED_RESOURCES.md for the core
// module when its state is readable.
func (a *App) generateDeployedResources(ctx context.Context) {
	coreStatePath := deployment.CoreStatePath(a.config.StateDir, a.config.Cloud)
	coreState, err := tfstate.ReadFile(coreStatePath)
	if err != nil {
		a.logger.Warn("Core state not readable, skipping deployed-resources report.", "reason", err)
		return
	}

	content := summary.DeployedResources(summary.DeployedResourcesInput{
		Cloud:       a.config.Cloud,
		State:       coreState,
		GeneratedAt: a.now(),
	})

	outputPath := filepath.Join(filepath.Dir(coreStatePath), "DEPLOYED_RESOURCES.md")
	if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
		a.logger.Warn("Failed to write deployed-resources report.", "path", outputPath, "reason", err)
		return
	}

	fmt.Fprintf(a.outW, "Resource summary saved to: %s\n", outputPath)
}
