package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/confluentinc/quickstart-streaming-agents/internal/ctxlog"
	"github.com/confluentinc/quickstart-streaming-agents/internal/fsutil"
)

// generatedFiles are the derived markdown reports this toolkit owns. They
// are disposable documentation, never a source of truth, and are removed
// wholesale on teardown.
var generatedFiles = map[string]bool{
	"FLINK_SQL_COMMANDS.md": true,
	"DEPLOYED_RESOURCES.md": true,
}

// Clean removes every generated markdown report under the cloud provider's
// terraform tree. Hand-authored walkthroughs live at the project root and
// are never touched.
func (a *App) Clean(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)

	cloudDir := filepath.Join(a.config.StateDir, a.config.Cloud)
	if !fsutil.DirExists(cloudDir) {
		logger.Debug("Cloud directory absent, nothing to clean.", "dir", cloudDir)
		return nil
	}

	files, err := fsutil.FindFilesByExtension(cloudDir, ".md")
	if err != nil {
		return fmt.Errorf("failed to scan %s for generated files: %w", cloudDir, err)
	}

	removed := 0
	for _, file := range files {
		if !generatedFiles[filepath.Base(file)] {
			continue
		}
		if err := os.Remove(file); err != nil {
			logger.Warn("Failed to remove generated file.", "path", file, "reason", err)
			continue
		}
		fmt.Fprintf(a.outW, "Removed: %s\n", file)
		removed++
	}

	logger.Debug("Clean finished.", "removed", removed)
	return nil
}
