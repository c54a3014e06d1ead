// Package deployment inspects persisted state to decide whether workshop
// infrastructure is already deployed, without calling any cloud API.
package deployment

import (
	"context"
	"path/filepath"

	"github.com/confluentinc/quickstart-streaming-agents/internal/ctxlog"
	"github.com/confluentinc/quickstart-streaming-agents/internal/fsutil"
	"github.com/confluentinc/quickstart-streaming-agents/internal/tfstate"
)

// requiredCoreOutputs must all be present in core state for a deployment to
// count as complete.
var requiredCoreOutputs = []string{
	"confluent_environment_id",
	"confluent_flink_compute_pool_id",
	"confluent_kafka_cluster_display_name",
	"app_manager_service_account_id",
}

// Info describes an existing deployment.
type Info struct {
	Cloud         string
	EnvironmentID string
	ComputePoolID string
	KafkaCluster  string
	Region        string
}

// CoreStatePath returns the conventional location of the core module's state
// file under the project root.
func CoreStatePath(root, cloud string) string {
	return filepath.Join(root, cloud, "core", "terraform.tfstate")
}

// IsDeployed reports whether the core infrastructure for cloud is deployed
// under root, with all required outputs present in its state.
func IsDeployed(ctx context.Context, cloud, root string) bool {
	logger := ctxlog.FromContext(ctx)

	// Quick file check before parsing anything.
	statePath := CoreStatePath(root, cloud)
	if !fsutil.FileExists(statePath) {
		logger.Debug("No terraform state found, infrastructure not deployed.", "path", statePath)
		return false
	}

	state, err := tfstate.ReadFile(statePath)
	if err != nil {
		logger.Debug("Core state not readable, infrastructure not deployed.", "reason", err)
		return false
	}

	var missing []string
	for _, key := range requiredCoreOutputs {
		if state.OutputString(key, "") == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		logger.Warn("Terraform state incomplete.", "missing_outputs", missing)
		return false
	}

	return true
}

// Detect returns deployment details when the core infrastructure is
// deployed, or nil when it is not.
func Detect(ctx context.Context, cloud, root string) *Info {
	if !IsDeployed(ctx, cloud, root) {
		return nil
	}

	state, err := tfstate.ReadFile(CoreStatePath(root, cloud))
	if err != nil {
		return nil
	}

	return &Info{
		Cloud:         cloud,
		EnvironmentID: state.OutputString("confluent_environment_id", ""),
		ComputePoolID: state.OutputString("confluent_flink_compute_pool_id", ""),
		KafkaCluster:  state.OutputString("confluent_kafka_cluster_display_name", ""),
		Region:        state.OutputString("cloud_region", "us-east-1"),
	}
}
