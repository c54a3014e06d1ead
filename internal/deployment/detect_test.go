package deployment

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deployedCoreState = `{
  "version": 4,
  "outputs": {
    "confluent_environment_id": {"value": "env-abc"},
    "confluent_flink_compute_pool_id": {"value": "lfcp-123"},
    "confluent_kafka_cluster_display_name": {"value": "workshop-cluster"},
    "app_manager_service_account_id": {"value": "sa-456"},
    "cloud_region": {"value": "eu-west-1"}
  },
  "resources": []
}`

func writeCoreState(t *testing.T, cloud, content string) string {
	t.Helper()
	root := t.TempDir()
	dir := filepath.Join(root, cloud, "core")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "terraform.tfstate"), []byte(content), 0o600))
	return root
}

func TestIsDeployed(t *testing.T) {
	t.Parallel()

	t.Run("complete core state counts as deployed", func(t *testing.T) {
		t.Parallel()
		root := writeCoreState(t, "aws", deployedCoreState)
		assert.True(t, IsDeployed(context.Background(), "aws", root))
	})

	t.Run("missing state file is not deployed", func(t *testing.T) {
		t.Parallel()
		assert.False(t, IsDeployed(context.Background(), "aws", t.TempDir()))
	})

	t.Run("incomplete outputs are not deployed", func(t *testing.T) {
		t.Parallel()
		partial := `{
  "version": 4,
  "outputs": {"confluent_environment_id": {"value": "env-abc"}},
  "resources": []
}`
		root := writeCoreState(t, "aws", partial)
		assert.False(t, IsDeployed(context.Background(), "aws", root))
	})
}

func TestDetect(t *testing.T) {
	t.Parallel()

	t.Run("returns deployment details", func(t *testing.T) {
		t.Parallel()
		root := writeCoreState(t, "azure", deployedCoreState)

		info := Detect(context.Background(), "azure", root)
		require.NotNil(t, info)
		assert.Equal(t, "azure", info.Cloud)
		assert.Equal(t, "env-abc", info.EnvironmentID)
		assert.Equal(t, "lfcp-123", info.ComputePoolID)
		assert.Equal(t, "workshop-cluster", info.KafkaCluster)
		assert.Equal(t, "eu-west-1", info.Region)
	})

	t.Run("region falls back to us-east-1", func(t *testing.T) {
		t.Parallel()
		noRegion := `{
  "version": 4,
  "outputs": {
    "confluent_environment_id": {"value": "env-abc"},
    "confluent_flink_compute_pool_id": {"value": "lfcp-123"},
    "confluent_kafka_cluster_display_name": {"value": "workshop-cluster"},
    "app_manager_service_account_id": {"value": "sa-456"}
  },
  "resources": []
}`
		root := writeCoreState(t, "aws", noRegion)

		info := Detect(context.Background(), "aws", root)
		require.NotNil(t, info)
		assert.Equal(t, "us-east-1", info.Region)
	})

	t.Run("nil when not deployed", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, Detect(context.Background(), "aws", t.TempDir()))
	})
}
