package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/confluentinc/quickstart-streaming-agents/internal/tfstate"
)

// DeployedResourcesInput carries the core state outputs the credentials
// report is built from.
type DeployedResourcesInput struct {
	Cloud       string
	State       *tfstate.State
	GeneratedAt time.Time
}

// DeployedResources renders the DEPLOYED_RESOURCES.md credentials report
// from core terraform outputs: warning header, account information, cloud
// details, provisioned cloud resources, service credentials, resource
// inventory, and LLM configuration. Values are emitted unredacted; the file
// itself warns readers it contains secrets.
func DeployedResources(in DeployedResourcesInput) string {
	get := func(key string) string { return in.State.OutputString(key, "") }

	sections := []string{
		deployedHeader(),
		accountSection(get, in.GeneratedAt),
		cloudDetailsSection(in.Cloud, get),
		cloudResourcesSection(in.Cloud, get),
		credentialsSection(get),
		inventorySection(get),
		llmConfigurationSection(in.Cloud, get),
	}

	return strings.Join(sections, "\n\n")
}

type outputFunc func(key string) string

func deployedHeader() string {
	return "# Confluent Cloud Resources\n\n" +
		"**WARNING: This file contains API keys, secrets, and other sensitive credentials. " +
		"Do not commit to version control or share publicly.**\n\n---"
}

func accountSection(get outputFunc, generatedAt time.Time) string {
	owner := get("owner_email")
	if owner == "" {
		owner = "Not provided"
	}
	var b strings.Builder
	b.WriteString("## Account Information\n\n")
	fmt.Fprintf(&b, "**Owner Email**: `%s`\n", owner)
	fmt.Fprintf(&b, "**Deployed**: %s\n", generatedAt.UTC().Format(timestampLayout))
	fmt.Fprintf(&b, "**Region**: %s\n", get("cloud_region"))
	fmt.Fprintf(&b, "**Environment**: %s\n", get("confluent_environment_display_name"))
	fmt.Fprintf(&b, "**Environment ID**: `%s`\n\n---", get("confluent_environment_id"))
	return b.String()
}

func cloudDetailsSection(cloud string, get outputFunc) string {
	var b strings.Builder
	b.WriteString("## Cloud Details\n\n")
	if cloud == "azure" {
		b.WriteString("- **Provider**: Azure\n")
		fmt.Fprintf(&b, "- **Region**: `%s`\n", get("cloud_region"))
		fmt.Fprintf(&b, "- **Subscription**: `%s`\n\n---", get("azure_subscription_id"))
	} else {
		b.WriteString("- **Provider**: AWS\n")
		fmt.Fprintf(&b, "- **Region**: `%s`\n\n---", get("cloud_region"))
	}
	return b.String()
}

func cloudResourcesSection(cloud string, get outputFunc) string {
	randomID := get("random_id")
	var b strings.Builder
	if cloud == "azure" {
		b.WriteString("## Azure Resources Created\n\n")
		b.WriteString("The following Azure resources were created in this deployment:\n\n")
		b.WriteString("| Resource Type | Name | Purpose |\n")
		b.WriteString("|---------------|------|---------|\n")
		fmt.Fprintf(&b, "| **Resource Group** | `rg-openai-%s` | Container for OpenAI resources |\n", randomID)
		fmt.Fprintf(&b, "| **Cognitive Account** | `openai-%s` | Azure OpenAI service |\n", randomID)
		fmt.Fprintf(&b, "| **Cognitive Endpoint** | `https://openai-%s.openai.azure.com/` | API endpoint |\n", randomID)
		fmt.Fprintf(&b, "| **GPT-4 Deployment** | `gpt4-deployment-%s` | Text generation model |\n", randomID)
		fmt.Fprintf(&b, "| **Embedding Deployment** | `embedding-deployment-%s` | Text embedding model |\n\n---", randomID)
	} else {
		b.WriteString("## AWS Resources Created\n\n")
		b.WriteString("The following AWS resources were created in this deployment:\n\n")
		b.WriteString("| Resource Type | Name/ID | Purpose |\n")
		b.WriteString("|---------------|---------|---------|\n")
		fmt.Fprintf(&b, "| **IAM User** | `bedrock-user-%s` | Bedrock API access |\n", randomID)
		fmt.Fprintf(&b, "| **IAM Policy** | `bedrock-policy-%s` | Bedrock permissions |\n", randomID)
		fmt.Fprintf(&b, "| **IAM Access Key** | `%s` | Bedrock credentials |\n\n---", get("aws_access_key_id"))
	}
	return b.String()
}

func credentialsSection(get outputFunc) string {
	var b strings.Builder
	b.WriteString("## Service Credentials\n\n")
	b.WriteString("### Primary Credentials (Organization Admin)\n\n")
	b.WriteString("| Service | Endpoint/Resource | API Key | API Secret |\n")
	b.WriteString("|---------|-------------------|---------|------------|\n")
	fmt.Fprintf(&b, "| **Confluent Cloud** | Org: `%s`<br>Env: `%s` | `%s` | `%s` |\n\n",
		get("confluent_organization_id"), get("confluent_environment_id"),
		get("confluent_cloud_api_key"), get("confluent_cloud_api_secret"))
	b.WriteString("**Note**: These are your Organization Admin credentials - use these for CLI access and overall account management.\n\n")
	b.WriteString("### Additional Service Credentials\n\n")
	b.WriteString("| Service | Endpoint/Resource | API Key | API Secret |\n")
	b.WriteString("|---------|-------------------|---------|------------|\n")
	fmt.Fprintf(&b, "| **Kafka Cluster** | `%s` | `%s` | `%s` |\n",
		get("confluent_kafka_cluster_bootstrap_endpoint"),
		get("app_manager_kafka_api_key"), get("app_manager_kafka_api_secret"))
	fmt.Fprintf(&b, "| **Schema Registry** | `%s` | `%s` | `%s` |\n",
		get("confluent_schema_registry_rest_endpoint"),
		get("app_manager_schema_registry_api_key"), get("app_manager_schema_registry_api_secret"))
	fmt.Fprintf(&b, "| **Flink** | `%s`<br>Pool: `%s` | `%s` | `%s` |\n\n---",
		get("confluent_flink_rest_endpoint"), get("confluent_flink_compute_pool_id"),
		get("app_manager_flink_api_key"), get("app_manager_flink_api_secret"))
	return b.String()
}

func inventorySection(get outputFunc) string {
	var b strings.Builder
	b.WriteString("## Resource Inventory\n\n")
	b.WriteString("| Resource Type | ID | Display Name / Details |\n")
	b.WriteString("|---------------|----|-----------------------|\n")
	fmt.Fprintf(&b, "| Environment | `%s` | %s |\n",
		get("confluent_environment_id"), get("confluent_environment_display_name"))
	fmt.Fprintf(&b, "| Kafka Cluster | `%s` | %s<br>REST: `%s` |\n",
		get("confluent_kafka_cluster_id"), get("confluent_kafka_cluster_display_name"),
		get("confluent_kafka_cluster_rest_endpoint"))
	fmt.Fprintf(&b, "| Schema Registry | `%s` | `%s` |\n",
		get("confluent_schema_registry_id"), get("confluent_schema_registry_rest_endpoint"))
	fmt.Fprintf(&b, "| Flink Pool | `%s` | - |\n", get("confluent_flink_compute_pool_id"))
	fmt.Fprintf(&b, "| Service Account | `%s` | Role: EnvironmentAdmin |\n\n---",
		get("app_manager_service_account_id"))
	return b.String()
}

func llmConfigurationSection(cloud string, get outputFunc) string {
	provider, providerName := "bedrock", "AWS Bedrock"
	if cloud == "azure" {
		provider, providerName = "azureopenai", "Azure OpenAI"
	}
	textgen := get("llm_connection_name")
	embedding := get("llm_embedding_connection_name")
	env := get("confluent_environment_display_name")
	cluster := get("confluent_kafka_cluster_display_name")

	var b strings.Builder
	b.WriteString("## LLM Configuration\n\n### Flink Connections\n\n")
	fmt.Fprintf(&b, "The following Flink AI connections were created via Terraform (%s):\n\n", providerName)
	fmt.Fprintf(&b, "- **Text Generation Connection**: `%s`\n", textgen)
	fmt.Fprintf(&b, "- **Embedding Connection**: `%s`\n\n", embedding)
	b.WriteString("### Flink Models\n\n")
	b.WriteString("The following Flink AI models were created and are ready to use:\n\n")
	b.WriteString("#### Text Generation Model\n\n**Model Name**: `llm_textgen_model`\n\n")
	fmt.Fprintf(&b, "```sql\nCREATE MODEL `%s`.`%s`.`llm_textgen_model`\nINPUT (prompt STRING)\nOUTPUT (response STRING)\nWITH(\n  'provider' = '%s',\n  'task' = 'text_generation',\n  '%s.connection' = '%s',\n  '%s.model_version' = '2024-08-06',\n  '%s.PARAMS.max_tokens' = '50000'\n);\n```\n\n",
		env, cluster, provider, provider, textgen, provider, provider)
	b.WriteString("#### Embedding Model\n\n**Model Name**: `llm_embedding_model`\n\n")
	fmt.Fprintf(&b, "```sql\nCREATE MODEL `%s`.`%s`.`llm_embedding_model`\nINPUT (text STRING)\nOUTPUT (embedding ARRAY<FLOAT>)\nWITH(\n  'provider' = '%s',\n  'task' = 'embedding',\n  '%s.connection' = '%s',\n  '%s.PARAMS.max_tokens' = '50000'\n);\n```\n\n",
		env, cluster, provider, provider, embedding, provider)
	b.WriteString("### Usage Example\n\n```sql\n-- Generate text with the LLM\nSELECT response\nFROM my_table,\nLATERAL TABLE(ML_PREDICT('llm_textgen_model', prompt_column));\n\n-- Generate embeddings\nSELECT embedding\nFROM my_table,\nLATERAL TABLE(ML_PREDICT('llm_embedding_model', text_column));\n```")
	return b.String()
}
