package tfvars

import (
	"context"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/confluentinc/quickstart-streaming-agents/internal/ctxlog"
)

// CoreParams are the inputs for the core module's tfvars file.
type CoreParams struct {
	Cloud               string
	Region              string
	APIKey              string
	APISecret           string
	AzureSubscriptionID string
	OwnerEmail          string
}

// CoreContent renders the terraform.tfvars body for the core module.
func CoreContent(p CoreParams) string {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.AppendUnstructuredTokens(hclwrite.Tokens{commentToken("# Core Infrastructure Configuration\n")})
	body.SetAttributeValue("cloud_region", cty.StringVal(p.Region))
	body.SetAttributeValue("confluent_cloud_api_key", cty.StringVal(p.APIKey))
	body.SetAttributeValue("confluent_cloud_api_secret", cty.StringVal(p.APISecret))
	if p.OwnerEmail != "" {
		body.SetAttributeValue("owner_email", cty.StringVal(p.OwnerEmail))
	}
	if p.Cloud == "azure" && p.AzureSubscriptionID != "" {
		body.SetAttributeValue("azure_subscription_id", cty.StringVal(p.AzureSubscriptionID))
	}
	return string(f.Bytes())
}

// Lab1Content renders the terraform.tfvars body for the tool-calling lab.
// cloud_region is inherited from core via terraform_remote_state, so it is
// deliberately not written here.
func Lab1Content(zapierEndpoint string) string {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.AppendUnstructuredTokens(hclwrite.Tokens{commentToken("# Lab1 Configuration\n")})
	body.SetAttributeValue("zapier_sse_endpoint", cty.StringVal(zapierEndpoint))
	return string(f.Bytes())
}

// Lab2Content renders the terraform.tfvars body for the vector-search lab.
func Lab2Content(mongoConn, mongoUser, mongoPass string) string {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	body.AppendUnstructuredTokens(hclwrite.Tokens{commentToken("# Lab2 Configuration\n")})
	body.SetAttributeValue("mongodb_connection_string", cty.StringVal(mongoConn))
	body.SetAttributeValue("mongodb_username", cty.StringVal(mongoUser))
	body.SetAttributeValue("mongodb_password", cty.StringVal(mongoPass))
	return string(f.Bytes())
}

func commentToken(text string) *hclwrite.Token {
	return &hclwrite.Token{Type: hclsyntax.TokenComment, Bytes: []byte(text)}
}

// WriteForDeployment writes the tfvars files for every environment being
// deployed, pulling values from the credentials map. Environments whose
// required credentials are missing are skipped with a warning: tfvars
// generation must not block a partial deployment.
func WriteForDeployment(ctx context.Context, root, cloud, region string, creds map[string]string, envs []string) error {
	logger := ctxlog.FromContext(ctx)

	for _, env := range envs {
		var path, content string

		switch env {
		case "core":
			apiKey := CredentialValue(creds, "confluent_cloud_api_key")
			apiSecret := CredentialValue(creds, "confluent_cloud_api_secret")
			if apiKey == "" || apiSecret == "" {
				logger.Warn("Missing Confluent Cloud credentials, skipping core tfvars.", "env", env)
				continue
			}
			params := CoreParams{
				Cloud:      cloud,
				Region:     region,
				APIKey:     apiKey,
				APISecret:  apiSecret,
				OwnerEmail: CredentialValue(creds, "owner_email"),
			}
			if cloud == "azure" {
				params.AzureSubscriptionID = CredentialValue(creds, "azure_subscription_id")
			}
			path = filepath.Join(root, cloud, "core", "terraform.tfvars")
			content = CoreContent(params)

		case "lab1-tool-calling":
			endpoint := CredentialValue(creds, "zapier_sse_endpoint")
			if endpoint == "" {
				logger.Warn("Missing Zapier endpoint, skipping lab1 tfvars.", "env", env)
				continue
			}
			path = filepath.Join(root, cloud, env, "terraform.tfvars")
			content = Lab1Content(endpoint)

		case "lab2-vector-search":
			conn := CredentialValue(creds, "mongodb_connection_string")
			user := CredentialValue(creds, "mongodb_username")
			pass := CredentialValue(creds, "mongodb_password")
			if conn == "" || user == "" || pass == "" {
				logger.Warn("Missing MongoDB credentials, skipping lab2 tfvars.", "env", env)
				continue
			}
			path = filepath.Join(root, cloud, env, "terraform.tfvars")
			content = Lab2Content(conn, user, pass)

		default:
			logger.Debug("No tfvars template for environment.", "env", env)
			continue
		}

		if err := WriteFile(path, content); err != nil {
			return err
		}
		logger.Info("Wrote tfvars file.", "path", path)
	}

	return nil
}
