// credentials.go
// --------------
// Credential resolution for the dashboard connection. Three tiers, highest
// precedence first:
//
//  1. explicit values supplied by the caller (legacy-style, per call)
//  2. variables declared on the connection context (inventory-style)
//  3. process environment fallback
//
// Each field resolves independently, so the base URL may come from a
// different tier than the API key. Resolution happens exactly once per Conn
// in persistent mode and once per call in legacy mode.
package merakibridge

import (
	"os"

	"golang.org/x/oauth2"
)

// Connection-context variable names recognized during resolution.
const (
	VarAPIKey  = "meraki_api_key"
	VarBaseURL = "meraki_base_url"
	VarOrgID   = "meraki_org_id"
)

// Environment fallbacks. MERAKI_KEY is the name the dashboard tooling has
// historically used.
const (
	EnvAPIKey  = "MERAKI_KEY"
	EnvBaseURL = "MERAKI_BASE_URL"
	EnvOrgID   = "MERAKI_ORG_ID"
)

// Credentials holds everything needed to authenticate against the dashboard.
// Resolved once at connection creation and immutable thereafter.
//
// TokenSource, when non-nil, authenticates via an OAuth bearer token instead
// of the static API key and satisfies the key requirement on its own.
type Credentials struct {
	APIKey      string
	BaseURL     string
	OrgID       string
	TokenSource oauth2.TokenSource
}

// VariableSource is the lookup collaborator that supplies connection-context
// values (already decrypted). Implementations return ok=false for absent
// names.
type VariableSource interface {
	GetVariable(name string) (value string, ok bool)
}

// MapVariables is a VariableSource backed by a plain map.
type MapVariables map[string]string

func (m MapVariables) GetVariable(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// StaticTokenCredentials builds Credentials around a pre-issued OAuth access
// token.
func StaticTokenCredentials(accessToken string) Credentials {
	return Credentials{
		TokenSource: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}),
	}
}

// ResolveCredentials resolves each credential field through the tiers above.
// vars may be nil, in which case the connection-context tier is skipped (the
// legacy path does this). Fails with *ConfigurationError when no tier
// supplies an API key and no token source is set.
func ResolveCredentials(explicit Credentials, vars VariableSource) (Credentials, error) {
	creds := Credentials{
		APIKey:      resolveField(explicit.APIKey, VarAPIKey, EnvAPIKey, vars),
		BaseURL:     resolveField(explicit.BaseURL, VarBaseURL, EnvBaseURL, vars),
		OrgID:       resolveField(explicit.OrgID, VarOrgID, EnvOrgID, vars),
		TokenSource: explicit.TokenSource,
	}
	if creds.BaseURL == "" {
		creds.BaseURL = DefaultBaseURL
	}
	if creds.APIKey == "" && creds.TokenSource == nil {
		return Credentials{}, &ConfigurationError{
			Reason: "no API key: set it explicitly, via " + VarAPIKey + ", or via " + EnvAPIKey,
		}
	}
	return creds, nil
}

func resolveField(explicit, varName, envName string, vars VariableSource) string {
	if explicit != "" {
		return explicit
	}
	if vars != nil {
		if v, ok := vars.GetVariable(varName); ok && v != "" {
			return v
		}
	}
	return os.Getenv(envName)
}
