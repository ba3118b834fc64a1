package merakibridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearCredentialEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvOrgID, "")
}

func TestResolveCredentialsExplicitWins(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv(EnvAPIKey, "tier3-key")

	creds, err := ResolveCredentials(
		Credentials{APIKey: "tier1-key"},
		MapVariables{VarAPIKey: "tier2-key"},
	)
	require.NoError(t, err)
	assert.Equal(t, "tier1-key", creds.APIKey)
}

func TestResolveCredentialsVariablesOverEnv(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv(EnvAPIKey, "tier3-key")

	creds, err := ResolveCredentials(Credentials{}, MapVariables{VarAPIKey: "tier2-key"})
	require.NoError(t, err)
	assert.Equal(t, "tier2-key", creds.APIKey)
}

func TestResolveCredentialsEnvFallback(t *testing.T) {
	clearCredentialEnv(t)
	t.Setenv(EnvAPIKey, "tier3-key")
	t.Setenv(EnvOrgID, "org-env")

	creds, err := ResolveCredentials(Credentials{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "tier3-key", creds.APIKey)
	assert.Equal(t, "org-env", creds.OrgID)
}

func TestResolveCredentialsFieldsResolveIndependently(t *testing.T) {
	clearCredentialEnv(t)

	// Key from tier 1, base URL from tier 2, org from tier 3.
	t.Setenv(EnvOrgID, "org-env")
	creds, err := ResolveCredentials(
		Credentials{APIKey: "tier1-key"},
		MapVariables{VarBaseURL: "https://n42.meraki.com/api/v1"},
	)
	require.NoError(t, err)
	assert.Equal(t, "tier1-key", creds.APIKey)
	assert.Equal(t, "https://n42.meraki.com/api/v1", creds.BaseURL)
	assert.Equal(t, "org-env", creds.OrgID)
}

func TestResolveCredentialsDefaultBaseURL(t *testing.T) {
	clearCredentialEnv(t)

	creds, err := ResolveCredentials(Credentials{APIKey: "k"}, nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, creds.BaseURL)
}

func TestResolveCredentialsNoKeyFails(t *testing.T) {
	clearCredentialEnv(t)

	_, err := ResolveCredentials(Credentials{}, MapVariables{VarBaseURL: "https://api.meraki.com/api/v1"})
	require.Error(t, err)
	var confErr *ConfigurationError
	assert.True(t, errors.As(err, &confErr))
}

func TestResolveCredentialsTokenSourceSatisfiesKey(t *testing.T) {
	clearCredentialEnv(t)

	creds, err := ResolveCredentials(StaticTokenCredentials("access-token"), nil)
	require.NoError(t, err)
	assert.Empty(t, creds.APIKey)
	assert.NotNil(t, creds.TokenSource)
}

func TestMapVariablesAbsent(t *testing.T) {
	vars := MapVariables{VarAPIKey: "k"}
	_, ok := vars.GetVariable(VarOrgID)
	assert.False(t, ok)
}
