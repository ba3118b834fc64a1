package meraki

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	merakibridge "github.com/merakitools/meraki-bridge"
)

func openTestConn(t *testing.T, handler http.Handler) *merakibridge.Conn {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	conn := merakibridge.NewConn(merakibridge.Config{
		APIKey:            "test-key",
		BaseURL:           server.URL,
		RateLimitInterval: time.Millisecond,
	})
	require.NoError(t, conn.Open(nil))
	t.Cleanup(conn.Close)
	return conn
}

const orgsFixture = `[
	{"id": "2930418", "name": "My organization", "url": "https://dashboard.meraki.com/o/VjjsAd/manage/organization/overview"},
	{"id": "52636", "name": "Second org"}
]`

func TestListOrganizations(t *testing.T) {
	conn := openTestConn(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/organizations", r.URL.Path)
		w.Write([]byte(orgsFixture))
	}))

	orgs, err := ListOrganizations(context.Background(), conn)
	require.NoError(t, err)
	require.Len(t, orgs, 2)
	assert.Equal(t, "2930418", orgs[0].ID)
	assert.Equal(t, "My organization", orgs[0].Name)
}

func TestFindOrganizationID(t *testing.T) {
	conn := openTestConn(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(orgsFixture))
	}))

	id, err := FindOrganizationID(context.Background(), conn, "My organization")
	require.NoError(t, err)
	assert.Equal(t, "2930418", id)

	_, err = FindOrganizationID(context.Background(), conn, "No such org")
	assert.Error(t, err)
}

func TestFindOrganizationIDAmbiguous(t *testing.T) {
	conn := openTestConn(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"1","name":"dup"},{"id":"2","name":"dup"}]`))
	}))

	_, err := FindOrganizationID(context.Background(), conn, "dup")
	assert.ErrorContains(t, err, "ambiguous")
}

func TestGetOrganization(t *testing.T) {
	conn := openTestConn(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/organizations/2930418", r.URL.Path)
		w.Write([]byte(`{"id":"2930418","name":"My organization"}`))
	}))

	org, err := GetOrganization(context.Background(), conn, "2930418")
	require.NoError(t, err)
	assert.Equal(t, "My organization", org.Name)
}
