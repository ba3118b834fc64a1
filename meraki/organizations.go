// meraki/organizations.go
// -----------------------
// Typed wrappers for the dashboard's organization endpoints. All wrappers
// are thin: build a request, execute it through the connection, decode the
// payload. Retry and pacing live in the connection core.
package meraki

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	merakibridge "github.com/merakitools/meraki-bridge"
)

type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

func ListOrganizations(ctx context.Context, conn *merakibridge.Conn) ([]Organization, error) {
	req, err := merakibridge.NewJSONRequest(http.MethodGet, "/organizations", nil)
	if err != nil {
		return nil, err
	}
	resp, err := conn.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	var orgs []Organization
	if err := resp.Decode(&orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

func GetOrganization(ctx context.Context, conn *merakibridge.Conn, orgID string) (*Organization, error) {
	req, err := merakibridge.NewJSONRequest(http.MethodGet, "/organizations/"+url.PathEscape(orgID), nil)
	if err != nil {
		return nil, err
	}
	resp, err := conn.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	var org Organization
	if err := resp.Decode(&org); err != nil {
		return nil, err
	}
	return &org, nil
}

// FindOrganizationID resolves an organization name to its id. The name must
// match exactly one organization visible to the credentials.
func FindOrganizationID(ctx context.Context, conn *merakibridge.Conn, name string) (string, error) {
	orgs, err := ListOrganizations(ctx, conn)
	if err != nil {
		return "", err
	}
	var matches []string
	for _, org := range orgs {
		if org.Name == name {
			matches = append(matches, org.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no organization named %q", name)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("organization name %q is ambiguous (%d matches)", name, len(matches))
	}
}
