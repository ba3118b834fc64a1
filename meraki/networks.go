package meraki

import (
	"context"
	"net/http"
	"net/url"

	merakibridge "github.com/merakitools/meraki-bridge"
)

type Network struct {
	ID             string   `json:"id"`
	OrganizationID string   `json:"organizationId"`
	Name           string   `json:"name"`
	TimeZone       string   `json:"timeZone,omitempty"`
	ProductTypes   []string `json:"productTypes,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// NetworkCreate is the payload for creating a network in an organization.
type NetworkCreate struct {
	Name         string   `json:"name"`
	ProductTypes []string `json:"productTypes"`
	TimeZone     string   `json:"timeZone,omitempty"`
	Tags         []string `json:"tags,omitempty"`
}

func ListNetworks(ctx context.Context, conn *merakibridge.Conn, orgID string) ([]Network, error) {
	req, err := merakibridge.NewJSONRequest(http.MethodGet, "/organizations/"+url.PathEscape(orgID)+"/networks", nil)
	if err != nil {
		return nil, err
	}
	resp, err := conn.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	var networks []Network
	if err := resp.Decode(&networks); err != nil {
		return nil, err
	}
	return networks, nil
}

func GetNetwork(ctx context.Context, conn *merakibridge.Conn, networkID string) (*Network, error) {
	req, err := merakibridge.NewJSONRequest(http.MethodGet, "/networks/"+url.PathEscape(networkID), nil)
	if err != nil {
		return nil, err
	}
	resp, err := conn.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	var network Network
	if err := resp.Decode(&network); err != nil {
		return nil, err
	}
	return &network, nil
}

func CreateNetwork(ctx context.Context, conn *merakibridge.Conn, orgID string, params NetworkCreate) (*Network, error) {
	req, err := merakibridge.NewJSONRequest(http.MethodPost, "/organizations/"+url.PathEscape(orgID)+"/networks", params)
	if err != nil {
		return nil, err
	}
	resp, err := conn.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	var network Network
	if err := resp.Decode(&network); err != nil {
		return nil, err
	}
	return &network, nil
}

func DeleteNetwork(ctx context.Context, conn *merakibridge.Conn, networkID string) error {
	req, err := merakibridge.NewJSONRequest(http.MethodDelete, "/networks/"+url.PathEscape(networkID), nil)
	if err != nil {
		return err
	}
	_, err = conn.Execute(ctx, req)
	return err
}
