package meraki

import (
	"context"
	"net/http"
	"net/url"

	merakibridge "github.com/merakitools/meraki-bridge"
)

// AlertDestinations names where a network's alerts are delivered.
type AlertDestinations struct {
	Emails        []string `json:"emails"`
	SNMP          bool     `json:"snmp"`
	AllAdmins     bool     `json:"allAdmins"`
	HTTPServerIDs []string `json:"httpServerIds,omitempty"`
}

type Alert struct {
	Type              string                 `json:"type"`
	Enabled           bool                   `json:"enabled"`
	AlertDestinations *AlertDestinations     `json:"alertDestinations,omitempty"`
	Filters           map[string]interface{} `json:"filters,omitempty"`
}

type AlertSettings struct {
	DefaultDestinations AlertDestinations `json:"defaultDestinations"`
	Alerts              []Alert           `json:"alerts"`
}

func GetAlertSettings(ctx context.Context, conn *merakibridge.Conn, networkID string) (*AlertSettings, error) {
	req, err := merakibridge.NewJSONRequest(http.MethodGet, "/networks/"+url.PathEscape(networkID)+"/alerts/settings", nil)
	if err != nil {
		return nil, err
	}
	resp, err := conn.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	var settings AlertSettings
	if err := resp.Decode(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func UpdateAlertSettings(ctx context.Context, conn *merakibridge.Conn, networkID string, settings AlertSettings) (*AlertSettings, error) {
	req, err := merakibridge.NewJSONRequest(http.MethodPut, "/networks/"+url.PathEscape(networkID)+"/alerts/settings", settings)
	if err != nil {
		return nil, err
	}
	resp, err := conn.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	var updated AlertSettings
	if err := resp.Decode(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
