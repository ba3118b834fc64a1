package meraki

import (
	"context"
	"net/http"
	"net/url"

	merakibridge "github.com/merakitools/meraki-bridge"
)

type Device struct {
	Serial    string   `json:"serial"`
	Name      string   `json:"name,omitempty"`
	Model     string   `json:"model,omitempty"`
	MAC       string   `json:"mac,omitempty"`
	NetworkID string   `json:"networkId,omitempty"`
	Address   string   `json:"address,omitempty"`
	Lat       float64  `json:"lat,omitempty"`
	Lng       float64  `json:"lng,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Notes     string   `json:"notes,omitempty"`
}

// DeviceUpdate carries the mutable device attributes. Nil pointers leave the
// attribute untouched on the dashboard.
type DeviceUpdate struct {
	Name          *string  `json:"name,omitempty"`
	Address       *string  `json:"address,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	MoveMapMarker *bool    `json:"moveMapMarker,omitempty"`
}

func ListDevices(ctx context.Context, conn *merakibridge.Conn, networkID string) ([]Device, error) {
	req, err := merakibridge.NewJSONRequest(http.MethodGet, "/networks/"+url.PathEscape(networkID)+"/devices", nil)
	if err != nil {
		return nil, err
	}
	resp, err := conn.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	var devices []Device
	if err := resp.Decode(&devices); err != nil {
		return nil, err
	}
	return devices, nil
}

func GetDevice(ctx context.Context, conn *merakibridge.Conn, serial string) (*Device, error) {
	req, err := merakibridge.NewJSONRequest(http.MethodGet, "/devices/"+url.PathEscape(serial), nil)
	if err != nil {
		return nil, err
	}
	resp, err := conn.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	var device Device
	if err := resp.Decode(&device); err != nil {
		return nil, err
	}
	return &device, nil
}

func UpdateDevice(ctx context.Context, conn *merakibridge.Conn, serial string, update DeviceUpdate) (*Device, error) {
	req, err := merakibridge.NewJSONRequest(http.MethodPut, "/devices/"+url.PathEscape(serial), update)
	if err != nil {
		return nil, err
	}
	resp, err := conn.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	var device Device
	if err := resp.Decode(&device); err != nil {
		return nil, err
	}
	return &device, nil
}
