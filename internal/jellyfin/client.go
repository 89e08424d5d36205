// Package jellyfin resolves Jellyfin items into playable streams and reports
// playback state back to the server.
package jellyfin

import (
	"context"
	"fmt"
	"strings"

	jellyfin "github.com/sj14/jellyfin-go/api"
)

const (
	clientName    = "CouchControls"
	clientVersion = "0.1.0"
	deviceName    = "CouchControls Desktop"
	deviceID      = "couchcontrols-1"
)

// Client wraps the generated Jellyfin API client with convenience methods.
type Client struct {
	api       *jellyfin.APIClient
	ctx       context.Context
	token     string
	userID    string
	serverURL string
}

func normalizeURL(serverURL string) string {
	serverURL = strings.TrimSpace(serverURL)
	if !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
		serverURL = "https://" + serverURL
	}
	return strings.TrimRight(serverURL, "/")
}

// NewClient creates a client for serverURL. Requests use ctx.
func NewClient(ctx context.Context, serverURL string) *Client {
	serverURL = normalizeURL(serverURL)
	cfg := jellyfin.NewConfiguration()
	cfg.Servers = jellyfin.ServerConfigurations{
		{URL: serverURL},
	}
	cfg.AddDefaultHeader("X-Emby-Authorization",
		fmt.Sprintf(`MediaBrowser Client="%s", Device="%s", DeviceId="%s", Version="%s"`,
			clientName, deviceName, deviceID, clientVersion))

	return &Client{
		api:       jellyfin.NewAPIClient(cfg),
		ctx:       ctx,
		serverURL: serverURL,
	}
}

func (c *Client) SetToken(token, userID string) {
	c.token = token
	c.userID = userID
	c.api.GetConfig().AddDefaultHeader("X-Emby-Token", c.token)
}

func (c *Client) ServerURL() string { return c.serverURL }
