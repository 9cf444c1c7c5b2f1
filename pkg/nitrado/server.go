package nitrado

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// gameserverData is the "data" object of details and settings responses.
type gameserverData struct {
	Gameserver *Gameserver `json:"gameserver"`
}

func servicePath(serviceID string) string {
	return "/services/" + url.PathEscape(serviceID) + "/gameservers"
}

// GetServerDetails fetches the gameserver object for a service.
func (c *Client) GetServerDetails(ctx context.Context, serviceID string) (*Gameserver, error) {
	env, err := c.do(ctx, http.MethodGet, servicePath(serviceID), nil)
	if err != nil {
		return nil, err
	}
	return gameserverFromEnvelope(env)
}

// Restart asks the service to restart its game server. The server keeps
// running during the restart window; poll GetServerDetails for the state.
func (c *Client) Restart(ctx context.Context, serviceID string) (*Response, error) {
	env, err := c.do(ctx, http.MethodPost, servicePath(serviceID)+"/restart", nil)
	if err != nil {
		return nil, err
	}
	return &Response{Status: env.Status, Message: env.Message}, nil
}

// Stop shuts the game server down until it is started again through the
// hoster's interfaces.
func (c *Client) Stop(ctx context.Context, serviceID string) (*Response, error) {
	env, err := c.do(ctx, http.MethodPost, servicePath(serviceID)+"/stop", nil)
	if err != nil {
		return nil, err
	}
	return &Response{Status: env.Status, Message: env.Message}, nil
}

// GetFTPCredentials derives the file-transfer credentials from the
// server-details payload. They are transient: fetched per call, never
// cached or persisted.
func (c *Client) GetFTPCredentials(ctx context.Context, serviceID string) (*FTPCredentials, error) {
	gs, err := c.GetServerDetails(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	creds := gs.Credentials.FTP
	if creds.Hostname == "" || creds.Username == "" {
		c.log.Error("server details carry no ftp credentials", "service_id", serviceID)
		return nil, ErrCredentialsUnavailable
	}
	return &creds, nil
}

func gameserverFromEnvelope(env *envelope) (*Gameserver, error) {
	if len(env.Data) == 0 {
		return nil, fmt.Errorf("response envelope has no data object")
	}
	var data gameserverData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("decode gameserver: %w", err)
	}
	if data.Gameserver == nil {
		return nil, fmt.Errorf("response envelope has no gameserver object")
	}
	return data.Gameserver, nil
}
