package cli

import (
	"errors"

	"github.com/donmatraca/nitrado-go/pkg/nitrado"
	"github.com/donmatraca/nitrado-go/pkg/transfer"
)

// Common CLI errors
var (
	ErrNoToken   = errors.New("no API token - set --token, NITRADO_TOKEN, or token: in the config file")
	ErrNoService = errors.New("no service ID - set --service-id, NITRADO_SERVICE_ID, or service_id: in the config file")
)

// apiClient builds the API client from the resolved configuration.
func apiClient() (*nitrado.Client, error) {
	if cfg.Token == "" {
		return nil, ErrNoToken
	}
	opts := []nitrado.Option{
		nitrado.WithLogger(log),
	}
	if cfg.APIURL != "" {
		opts = append(opts, nitrado.WithBaseURL(cfg.APIURL))
	}
	return nitrado.New(cfg.Token, opts...), nil
}

// ftpBridge builds the FTP transfer bridge on top of the API client.
func ftpBridge() (*transfer.Bridge, error) {
	client, err := apiClient()
	if err != nil {
		return nil, err
	}
	return transfer.NewBridge(client, transfer.WithLogger(log)), nil
}

// serviceID returns the service ID picked by flags, env, or config file.
func serviceID() (string, error) {
	if cfg.ServiceID == "" {
		return "", ErrNoService
	}
	return cfg.ServiceID, nil
}
