// Package cli provides the command-line interface for nitractl.
//
// The cli package implements all commands for driving a Nitrado-hosted
// game server:
//   - status: Show gameserver details (state, game, address, slots)
//   - restart: Restart the gameserver
//   - stop: Stop the gameserver
//   - schedule: Manage scheduled restarts (add, list, remove)
//   - list: Manage the whitelist, ban, and priority lists
//   - files: Browse and transfer files over FTP (ls, upload, download)
//   - validate: Syntax-check a config file on the server
//   - events: Append event definitions to the events file
//   - raw: Issue a raw API request and optionally extract values
//   - version: Show nitractl version
//
// Commands talk to the Nitrado REST API with a bearer token and to the
// gameserver's FTP space with credentials fetched from the same API. The
// token, API URL, and default service ID resolve from flags, NITRADO_*
// environment variables, and ~/.config/nitractl/config.yaml, in that
// order.
//
// Usage:
//
//	nitractl status --service-id 1234567
//	nitractl restart
//	nitractl schedule add --hour 4
//	nitractl list add whitelist SurvivorA SurvivorB
//	nitractl files ls -l mpmissions
//	nitractl validate mpmissions/dayzOffline.chernarusplus/db/globals.xml
//	nitractl events add --name StaticHeliCrash --attr nominal=3
//	nitractl raw GET /services/1234567/gameservers --query $.data.gameserver.status
package cli
