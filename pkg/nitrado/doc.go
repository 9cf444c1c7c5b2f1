// Package nitrado provides a client for the Nitrado game-server hosting
// REST API.
//
// The client covers the day-to-day operations of a hosted game server:
// fetching server details, restarting and stopping, managing the whitelist,
// ban and priority membership lists, and scheduling recurring restarts.
// FTP credentials for the companion file-transfer channel are derived from
// the server-details response and consumed by the transfer package.
//
// Endpoints:
//
//	GET    /services/{id}/gameservers          - Server details (incl. settings)
//	POST   /services/{id}/gameservers/restart  - Restart the game server
//	POST   /services/{id}/gameservers/stop     - Stop the game server
//	POST   /services/{id}/gameservers/settings - Write a single setting
//	GET    /services/{id}/tasks                - List scheduled tasks
//	POST   /services/{id}/tasks                - Create a scheduled task
//	DELETE /services/{id}/tasks/{taskID}       - Delete a scheduled task
//
// Usage:
//
//	client := nitrado.New(os.Getenv("NITRADO_TOKEN"))
//
//	gs, err := client.GetServerDetails(ctx, "7654321")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(gs.Status)
//
//	_, err = client.AddListMembers(ctx, "7654321", nitrado.ListWhitelist, "survivor42")
//
// Every request carries the bearer token of the Nitrado account. HTTP 429
// responses are retried after the Retry-After interval; all other failures
// are returned as typed errors that callers can discriminate with errors.Is
// and errors.As.
package nitrado
