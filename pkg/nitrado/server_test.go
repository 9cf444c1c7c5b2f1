package nitrado

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func gameserverEnvelope(status string, extra map[string]any) map[string]any {
	gs := map[string]any{
		"status":     status,
		"username":   "ni1234567_1",
		"game":       "dayzxb",
		"game_human": "DayZ (Xbox One)",
		"ip":         "203.0.113.7",
		"port":       10900,
		"slots":      32,
	}
	for k, v := range extra {
		gs[k] = v
	}
	return map[string]any{
		"status": "success",
		"data":   map[string]any{"gameserver": gs},
	}
}

func TestGetServerDetails(t *testing.T) {
	var gotPath string
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		jsonHandler(t, 200, gameserverEnvelope(StatusStarted, nil))(w, r)
	}))

	gs, err := c.GetServerDetails(context.Background(), "1234567")
	if err != nil {
		t.Fatalf("GetServerDetails() error = %v", err)
	}
	if gotPath != "/services/1234567/gameservers" {
		t.Errorf("path = %q, want /services/1234567/gameservers", gotPath)
	}
	if gs.Status != StatusStarted {
		t.Errorf("Status = %q, want %q", gs.Status, StatusStarted)
	}
	if gs.Game != "dayzxb" {
		t.Errorf("Game = %q, want dayzxb", gs.Game)
	}
	if gs.Port != 10900 {
		t.Errorf("Port = %d, want 10900", gs.Port)
	}
}

func TestGetServerDetails_NotFound(t *testing.T) {
	c, _ := testClient(t, jsonHandler(t, 404, map[string]string{
		"status":  "error",
		"message": "Service does not exist",
	}))

	_, err := c.GetServerDetails(context.Background(), "999")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
}

func TestGetServerDetails_MissingGameserver(t *testing.T) {
	c, _ := testClient(t, jsonHandler(t, 200, map[string]any{
		"status": "success",
		"data":   map[string]any{},
	}))

	_, err := c.GetServerDetails(context.Background(), "1234567")
	if err == nil {
		t.Fatal("error = nil, want decode failure for missing gameserver")
	}
}

func TestRestart(t *testing.T) {
	var gotMethod, gotPath string
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		jsonHandler(t, 200, map[string]string{
			"status":  "success",
			"message": "Server will be restarted now.",
		})(w, r)
	}))

	resp, err := c.Restart(context.Background(), "1234567")
	if err != nil {
		t.Fatalf("Restart() error = %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %q, want POST", gotMethod)
	}
	if gotPath != "/services/1234567/gameservers/restart" {
		t.Errorf("path = %q, want restart endpoint", gotPath)
	}
	if resp.Message != "Server will be restarted now." {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestStop(t *testing.T) {
	var gotPath string
	c, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		jsonHandler(t, 200, map[string]string{
			"status":  "success",
			"message": "Server will be stopped now.",
		})(w, r)
	}))

	resp, err := c.Stop(context.Background(), "1234567")
	if err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if gotPath != "/services/1234567/gameservers/stop" {
		t.Errorf("path = %q, want stop endpoint", gotPath)
	}
	if resp.Status != "success" {
		t.Errorf("Status = %q, want success", resp.Status)
	}
}

func TestGetFTPCredentials(t *testing.T) {
	c, _ := testClient(t, jsonHandler(t, 200, gameserverEnvelope(StatusStarted, map[string]any{
		"credentials": map[string]any{
			"ftp": map[string]any{
				"hostname": "ftp.example.net",
				"port":     21,
				"username": "ni1234567_1",
				"password": "hunter2",
			},
		},
	})))

	creds, err := c.GetFTPCredentials(context.Background(), "1234567")
	if err != nil {
		t.Fatalf("GetFTPCredentials() error = %v", err)
	}
	if creds.Hostname != "ftp.example.net" {
		t.Errorf("Hostname = %q", creds.Hostname)
	}
	if creds.Password != "hunter2" {
		t.Errorf("Password = %q", creds.Password)
	}
	if got := creds.Addr(); got != "ftp.example.net:21" {
		t.Errorf("Addr() = %q, want ftp.example.net:21", got)
	}
}

func TestGetFTPCredentials_Unavailable(t *testing.T) {
	c, _ := testClient(t, jsonHandler(t, 200, gameserverEnvelope(StatusStarted, nil)))

	_, err := c.GetFTPCredentials(context.Background(), "1234567")
	if !errors.Is(err, ErrCredentialsUnavailable) {
		t.Errorf("error = %v, want ErrCredentialsUnavailable", err)
	}
}

func TestFTPCredentialsAddr_DefaultPort(t *testing.T) {
	creds := FTPCredentials{Hostname: "ftp.example.net"}
	if got := creds.Addr(); got != "ftp.example.net:21" {
		t.Errorf("Addr() = %q, want default port 21", got)
	}
	creds.Port = 2121
	if got := creds.Addr(); got != "ftp.example.net:2121" {
		t.Errorf("Addr() = %q, want explicit port", got)
	}
}
