package nitrado

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Gameserver lifecycle states as reported by the details endpoint.
const (
	StatusStarted    = "started"
	StatusStopped    = "stopped"
	StatusStopping   = "stopping"
	StatusRestarting = "restarting"
	StatusSuspended  = "suspended"
)

// envelope is the outer JSON shape every API response uses:
// a status string, an optional human message and an optional data object.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`

	raw []byte // body as received, for Raw
}

// Response is the generic outcome of a command endpoint (restart, stop,
// settings write). The interesting payloads have their own types; Response
// carries what remains of the envelope.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Gameserver is the nested "gameserver" object of the details envelope.
// Only the fields the client consumes are modeled; the service returns more.
type Gameserver struct {
	Status      string      `json:"status"`
	Username    string      `json:"username"`
	Game        string      `json:"game"`
	GameHuman   string      `json:"game_human"`
	Label       string      `json:"label"`
	IP          string      `json:"ip"`
	Port        int         `json:"port"`
	QueryPort   int         `json:"query_port"`
	Slots       int         `json:"slots"`
	Location    string      `json:"location"`
	Credentials Credentials `json:"credentials"`
	Settings    Settings    `json:"settings"`
}

// Credentials groups the transient access credentials embedded in the
// server-details payload.
type Credentials struct {
	FTP FTPCredentials `json:"ftp"`
}

// FTPCredentials identify the file-transfer endpoint of a hosted server.
// They are fetched per call and never persisted.
type FTPCredentials struct {
	Hostname string `json:"hostname"`
	Port     int    `json:"port"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Addr returns the dialable host:port address, defaulting to port 21 when
// the payload omits it.
func (c FTPCredentials) Addr() string {
	port := c.Port
	if port == 0 {
		port = 21
	}
	return c.Hostname + ":" + strconv.Itoa(port)
}

// Settings maps category -> key -> value, e.g. settings["general"]["whitelist"].
// The service stores every value as a string.
type Settings map[string]map[string]string

// Value returns settings[category][key], or "" when either level is absent.
func (s Settings) Value(category, key string) string {
	return s[category][key]
}

// ListType names one of the membership lists kept under the "general"
// settings category.
type ListType string

// Membership lists managed through the settings endpoint.
const (
	ListWhitelist ListType = "whitelist"
	ListBans      ListType = "bans"
	ListPriority  ListType = "priority"
)

// ListAction selects how ManageList combines the supplied members with the
// current list.
type ListAction string

// Supported membership list actions.
const (
	ActionAdd    ListAction = "add"
	ActionRemove ListAction = "remove"
)

// Task is one scheduled job attached to a service. ScheduleRestart creates
// tasks with action "game_server_restart" and a fixed cron shape where only
// the hour field varies.
type Task struct {
	ID           int    `json:"id"`
	ServiceID    int    `json:"service_id"`
	Minute       string `json:"minute"`
	Hour         string `json:"hour"`
	Day          string `json:"day"`
	Month        string `json:"month"`
	Weekday      string `json:"weekday"`
	NextRun      string `json:"next_run"`
	LastRun      string `json:"last_run"`
	ActionMethod string `json:"action_method"`
	ActionData   string `json:"action_data"`
}

// CronSpec renders the five-field cron expression the task runs on.
func (t Task) CronSpec() string {
	return fmt.Sprintf("%s %s %s %s %s", t.Minute, t.Hour, t.Day, t.Month, t.Weekday)
}
