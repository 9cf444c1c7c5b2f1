package testing

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/donmatraca/nitrado-go/pkg/nitrado"
)

// Token is the bearer token the fake service hands out through Client.
const Token = "test-token"

// Request is one recorded API call.
type Request struct {
	Method string
	Path   string
	Body   []byte
}

// Service is an in-memory stand-in for the hosting API, backed by httptest.
// It keeps real state: settings writes land in the settings map, task
// creates append to the task list, restart and stop move the server status.
// Every call is recorded for assertions.
type Service struct {
	srv *httptest.Server

	mu       sync.Mutex
	status   string
	ftp      nitrado.FTPCredentials
	settings map[string]map[string]string
	tasks    []nitrado.Task
	nextTask int
	requests []Request
}

// NewService starts a fake hosting API for the duration of the test.
func NewService(tb testing.TB) *Service {
	tb.Helper()
	s := &Service{
		status: nitrado.StatusStarted,
		ftp: nitrado.FTPCredentials{
			Hostname: "ftp.example.test",
			Port:     21,
			Username: "ni1234567_1",
			Password: "hunter2",
		},
		settings: map[string]map[string]string{"general": {}},
		nextTask: 1,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /services/{id}/gameservers", s.handleDetails)
	mux.HandleFunc("POST /services/{id}/gameservers/restart", s.handleRestart)
	mux.HandleFunc("POST /services/{id}/gameservers/stop", s.handleStop)
	mux.HandleFunc("POST /services/{id}/gameservers/settings", s.handleSettings)
	mux.HandleFunc("GET /services/{id}/tasks", s.handleTaskList)
	mux.HandleFunc("POST /services/{id}/tasks", s.handleTaskCreate)
	mux.HandleFunc("DELETE /services/{id}/tasks/{task}", s.handleTaskDelete)

	s.srv = httptest.NewServer(s.record(mux))
	tb.Cleanup(s.srv.Close)
	return s
}

// URL returns the base URL to point a client at.
func (s *Service) URL() string { return s.srv.URL }

// Client returns an API client wired to the fake service.
func (s *Service) Client(opts ...nitrado.Option) *nitrado.Client {
	opts = append([]nitrado.Option{nitrado.WithBaseURL(s.srv.URL)}, opts...)
	return nitrado.New(Token, opts...)
}

// SetStatus overrides the reported server status.
func (s *Service) SetStatus(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// Status returns the current server status.
func (s *Service) Status() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// SetFTP overrides the FTP credentials embedded in the details payload.
// Passing the zero value makes credential lookups fail.
func (s *Service) SetFTP(creds nitrado.FTPCredentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ftp = creds
}

// SetSetting seeds a settings value.
func (s *Service) SetSetting(category, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings[category] == nil {
		s.settings[category] = map[string]string{}
	}
	s.settings[category][key] = value
}

// Setting returns a settings value, "" when absent.
func (s *Service) Setting(category, key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings[category][key]
}

// Tasks returns a snapshot of the scheduled tasks.
func (s *Service) Tasks() []nitrado.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]nitrado.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Requests returns every recorded API call, in order.
func (s *Service) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// RequestCount returns how many API calls the service has received.
func (s *Service) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Received reports whether a call with the given method and path was made.
func (s *Service) Received(method, path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.requests {
		if r.Method == method && r.Path == path {
			return true
		}
	}
	return false
}

func (s *Service) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: r.Method, Path: r.URL.Path, Body: body})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Service) handleDetails(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	// Snapshot the settings so encoding happens outside the lock.
	settings := make(map[string]map[string]string, len(s.settings))
	for category, kv := range s.settings {
		inner := make(map[string]string, len(kv))
		for k, v := range kv {
			inner[k] = v
		}
		settings[category] = inner
	}
	gs := map[string]any{
		"status":     s.status,
		"username":   s.ftp.Username,
		"game":       "dayzxb",
		"game_human": "DayZ (Xbox One)",
		"label":      "ni",
		"ip":         "203.0.113.7",
		"port":       10900,
		"query_port": 27016,
		"slots":      32,
		"location":   "US",
		"credentials": map[string]any{
			"ftp": s.ftp,
		},
		"settings": settings,
	}
	s.mu.Unlock()
	writeEnvelope(w, http.StatusOK, "", map[string]any{"gameserver": gs})
}

func (s *Service) handleRestart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.status = nitrado.StatusRestarting
	s.mu.Unlock()
	writeEnvelope(w, http.StatusOK, "Server will be restarted now.", nil)
}

func (s *Service) handleStop(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.status = nitrado.StatusStopped
	s.mu.Unlock()
	writeEnvelope(w, http.StatusOK, "Server will be stopped now.", nil)
}

func (s *Service) handleSettings(w http.ResponseWriter, r *http.Request) {
	var write struct {
		Category string `json:"category"`
		Key      string `json:"key"`
		Value    string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&write); err != nil {
		writeEnvelope(w, http.StatusBadRequest, "invalid settings payload", nil)
		return
	}
	s.mu.Lock()
	if s.settings[write.Category] == nil {
		s.settings[write.Category] = map[string]string{}
	}
	s.settings[write.Category][write.Key] = write.Value
	s.mu.Unlock()
	writeEnvelope(w, http.StatusOK, "Setting saved.", nil)
}

func (s *Service) handleTaskList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	tasks := make([]nitrado.Task, len(s.tasks))
	copy(tasks, s.tasks)
	s.mu.Unlock()
	writeEnvelope(w, http.StatusOK, "", map[string]any{"tasks": tasks})
}

func (s *Service) handleTaskCreate(w http.ResponseWriter, r *http.Request) {
	var write struct {
		ActionMethod string `json:"action_method"`
		ActionData   string `json:"action_data"`
		Minute       string `json:"minute"`
		Hour         string `json:"hour"`
		Day          string `json:"day"`
		Month        string `json:"month"`
		Weekday      string `json:"weekday"`
	}
	if err := json.NewDecoder(r.Body).Decode(&write); err != nil {
		writeEnvelope(w, http.StatusBadRequest, "invalid task payload", nil)
		return
	}
	s.mu.Lock()
	task := nitrado.Task{
		ID:           s.nextTask,
		Minute:       write.Minute,
		Hour:         write.Hour,
		Day:          write.Day,
		Month:        write.Month,
		Weekday:      write.Weekday,
		ActionMethod: write.ActionMethod,
		ActionData:   write.ActionData,
	}
	s.nextTask++
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()
	writeEnvelope(w, http.StatusOK, "Task created.", map[string]any{"task": task})
}

func (s *Service) handleTaskDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("task"))
	if err != nil {
		writeEnvelope(w, http.StatusBadRequest, "invalid task id", nil)
		return
	}
	s.mu.Lock()
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	s.mu.Unlock()
	writeEnvelope(w, http.StatusOK, "Task deleted.", nil)
}

func writeEnvelope(w http.ResponseWriter, code int, message string, data map[string]any) {
	env := map[string]any{"status": "success"}
	if code >= 400 {
		env["status"] = "error"
	}
	if message != "" {
		env["message"] = message
	}
	if data != nil {
		env["data"] = data
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(env)
}
