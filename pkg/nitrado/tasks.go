package nitrado

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/robfig/cron/v3"
)

// restartAction is the task action the service runs for scheduled restarts.
const restartAction = "game_server_restart"

// taskWrite is the body of a task-create POST. The service expects every
// cron field as a string, and an action_data field even when empty.
type taskWrite struct {
	ActionMethod string `json:"action_method"`
	ActionData   string `json:"action_data"`
	Minute       string `json:"minute"`
	Hour         string `json:"hour"`
	Day          string `json:"day"`
	Month        string `json:"month"`
	Weekday      string `json:"weekday"`
}

func tasksPath(serviceID string) string {
	return "/services/" + url.PathEscape(serviceID) + "/tasks"
}

// ScheduleRestart registers a recurring restart at minute 0 of the given
// hour expression ("4", "*/6", "0,12", ...). Day, month and weekday are
// fixed to "*"; the hour field is the only caller-configurable part of the
// schedule. The expression is validated locally before any request is made.
func (c *Client) ScheduleRestart(ctx context.Context, serviceID, hour string) (*Task, error) {
	if err := validateHour(hour); err != nil {
		return nil, err
	}

	write := taskWrite{
		ActionMethod: restartAction,
		Minute:       "0",
		Hour:         hour,
		Day:          "*",
		Month:        "*",
		Weekday:      "*",
	}
	env, err := c.do(ctx, http.MethodPost, tasksPath(serviceID), write)
	if err != nil {
		return nil, err
	}

	var data struct {
		Task *Task `json:"task"`
	}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &data); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
	}
	if data.Task == nil {
		// Some deployments answer a bare success envelope; synthesize the
		// task from what was sent so callers always get the schedule back.
		return &Task{
			Minute:       write.Minute,
			Hour:         write.Hour,
			Day:          write.Day,
			Month:        write.Month,
			Weekday:      write.Weekday,
			ActionMethod: write.ActionMethod,
		}, nil
	}
	return data.Task, nil
}

// ListTasks returns the scheduled tasks of a service.
func (c *Client) ListTasks(ctx context.Context, serviceID string) ([]Task, error) {
	env, err := c.do(ctx, http.MethodGet, tasksPath(serviceID), nil)
	if err != nil {
		return nil, err
	}
	var data struct {
		Tasks []Task `json:"tasks"`
	}
	if len(env.Data) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	return data.Tasks, nil
}

// DeleteTask removes a scheduled task.
func (c *Client) DeleteTask(ctx context.Context, serviceID string, taskID int) error {
	_, err := c.do(ctx, http.MethodDelete, tasksPath(serviceID)+"/"+strconv.Itoa(taskID), nil)
	return err
}

// validateHour checks that the hour expression forms a parseable cron spec
// once dropped into the fixed "0 H * * *" shape.
func validateHour(hour string) error {
	if hour == "" {
		return fmt.Errorf("%w: empty hour", ErrInvalidSchedule)
	}
	spec := fmt.Sprintf("0 %s * * *", hour)
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("%w: hour %q: %v", ErrInvalidSchedule, hour, err)
	}
	return nil
}
