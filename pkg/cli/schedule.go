package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/donmatraca/nitrado-go/pkg/cli/internal/output"
	"github.com/donmatraca/nitrado-go/pkg/nitrado"
)

var scheduleHour string

// taskOutput is the JSON shape of one scheduled task.
type taskOutput struct {
	ID       int    `json:"id"`
	Schedule string `json:"schedule"`
	Action   string `json:"action"`
	NextRun  string `json:"nextRun,omitempty"`
}

func taskToOutput(t nitrado.Task) taskOutput {
	return taskOutput{
		ID:       t.ID,
		Schedule: t.CronSpec(),
		Action:   t.ActionMethod,
		NextRun:  t.NextRun,
	}
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Manage scheduled restarts",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScheduleList(cmd)
	},
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Schedule a daily restart at the given hour",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := apiClient()
		if err != nil {
			return err
		}
		id, err := serviceID()
		if err != nil {
			return err
		}

		task, err := client.ScheduleRestart(cmd.Context(), id, scheduleHour)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(taskToOutput(*task))
		}
		fmt.Printf("restart scheduled (%s)\n", task.CronSpec())
		return nil
	},
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List scheduled tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScheduleList(cmd)
	},
}

func runScheduleList(cmd *cobra.Command) error {
	client, err := apiClient()
	if err != nil {
		return err
	}
	id, err := serviceID()
	if err != nil {
		return err
	}

	tasks, err := client.ListTasks(cmd.Context(), id)
	if err != nil {
		return err
	}
	if jsonOutput {
		out := make([]taskOutput, 0, len(tasks))
		for _, t := range tasks {
			out = append(out, taskToOutput(t))
		}
		return output.JSON(out)
	}
	if len(tasks) == 0 {
		fmt.Println("no scheduled tasks")
		return nil
	}
	w := output.Table()
	fmt.Fprintln(w, "ID\tSCHEDULE\tACTION\tNEXT RUN")
	for _, t := range tasks {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", t.ID, t.CronSpec(), t.ActionMethod, t.NextRun)
	}
	return w.Flush()
}

var scheduleRemoveCmd = &cobra.Command{
	Use:   "remove <task-id>",
	Short: "Remove a scheduled task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taskID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("task ID must be a number, got %q", args[0])
		}
		client, err := apiClient()
		if err != nil {
			return err
		}
		id, err := serviceID()
		if err != nil {
			return err
		}

		if err := client.DeleteTask(cmd.Context(), id, taskID); err != nil {
			return err
		}
		if !jsonOutput {
			fmt.Printf("task %d removed\n", taskID)
		}
		return nil
	},
}

func init() {
	scheduleAddCmd.Flags().StringVar(&scheduleHour, "hour", "", "Hour of the daily restart (0-23, cron hour expressions allowed)")
	_ = scheduleAddCmd.MarkFlagRequired("hour")

	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleListCmd)
	scheduleCmd.AddCommand(scheduleRemoveCmd)
	rootCmd.AddCommand(scheduleCmd)
}
