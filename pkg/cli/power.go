package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donmatraca/nitrado-go/pkg/cli/internal/output"
)

// powerOutput is the JSON shape of restart/stop results.
type powerOutput struct {
	ServiceID string `json:"serviceId"`
	Action    string `json:"action"`
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
}

var restartCmd = &cobra.Command{
	Use:   "restart",
	Short: "Restart the game server",
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

		resp, err := client.Restart(cmd.Context(), id)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(powerOutput{ServiceID: id, Action: "restart", Status: resp.Status, Message: resp.Message})
		}
		fmt.Println(orDefault(resp.Message, "restart requested"))
		return nil
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the game server",
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

		resp, err := client.Stop(cmd.Context(), id)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(powerOutput{ServiceID: id, Action: "stop", Status: resp.Status, Message: resp.Message})
		}
		fmt.Println(orDefault(resp.Message, "stop requested"))
		return nil
	},
}

// orDefault returns s unless it is empty.
func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func init() {
	rootCmd.AddCommand(restartCmd)
	rootCmd.AddCommand(stopCmd)
}
