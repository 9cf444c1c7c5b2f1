package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/donmatraca/nitrado-go/pkg/cli/internal/output"
)

// statusOutput is the JSON shape of the status command.
type statusOutput struct {
	ServiceID string `json:"serviceId"`
	Status    string `json:"status"`
	Game      string `json:"game"`
	Label     string `json:"label,omitempty"`
	Address   string `json:"address,omitempty"`
	QueryPort int    `json:"queryPort,omitempty"`
	Slots     int    `json:"slots,omitempty"`
	Location  string `json:"location,omitempty"`
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the game server's current state",
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

		gs, err := client.GetServerDetails(cmd.Context(), id)
		if err != nil {
			return err
		}

		out := statusOutput{
			ServiceID: id,
			Status:    gs.Status,
			Game:      gs.GameHuman,
			Label:     gs.Label,
			QueryPort: gs.QueryPort,
			Slots:     gs.Slots,
			Location:  gs.Location,
		}
		if gs.IP != "" {
			out.Address = fmt.Sprintf("%s:%d", gs.IP, gs.Port)
		}

		if jsonOutput {
			return output.JSON(out)
		}
		output.Details(
			"Service", out.ServiceID,
			"Status", out.Status,
			"Game", out.Game,
			"Address", out.Address,
			"Slots", strconv.Itoa(out.Slots),
			"Location", out.Location,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
