package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donmatraca/nitrado-go/pkg/cli/internal/output"
	"github.com/donmatraca/nitrado-go/pkg/nitrado"
)

// listOutput is the JSON shape of list command results.
type listOutput struct {
	ServiceID string   `json:"serviceId"`
	List      string   `json:"list"`
	Action    string   `json:"action,omitempty"`
	Members   []string `json:"members,omitempty"`
	Message   string   `json:"message,omitempty"`
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage the whitelist, ban, and priority lists",
	Long: `Manage the player lists the game server keeps in its settings:
whitelist, bans, and priority. Members are gamertags; adding an existing
member or removing an absent one is harmless.`,
}

var listAddCmd = &cobra.Command{
	Use:   "add <whitelist|bans|priority> <member>...",
	Short: "Add members to a list",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListManage(cmd, nitrado.ActionAdd, args[0], args[1:])
	},
}

var listRemoveCmd = &cobra.Command{
	Use:   "remove <whitelist|bans|priority> <member>...",
	Short: "Remove members from a list",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runListManage(cmd, nitrado.ActionRemove, args[0], args[1:])
	},
}

var listShowCmd = &cobra.Command{
	Use:   "show <whitelist|bans|priority>",
	Short: "Show the current members of a list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list := nitrado.ListType(args[0])
		client, err := apiClient()
		if err != nil {
			return err
		}
		id, err := serviceID()
		if err != nil {
			return err
		}

		members, err := client.ListMembers(cmd.Context(), id, list)
		if err != nil {
			return err
		}
		if jsonOutput {
			return output.JSON(listOutput{ServiceID: id, List: args[0], Members: members})
		}
		for _, m := range members {
			fmt.Println(m)
		}
		return nil
	},
}

func runListManage(cmd *cobra.Command, action nitrado.ListAction, listName string, members []string) error {
	client, err := apiClient()
	if err != nil {
		return err
	}
	id, err := serviceID()
	if err != nil {
		return err
	}

	resp, err := client.ManageList(cmd.Context(), id, action, nitrado.ListType(listName), members)
	if err != nil {
		return err
	}
	if jsonOutput {
		return output.JSON(listOutput{
			ServiceID: id,
			List:      listName,
			Action:    string(action),
			Members:   members,
			Message:   resp.Message,
		})
	}
	verb := "added"
	if action == nitrado.ActionRemove {
		verb = "removed"
	}
	fmt.Printf("%s: %d member(s) %s\n", listName, len(members), verb)
	return nil
}

func init() {
	listCmd.AddCommand(listAddCmd)
	listCmd.AddCommand(listRemoveCmd)
	listCmd.AddCommand(listShowCmd)
	rootCmd.AddCommand(listCmd)
}
