package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donmatraca/nitrado-go/pkg/cli/internal/output"
	"github.com/donmatraca/nitrado-go/pkg/gameconfig"
)

var (
	eventName  string
	eventAttrs []string
	eventsPath string
)

// eventOutput is the JSON shape of the events add result.
type eventOutput struct {
	ServiceID string            `json:"serviceId"`
	Name      string            `json:"name"`
	Attrs     map[string]string `json:"attrs,omitempty"`
	Path      string            `json:"path"`
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Edit the event definitions on the server",
}

var eventsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append an event to the events file",
	Long: `Append an <event> element to the events file on the server. The file is
downloaded, edited structurally, and uploaded back; a file that does not
parse as an events document is left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		attrs, err := parseAttrs(eventAttrs)
		if err != nil {
			return err
		}
		bridge, err := ftpBridge()
		if err != nil {
			return err
		}
		id, err := serviceID()
		if err != nil {
			return err
		}

		opts := []gameconfig.InjectorOption{gameconfig.WithInjectorLogger(log)}
		if eventsPath != "" {
			opts = append(opts, gameconfig.WithRemoteEventsPath(eventsPath))
		}
		inj := gameconfig.NewInjector(bridge, opts...)

		ev := gameconfig.Event{Name: eventName, Attrs: attrs}
		if err := inj.InjectEvent(cmd.Context(), id, ev); err != nil {
			return err
		}

		path := eventsPath
		if path == "" {
			path = gameconfig.DefaultEventsPath
		}
		if jsonOutput {
			return output.JSON(eventOutput{ServiceID: id, Name: eventName, Attrs: attrs, Path: path})
		}
		fmt.Printf("event %q added to %s\n", eventName, path)
		return nil
	},
}

// parseAttrs turns repeated key=value flags into a map.
func parseAttrs(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	attrs := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("attribute %q is not key=value", pair)
		}
		attrs[key] = value
	}
	return attrs, nil
}

func init() {
	eventsAddCmd.Flags().StringVar(&eventName, "name", "", "Event name (required)")
	eventsAddCmd.Flags().StringArrayVar(&eventAttrs, "attr", nil, "Event attribute as key=value (repeatable)")
	eventsAddCmd.Flags().StringVar(&eventsPath, "events-path", "", "Remote events file (default: "+gameconfig.DefaultEventsPath+")")
	_ = eventsAddCmd.MarkFlagRequired("name")

	eventsCmd.AddCommand(eventsAddCmd)
	rootCmd.AddCommand(eventsCmd)
}
