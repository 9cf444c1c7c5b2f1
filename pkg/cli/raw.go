package cli

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donmatraca/nitrado-go/internal/jsonpath"
)

var (
	rawData  string
	rawQuery string
)

var rawCmd = &cobra.Command{
	Use:   "raw <METHOD> <path>",
	Short: "Issue a raw API request",
	Long: `Issue a raw request against the API with the configured token and print
the response envelope. --data attaches a JSON body; --query extracts
values from the response with a JSONPath expression.

Examples:
  nitractl raw GET /services/1234567/gameservers
  nitractl raw GET /services/1234567/gameservers --query $.data.gameserver.status
  nitractl raw POST /services/1234567/gameservers/restart`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		method := strings.ToUpper(args[0])
		switch method {
		case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
		default:
			return fmt.Errorf("unsupported method %q", args[0])
		}
		path := args[1]
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		if rawQuery != "" {
			if err := jsonpath.Validate(rawQuery); err != nil {
				return err
			}
		}

		var payload any
		if rawData != "" {
			if err := json.Unmarshal([]byte(rawData), &payload); err != nil {
				return fmt.Errorf("--data is not valid JSON: %w", err)
			}
		}

		client, err := apiClient()
		if err != nil {
			return err
		}
		raw, err := client.Raw(cmd.Context(), method, path, payload)
		if err != nil {
			return err
		}

		if rawQuery != "" {
			results, err := jsonpath.Extract(raw, rawQuery)
			if err != nil {
				return err
			}
			fmt.Println(jsonpath.Render(results))
			return nil
		}

		var pretty json.RawMessage = raw
		indented, err := json.MarshalIndent(pretty, "", "  ")
		if err != nil {
			fmt.Println(string(raw))
			return nil
		}
		fmt.Println(string(indented))
		return nil
	},
}

func init() {
	rawCmd.Flags().StringVar(&rawData, "data", "", "JSON request body")
	rawCmd.Flags().StringVar(&rawQuery, "query", "", "JSONPath expression to extract from the response")
	rootCmd.AddCommand(rawCmd)
}
