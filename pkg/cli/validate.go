package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/donmatraca/nitrado-go/pkg/cli/internal/output"
	"github.com/donmatraca/nitrado-go/pkg/gameconfig"
)

var validateSchemaFile string

// validateOutput is the JSON shape of a validation result.
type validateOutput struct {
	Path    string `json:"path"`
	Format  string `json:"format"`
	Valid   bool   `json:"valid"`
	Detail  string `json:"detail,omitempty"`
	Message string `json:"message"`
}

var errValidationFailed = errors.New("validation failed")

var validateCmd = &cobra.Command{
	Use:   "validate <remote-path>",
	Short: "Syntax-check a config file on the server",
	Long: `Download a config file from the server and check its syntax. XML files
are parsed structurally; JSON files are parsed with the standard decoder.
With --schema, the file is additionally checked against a local JSON
Schema (draft 2020-12).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		remote := args[0]
		bridge, err := ftpBridge()
		if err != nil {
			return err
		}
		id, err := serviceID()
		if err != nil {
			return err
		}

		var result gameconfig.Result
		var message string
		if validateSchemaFile == "" {
			checker := gameconfig.NewChecker(bridge, gameconfig.WithCheckerLogger(log))
			result, err = checker.CheckRemote(cmd.Context(), id, remote)
			if err != nil {
				return err
			}
			message = result.Message()
		} else {
			// The schema check needs the file on disk past the syntax
			// check, so stage it here instead of through the Checker.
			scratchDir, err := os.MkdirTemp("", "nitractl-validate-")
			if err != nil {
				return err
			}
			defer os.RemoveAll(scratchDir)
			scratch := filepath.Join(scratchDir, filepath.Base(remote))

			if err := bridge.Download(cmd.Context(), id, remote, scratch); err != nil {
				return err
			}
			result, err = gameconfig.ValidateFile(scratch)
			if err != nil {
				return err
			}
			message = result.Message()
			if result.Valid {
				if err := gameconfig.ValidateSchema(scratch, validateSchemaFile); err != nil {
					result.Valid = false
					result.Detail = err.Error()
					message = fmt.Sprintf("Schema violation: %v", err)
				}
			}
		}

		if jsonOutput {
			if err := output.JSON(validateOutput{
				Path:    remote,
				Format:  string(result.Format),
				Valid:   result.Valid,
				Detail:  result.Detail,
				Message: message,
			}); err != nil {
				return err
			}
		} else {
			fmt.Println(message)
		}
		if !result.Valid {
			return errValidationFailed
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSchemaFile, "schema", "", "Local JSON Schema to validate the file against")
	rootCmd.AddCommand(validateCmd)
}
