package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/donmatraca/nitrado-go/pkg/cli/internal/output"
)

var filesLong bool

// entryOutput is the JSON shape of one remote directory entry.
type entryOutput struct {
	Name     string `json:"name"`
	Size     uint64 `json:"size"`
	Kind     string `json:"kind"`
	Modified string `json:"modified,omitempty"`
}

var filesCmd = &cobra.Command{
	Use:   "files",
	Short: "Browse and transfer files on the game server's FTP space",
}

var filesLsCmd = &cobra.Command{
	Use:   "ls [dir]",
	Short: "List a remote directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) == 1 {
			dir = args[0]
		}
		bridge, err := ftpBridge()
		if err != nil {
			return err
		}
		id, err := serviceID()
		if err != nil {
			return err
		}

		if filesLong || jsonOutput {
			entries, err := bridge.ListEntries(cmd.Context(), id, dir)
			if err != nil {
				return err
			}
			if jsonOutput {
				out := make([]entryOutput, 0, len(entries))
				for _, e := range entries {
					out = append(out, entryOutput{
						Name:     e.Name,
						Size:     e.Size,
						Kind:     e.Kind.String(),
						Modified: e.Modified.Format("2006-01-02 15:04"),
					})
				}
				return output.JSON(out)
			}
			w := output.Table()
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", e.Kind, e.Size, e.Modified.Format("2006-01-02 15:04"), e.Name)
			}
			return w.Flush()
		}

		names, err := bridge.ListFiles(cmd.Context(), id, dir)
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var filesUploadCmd = &cobra.Command{
	Use:   "upload <local> <remote>",
	Short: "Upload a local file to the server",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bridge, err := ftpBridge()
		if err != nil {
			return err
		}
		id, err := serviceID()
		if err != nil {
			return err
		}

		if err := bridge.Upload(cmd.Context(), id, args[0], args[1]); err != nil {
			return err
		}
		if !jsonOutput {
			fmt.Printf("uploaded %s -> %s\n", args[0], args[1])
		}
		return nil
	},
}

var filesDownloadCmd = &cobra.Command{
	Use:   "download <remote> [local]",
	Short: "Download a remote file",
	Long: `Download a remote file. Without a local path the file lands in the
current directory under its remote base name.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		remote := args[0]
		local := filepath.Base(remote)
		if len(args) == 2 {
			local = args[1]
		}
		bridge, err := ftpBridge()
		if err != nil {
			return err
		}
		id, err := serviceID()
		if err != nil {
			return err
		}

		if err := bridge.Download(cmd.Context(), id, remote, local); err != nil {
			return err
		}
		if !jsonOutput {
			fmt.Printf("downloaded %s -> %s\n", remote, local)
		}
		return nil
	},
}

func init() {
	filesLsCmd.Flags().BoolVarP(&filesLong, "long", "l", false, "Show sizes, kinds, and modification times")

	filesCmd.AddCommand(filesLsCmd)
	filesCmd.AddCommand(filesUploadCmd)
	filesCmd.AddCommand(filesDownloadCmd)
	rootCmd.AddCommand(filesCmd)
}
