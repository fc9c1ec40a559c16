package key

import (
	"encoding/hex"
	"fmt"
	"os"

	"derkit/cli"
	"derkit/store"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var exportHex bool

var exportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Writes a stored key's DER encoding to stdout.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := cli.OpenStore(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		_, blob, err := store.GetKey(db, args[0])
		if err != nil {
			return err
		}

		// Raw DER on a terminal is garbage; hex-encode it there.
		if exportHex || isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Println(hex.EncodeToString(blob))
			return nil
		}
		_, err = os.Stdout.Write(blob)
		return err
	},
}

func init() {
	exportCmd.Flags().BoolVar(&exportHex, cli.FlagHex, false, "Hex-encode the output.")
	cmd.AddCommand(exportCmd)
}
