package key

import (
	"fmt"

	"derkit/cli"
	"derkit/store"

	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Deletes a stored key.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := cli.OpenStore(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		err = store.WithTx(db, func(tx *leveldb.Transaction) error {
			return store.DeleteKeyTx(tx, args[0])
		})
		if err != nil {
			return err
		}
		fmt.Printf("Deleted %s.\n", args[0])
		return nil
	},
}

func init() {
	cmd.AddCommand(deleteCmd)
}
