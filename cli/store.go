package cli

import (
	"derkit/config"
	"derkit/store"

	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

// OpenStore opens the keystore database beneath the command's home
// directory. The caller owns the returned handle.
func OpenStore(cmd *cobra.Command) (*leveldb.DB, error) {
	homeDir := GetHomeDir(cmd)
	return store.Open(config.ExpandDBPath(homeDir))
}
