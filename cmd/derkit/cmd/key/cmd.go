package key

import (
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:   "key",
	Short: "Manages stored key material.",
}

func AddCmd(root *cobra.Command) {
	root.AddCommand(cmd)
}
