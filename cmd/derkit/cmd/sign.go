package cmd

import (
	"fmt"
	"io/ioutil"

	"derkit/cli"
	"derkit/crypto"

	"github.com/spf13/cobra"
)

var signOut string

var signCmd = &cobra.Command{
	Use:   "sign <file>",
	Short: "Signs a file's Blake2b digest with the home identity.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := ioutil.ReadFile(args[0])
		if err != nil {
			return err
		}
		priv, err := cli.GetIdentity(configuredHomeDir)
		if err != nil {
			return err
		}

		digest := crypto.Blake2B256(data)
		sig, err := crypto.SignDigest(priv, digest)
		if err != nil {
			return err
		}
		enc, err := sig.Encode()
		if err != nil {
			return err
		}

		out := signOut
		if out == "" {
			out = args[0] + ".sig"
		}
		if err := ioutil.WriteFile(out, enc, 0644); err != nil {
			return err
		}
		fmt.Printf("Wrote signature to %s.\n", out)
		return nil
	},
}

func init() {
	signCmd.Flags().StringVar(&signOut, "out", "", "Signature output path. Defaults to <file>.sig.")
	rootCmd.AddCommand(signCmd)
}
