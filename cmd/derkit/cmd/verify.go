package cmd

import (
	"fmt"
	"io/ioutil"

	"derkit/cli"
	"derkit/crypto"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <file> <signature>",
	Short: "Verifies a DER-encoded signature against the home identity.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := ioutil.ReadFile(args[0])
		if err != nil {
			return err
		}
		sigData, err := ioutil.ReadFile(args[1])
		if err != nil {
			return err
		}
		priv, err := cli.GetIdentity(configuredHomeDir)
		if err != nil {
			return err
		}

		var sig crypto.Signature
		if _, err := sig.Decode(sigData, true); err != nil {
			return err
		}
		if !sig.Verify(crypto.Blake2B256(data), priv.PubKey()) {
			return errors.New("signature verification failed")
		}
		fmt.Println("Signature OK.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
