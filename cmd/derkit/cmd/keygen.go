package cmd

import (
	"crypto/rand"
	"crypto/rsa"
	"fmt"
	"time"

	"derkit/cli"
	"derkit/config"
	"derkit/crypto"
	"derkit/pkcs1"
	"derkit/store"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

const BitsFlag = "bits"

var keygenBits int

var keygenCmd = &cobra.Command{
	Use:   "keygen <name>",
	Short: "Generates an RSA key and stores its PKCS#1 DER encoding.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		bits := keygenBits
		if bits == 0 {
			cfg, err := config.ReadConfigFile(configuredHomeDir)
			if err != nil {
				return err
			}
			bits = cfg.Keygen.Bits
		}

		db, err := cli.OpenStore(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		has, err := store.HasKey(db, name)
		if err != nil {
			return err
		}
		if has {
			return errors.Errorf("a key named %s already exists", name)
		}

		key, err := rsa.GenerateKey(rand.Reader, bits)
		if err != nil {
			return errors.Wrap(err, "error generating key")
		}
		blob, err := pkcs1.MarshalPrivateKey(key)
		if err != nil {
			return err
		}
		info := &store.KeyInfo{
			Name:        name,
			Type:        store.KeyTypeRSAPrivate,
			Fingerprint: crypto.Blake2B256(blob),
			CreatedAt:   time.Now().UTC(),
		}
		err = store.WithTx(db, func(tx *leveldb.Transaction) error {
			return store.SaveKeyTx(tx, info, blob)
		})
		if err != nil {
			return err
		}

		fmt.Printf("Generated %d-bit key %s.\nFingerprint: %s\n", bits, name, info.Fingerprint)
		return nil
	},
}

func init() {
	keygenCmd.Flags().IntVar(&keygenBits, BitsFlag, 0, "Modulus size in bits. Defaults to the configured value.")
	rootCmd.AddCommand(keygenCmd)
}
