package key

import (
	"fmt"
	"io/ioutil"
	"time"

	"derkit/cli"
	"derkit/crypto"
	"derkit/der"
	"derkit/pkcs1"
	"derkit/store"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
)

var importCmd = &cobra.Command{
	Use:   "import <name> <file>",
	Short: "Validates a DER file and stores it.",
	Long: `Validates a DER file and stores it under the given name.

PKCS#1 private and public keys are recognized and stored typed; any other
well-formed DER element is stored opaquely.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		blob, err := ioutil.ReadFile(args[1])
		if err != nil {
			return err
		}
		keyType, err := classifyBlob(blob)
		if err != nil {
			return err
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

		info := &store.KeyInfo{
			Name:        name,
			Type:        keyType,
			Fingerprint: crypto.Blake2B256(blob),
			CreatedAt:   time.Now().UTC(),
		}
		err = store.WithTx(db, func(tx *leveldb.Transaction) error {
			return store.SaveKeyTx(tx, info, blob)
		})
		if err != nil {
			return err
		}

		fmt.Printf("Imported %s as %s.\nFingerprint: %s\n", keyType, name, info.Fingerprint)
		return nil
	},
}

func classifyBlob(blob []byte) (string, error) {
	if _, err := pkcs1.ParsePrivateKey(blob); err == nil {
		return store.KeyTypeRSAPrivate, nil
	}
	if _, err := pkcs1.ParsePublicKey(blob); err == nil {
		return store.KeyTypeRSAPublic, nil
	}
	var obj der.Object
	if _, err := obj.Decode(blob, true); err != nil {
		return "", errors.Wrap(err, "file is not a single DER element")
	}
	return store.KeyTypeOpaque, nil
}

func init() {
	cmd.AddCommand(importCmd)
}
