package cli

import (
	"derkit/config"

	"github.com/btcsuite/btcd/btcec"
)

// GetIdentity loads the signing identity stored in the home directory.
func GetIdentity(homeDir string) (*btcec.PrivateKey, error) {
	identity, err := config.ReadIdentity(homeDir)
	if err != nil {
		return nil, err
	}
	return identity.PrivateKey, nil
}
