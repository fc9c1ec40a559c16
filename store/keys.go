package store

import (
	"encoding/json"
	"time"

	"derkit/crypto"

	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

const (
	keyInfoPrefix = "keys/info/"
	keyBlobPrefix = "keys/blob/"
)

var ErrKeyNotFound = errors.New("key not found")

// Key types understood by the CLI.
const (
	KeyTypeRSAPrivate = "rsa-private"
	KeyTypeRSAPublic  = "rsa-public"
	KeyTypeOpaque     = "opaque"
)

// KeyInfo is the metadata record stored alongside each DER blob.
type KeyInfo struct {
	Name        string
	Type        string
	Fingerprint crypto.Hash
	CreatedAt   time.Time
}

func (k *KeyInfo) MarshalJSON() ([]byte, error) {
	out := struct {
		Name        string    `json:"name"`
		Type        string    `json:"type"`
		Fingerprint string    `json:"fingerprint"`
		CreatedAt   time.Time `json:"created_at"`
	}{
		k.Name,
		k.Type,
		k.Fingerprint.String(),
		k.CreatedAt,
	}
	return json.Marshal(out)
}

func (k *KeyInfo) UnmarshalJSON(data []byte) error {
	in := &struct {
		Name        string    `json:"name"`
		Type        string    `json:"type"`
		Fingerprint string    `json:"fingerprint"`
		CreatedAt   time.Time `json:"created_at"`
	}{}
	if err := json.Unmarshal(data, in); err != nil {
		return err
	}
	fp, err := crypto.NewHashFromHex(in.Fingerprint)
	if err != nil {
		return err
	}
	k.Name = in.Name
	k.Type = in.Type
	k.Fingerprint = fp
	k.CreatedAt = in.CreatedAt
	return nil
}

func infoKey(name string) []byte {
	return []byte(keyInfoPrefix + name)
}

func blobKey(name string) []byte {
	return []byte(keyBlobPrefix + name)
}

// SaveKeyTx writes a key's metadata and DER blob under info.Name.
func SaveKeyTx(tx *leveldb.Transaction, info *KeyInfo, blob []byte) error {
	infoB, err := json.Marshal(info)
	if err != nil {
		return errors.Wrap(err, "error marshalling key info")
	}
	if err := tx.Put(infoKey(info.Name), infoB, nil); err != nil {
		return errors.Wrap(err, "error storing key info")
	}
	if err := tx.Put(blobKey(info.Name), blob, nil); err != nil {
		return errors.Wrap(err, "error storing key blob")
	}
	logger.Debug("stored key", "name", info.Name, "type", info.Type)
	return nil
}

// GetKey returns the metadata and DER blob stored under name.
func GetKey(db *leveldb.DB, name string) (*KeyInfo, []byte, error) {
	infoB, err := db.Get(infoKey(name), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil, errors.Wrap(ErrKeyNotFound, name)
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "error getting key info")
	}
	blob, err := db.Get(blobKey(name), nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "error getting key blob")
	}
	info := new(KeyInfo)
	if err := json.Unmarshal(infoB, info); err != nil {
		return nil, nil, errors.Wrap(err, "error unmarshalling key info")
	}
	return info, blob, nil
}

// HasKey reports whether a key is stored under name.
func HasKey(db *leveldb.DB, name string) (bool, error) {
	has, err := db.Has(infoKey(name), nil)
	if err != nil {
		return false, errors.Wrap(err, "error checking for key")
	}
	return has, nil
}

// ListKeys returns the metadata of every stored key, ordered by name.
func ListKeys(db *leveldb.DB) ([]*KeyInfo, error) {
	iter := db.NewIterator(util.BytesPrefix([]byte(keyInfoPrefix)), nil)
	defer iter.Release()
	var out []*KeyInfo
	for iter.Next() {
		info := new(KeyInfo)
		if err := json.Unmarshal(iter.Value(), info); err != nil {
			return nil, errors.Wrap(err, "error unmarshalling key info")
		}
		out = append(out, info)
	}
	if err := iter.Error(); err != nil {
		return nil, errors.Wrap(err, "error iterating keys")
	}
	return out, nil
}

// DeleteKeyTx removes the metadata and blob stored under name.
func DeleteKeyTx(tx *leveldb.Transaction, name string) error {
	has, err := tx.Has(infoKey(name), nil)
	if err != nil {
		return errors.Wrap(err, "error checking for key")
	}
	if !has {
		return errors.Wrap(ErrKeyNotFound, name)
	}
	if err := tx.Delete(infoKey(name), nil); err != nil {
		return errors.Wrap(err, "error deleting key info")
	}
	if err := tx.Delete(blobKey(name), nil); err != nil {
		return errors.Wrap(err, "error deleting key blob")
	}
	logger.Debug("deleted key", "name", name)
	return nil
}
