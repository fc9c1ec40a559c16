package config

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdentityRoundTrip(t *testing.T) {
	tmp, err := ioutil.TempDir("", "identity_")
	require.NoError(t, err)
	defer os.RemoveAll(tmp)

	id := NewIdentity()
	require.NoError(t, WriteIdentity(tmp, id))

	read, err := ReadIdentity(tmp)
	require.NoError(t, err)
	require.Equal(t, id.PrivateKey.Serialize(), read.PrivateKey.Serialize())
}

func TestIdentityRejectsBadLength(t *testing.T) {
	id := &Identity{}
	require.Error(t, id.UnmarshalBinary([]byte{0x01, 0x02}))
}
