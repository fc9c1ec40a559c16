package crypto

import (
	"encoding/hex"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/require"
)

func fixedKey(t *testing.T) *btcec.PrivateKey {
	data, err := hex.DecodeString("86d4da79175bf6984ef62676a20069d35527c45ccc398d46b7fdb9b0783cccf7")
	require.NoError(t, err)
	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), data)
	return priv
}

func TestSignature_SignVerify(t *testing.T) {
	priv := fixedKey(t)
	digest := Blake2B256([]byte("the quick brown fox jumps over the lazy dog"))
	altDigest := Blake2B256([]byte("the quick brown fox jumps over the lazy cat"))

	sig, err := SignDigest(priv, digest)
	require.NoError(t, err)
	require.True(t, sig.Verify(digest, priv.PubKey()))
	require.False(t, sig.Verify(altDigest, priv.PubKey()))
}

func TestSignature_EncodeMatchesBtcec(t *testing.T) {
	priv := fixedKey(t)
	digest := Blake2B256([]byte("interop"))

	bsig, err := priv.Sign(digest.Bytes())
	require.NoError(t, err)

	sig := &Signature{R: bsig.R, S: bsig.S}
	enc, err := sig.Encode()
	require.NoError(t, err)
	require.Equal(t, bsig.Serialize(), enc)

	// btcec's own parser accepts our encoding.
	parsed, err := btcec.ParseDERSignature(enc, btcec.S256())
	require.NoError(t, err)
	require.Zero(t, bsig.R.Cmp(parsed.R))
	require.Zero(t, bsig.S.Cmp(parsed.S))
}

func TestSignature_DecodeRoundTrip(t *testing.T) {
	priv := fixedKey(t)
	digest := Blake2B256([]byte("round trip"))

	sig, err := SignDigest(priv, digest)
	require.NoError(t, err)
	enc, err := sig.Encode()
	require.NoError(t, err)

	var out Signature
	end, err := out.Decode(enc, true)
	require.NoError(t, err)
	require.Equal(t, len(enc), end)
	require.Zero(t, sig.R.Cmp(out.R))
	require.Zero(t, sig.S.Cmp(out.S))
	require.True(t, out.Verify(digest, priv.PubKey()))
}

func TestSignature_DecodeRejectsNonSignature(t *testing.T) {
	var out Signature
	_, err := out.Decode([]byte{0x30, 0x03, 0x02, 0x01, 0x01}, true)
	require.Error(t, err)

	_, err = out.Decode([]byte{0x02, 0x01, 0x01}, true)
	require.Error(t, err)
}
