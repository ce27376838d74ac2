// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto_test

import (
	"testing"

	"github.com/guessbet/guessbet/common/crypto"
	_ "github.com/guessbet/guessbet/common/crypto/init"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	names := []string{"secp256k1", "ed25519", "sm2", "ethsecp256k1", "btcscript"}
	for _, name := range names {
		c, err := crypto.New(name)
		require.Nil(t, err, name)
		require.NotNil(t, c, name)
	}
	_, err := crypto.New("xxx")
	require.NotNil(t, err)
}

func TestGetNameType(t *testing.T) {
	assert.Equal(t, 1, crypto.GetType("secp256k1"))
	assert.Equal(t, 2, crypto.GetType("ed25519"))
	assert.Equal(t, 3, crypto.GetType("sm2"))
	assert.Equal(t, 4, crypto.GetType("ethsecp256k1"))
	assert.Equal(t, 5, crypto.GetType("btcscript"))
	assert.Equal(t, 0, crypto.GetType("xxx"))

	assert.Equal(t, "secp256k1", crypto.GetName(1))
	assert.Equal(t, "ed25519", crypto.GetName(2))
	assert.Equal(t, "sm2", crypto.GetName(3))
	assert.Equal(t, "ethsecp256k1", crypto.GetName(4))
	assert.Equal(t, "btcscript", crypto.GetName(5))
	assert.Equal(t, "unknown", crypto.GetName(100))
}

func TestAllSignVerify(t *testing.T) {
	names := []string{"secp256k1", "ed25519", "sm2", "ethsecp256k1", "btcscript"}
	msg := []byte("money comes from signature")
	for _, name := range names {
		c, err := crypto.New(name)
		require.Nil(t, err, name)

		priv, err := c.GenKey()
		require.Nil(t, err, name)
		pub := priv.PubKey()
		require.NotNil(t, pub, name)

		sig := priv.Sign(msg)
		require.NotNil(t, sig, name)
		assert.True(t, pub.VerifyBytes(msg, sig), name)
		assert.False(t, pub.VerifyBytes([]byte("money comes from nothing"), sig), name)

		priv2, err := c.PrivKeyFromBytes(priv.Bytes())
		require.Nil(t, err, name)
		assert.True(t, priv.Equals(priv2), name)

		pub2, err := c.PubKeyFromBytes(pub.Bytes())
		require.Nil(t, err, name)
		assert.True(t, pub.Equals(pub2), name)

		sig2, err := c.SignatureFromBytes(sig.Bytes())
		require.Nil(t, err, name)
		assert.True(t, pub2.VerifyBytes(msg, sig2), name)
	}
}

func TestCRandBytes(t *testing.T) {
	crypto.MixEntropy([]byte("test entropy"))
	b := crypto.CRandBytes(32)
	assert.Equal(t, 32, len(b))
	assert.Equal(t, 64, len(crypto.CRandHex(64)))
}
