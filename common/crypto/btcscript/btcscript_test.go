// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package btcscript

import (
	"testing"

	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/txscript"
	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	d := Driver{}
	priv, err := d.GenKey()
	require.Nil(t, err)

	msg := []byte("hello btc script")
	sig := priv.Sign(msg)
	require.NotNil(t, sig)
	require.False(t, sig.IsZero())

	pub := priv.PubKey()
	require.True(t, pub.VerifyBytes(msg, sig))
	require.False(t, pub.VerifyBytes([]byte("hello btc script2"), sig))

	priv2, err := d.GenKey()
	require.Nil(t, err)
	require.False(t, priv2.PubKey().VerifyBytes(msg, sig))
}

func TestFromBytes(t *testing.T) {
	d := Driver{}
	priv, err := d.GenKey()
	require.Nil(t, err)

	priv2, err := d.PrivKeyFromBytes(priv.Bytes())
	require.Nil(t, err)
	require.True(t, priv.Equals(priv2))

	pub, err := d.PubKeyFromBytes(priv.PubKey().Bytes())
	require.Nil(t, err)
	require.True(t, pub.Equals(priv2.PubKey()))

	msg := []byte("hello btc script")
	sig := priv.Sign(msg)
	sig2, err := d.SignatureFromBytes(sig.Bytes())
	require.Nil(t, err)
	require.True(t, sig.Equals(sig2))
	require.True(t, pub.VerifyBytes(msg, sig2))

	_, err = d.PrivKeyFromBytes([]byte("short"))
	require.NotNil(t, err)
	_, err = d.PubKeyFromBytes([]byte("short"))
	require.NotNil(t, err)
}

// 转账到地址
func TestPay2PubKeyHash(t *testing.T) {
	d := Driver{}
	priv, err := d.GenKey()
	require.Nil(t, err)
	msg := []byte("hello btc script")

	btcPriv, btcPub := secp256k1.PrivKeyFromBytes(priv.Bytes())
	btcAddr, lockScript, err := GetBtcLockScript(TyPay2PubKeyHash, btcPub.SerializeCompressed(), nil)
	require.Nil(t, err)

	unlockScript, err := GetBtcUnlockScript(msg, lockScript, nil,
		mkGetKey(map[string]addressToKey{btcAddr.EncodeAddress(): {key: btcPriv, compressed: true}}),
		mkGetScript(nil))
	require.Nil(t, err)
	require.Nil(t, CheckBtcScript(msg, lockScript, unlockScript, txscript.StandardVerifyFlags))

	data, err := proto.Marshal(&Signature{ScriptTy: TyPay2PubKeyHash, UnlockScript: unlockScript})
	require.Nil(t, err)
	sig, err := d.SignatureFromBytes(data)
	require.Nil(t, err)
	require.True(t, priv.PubKey().VerifyBytes(msg, sig))
}

// 转账到脚本
func TestPay2ScriptHash(t *testing.T) {
	d := Driver{}
	priv, err := d.GenKey()
	require.Nil(t, err)
	msg := []byte("hello btc script")

	btcPriv, btcPub := secp256k1.PrivKeyFromBytes(priv.Bytes())
	btcAddr, pkScript, err := GetBtcLockScript(TyPay2PubKeyHash, btcPub.SerializeCompressed(), nil)
	require.Nil(t, err)

	scriptAddr, lockScript, err := GetBtcLockScript(TyPay2ScriptHash, nil, pkScript)
	require.Nil(t, err)

	unlockScript, err := GetBtcUnlockScript(msg, lockScript, nil,
		mkGetKey(map[string]addressToKey{btcAddr.EncodeAddress(): {key: btcPriv, compressed: true}}),
		mkGetScript(map[string][]byte{scriptAddr.EncodeAddress(): pkScript}))
	require.Nil(t, err)
	require.Nil(t, CheckBtcScript(msg, lockScript, unlockScript, txscript.StandardVerifyFlags))
}
