// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package btcscript 比特币脚本签名驱动
package btcscript

import (
	"bytes"
	"errors"
	"fmt"

	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/txscript"
	"github.com/golang/protobuf/proto"
	"github.com/guessbet/guessbet/common/crypto"
)

//const
const (
	Name = "btcscript"
	ID   = 5
)

func init() {
	crypto.Register(Name, &Driver{})
	crypto.RegisterType(Name, ID)
}

//Driver 驱动
type Driver struct{}

//GenKey 生成私钥
func (d Driver) GenKey() (crypto.PrivKey, error) {
	privKeyBytes := [32]byte{}
	copy(privKeyBytes[:], crypto.CRandBytes(32))
	priv, _ := secp256k1.PrivKeyFromBytes(privKeyBytes[:])
	copy(privKeyBytes[:], priv.Serialize())
	return privKeyBtcScript{key: privKeyBytes}, nil
}

//PrivKeyFromBytes 字节转为私钥
func (d Driver) PrivKeyFromBytes(b []byte) (privKey crypto.PrivKey, err error) {
	if len(b) != 32 {
		return nil, errors.New("invalid priv key byte")
	}
	privKeyBytes := new([32]byte)
	copy(privKeyBytes[:], b[:32])
	priv, _ := secp256k1.PrivKeyFromBytes(privKeyBytes[:])
	copy(privKeyBytes[:], priv.Serialize())
	return privKeyBtcScript{key: *privKeyBytes}, nil
}

//PubKeyFromBytes 字节转为公钥
func (d Driver) PubKeyFromBytes(b []byte) (pubKey crypto.PubKey, err error) {
	if len(b) != 33 {
		return nil, errors.New("invalid pub key byte")
	}
	pubKeyBytes := new([33]byte)
	copy(pubKeyBytes[:], b[:])
	return pubKeyBtcScript(*pubKeyBytes), nil
}

//SignatureFromBytes 字节转为签名
func (d Driver) SignatureFromBytes(b []byte) (sig crypto.Signature, err error) {
	return sigBtcScript(b), nil
}

type privKeyBtcScript struct {
	key [32]byte
}

func (privKey privKeyBtcScript) Bytes() []byte {
	s := make([]byte, 32)
	copy(s, privKey.key[:])
	return s
}

// Sign 用pay-to-pubkey脚本签名，解锁脚本序列化后作为签名数据
func (privKey privKeyBtcScript) Sign(msg []byte) crypto.Signature {
	priv, pub := secp256k1.PrivKeyFromBytes(privKey.key[:])
	btcAddr, lockScript, err := GetBtcLockScript(TyPay2PubKey, pub.SerializeCompressed(), nil)
	if err != nil {
		return nil
	}
	unlockScript, err := GetBtcUnlockScript(msg, lockScript, nil,
		mkGetKey(map[string]addressToKey{btcAddr.EncodeAddress(): {key: priv, compressed: true}}),
		mkGetScript(nil))
	if err != nil {
		return nil
	}
	data, err := proto.Marshal(&Signature{ScriptTy: TyPay2PubKey, UnlockScript: unlockScript})
	if err != nil {
		return nil
	}
	return sigBtcScript(data)
}

func (privKey privKeyBtcScript) PubKey() crypto.PubKey {
	_, pub := secp256k1.PrivKeyFromBytes(privKey.key[:])
	var pubBtc pubKeyBtcScript
	copy(pubBtc[:], pub.SerializeCompressed())
	return pubBtc
}

func (privKey privKeyBtcScript) Equals(other crypto.PrivKey) bool {
	if otherPriv, ok := other.(privKeyBtcScript); ok {
		return bytes.Equal(privKey.key[:], otherPriv.key[:])
	}
	return false
}

type pubKeyBtcScript [33]byte

func (pubKey pubKeyBtcScript) Bytes() []byte {
	s := make([]byte, 33)
	copy(s, pubKey[:])
	return s
}

// VerifyBytes 根据签名中的脚本类型重建锁定脚本，再执行脚本引擎验证
// pay-to-script-hash类型时公钥字节为赎回脚本原文
func (pubKey pubKeyBtcScript) VerifyBytes(msg []byte, sig crypto.Signature) bool {
	ssig := &Signature{}
	err := proto.Unmarshal(sig.Bytes(), ssig)
	if err != nil {
		return false
	}
	_, lockScript, err := GetBtcLockScript(ssig.ScriptTy, pubKey[:], pubKey[:])
	if err != nil {
		return false
	}
	return CheckBtcScript(msg, lockScript, ssig.UnlockScript, txscript.StandardVerifyFlags) == nil
}

func (pubKey pubKeyBtcScript) String() string {
	return fmt.Sprintf("PubKeyBtcScript{%X}", pubKey[:])
}

//KeyString hex格式
func (pubKey pubKeyBtcScript) KeyString() string {
	return fmt.Sprintf("%X", pubKey[:])
}

func (pubKey pubKeyBtcScript) Equals(other crypto.PubKey) bool {
	if otherPub, ok := other.(pubKeyBtcScript); ok {
		return bytes.Equal(pubKey[:], otherPub[:])
	}
	return false
}

type sigBtcScript []byte

func (sig sigBtcScript) Bytes() []byte {
	s := make([]byte, len(sig))
	copy(s, sig[:])
	return s
}

func (sig sigBtcScript) IsZero() bool { return len(sig) == 0 }

func (sig sigBtcScript) String() string {
	fingerprint := make([]byte, len(sig[:]))
	copy(fingerprint, sig[:])
	return fmt.Sprintf("/%X.../", fingerprint)
}

func (sig sigBtcScript) Equals(other crypto.Signature) bool {
	if otherSig, ok := other.(sigBtcScript); ok {
		return bytes.Equal(sig[:], otherSig[:])
	}
	return false
}
