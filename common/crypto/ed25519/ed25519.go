// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ed25519 签名驱动
package ed25519

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/guessbet/guessbet/common/crypto"
	"golang.org/x/crypto/ed25519"
)

//Driver 驱动
type Driver struct{}

//GenKey 生成私钥
func (d Driver) GenKey() (crypto.PrivKey, error) {
	seed := crypto.CRandBytes(ed25519.SeedSize)
	privKeyBytes := new([64]byte)
	copy(privKeyBytes[:], ed25519.NewKeyFromSeed(seed))
	return PrivKeyEd25519(*privKeyBytes), nil
}

//PrivKeyFromBytes 字节转为私钥，公钥部分由种子重新推导
func (d Driver) PrivKeyFromBytes(b []byte) (privKey crypto.PrivKey, err error) {
	if len(b) != 64 {
		return nil, errors.New("invalid priv key byte")
	}
	privKeyBytes := new([64]byte)
	copy(privKeyBytes[:], ed25519.NewKeyFromSeed(b[:ed25519.SeedSize]))
	return PrivKeyEd25519(*privKeyBytes), nil
}

//PubKeyFromBytes 字节转为公钥
func (d Driver) PubKeyFromBytes(b []byte) (pubKey crypto.PubKey, err error) {
	if len(b) != 32 {
		return nil, errors.New("invalid pub key byte")
	}
	pubKeyBytes := new([32]byte)
	copy(pubKeyBytes[:], b[:])
	return PubKeyEd25519(*pubKeyBytes), nil
}

//SignatureFromBytes 字节转为签名
func (d Driver) SignatureFromBytes(b []byte) (sig crypto.Signature, err error) {
	sigBytes := new([64]byte)
	copy(sigBytes[:], b[:])
	return SignatureEd25519(*sigBytes), nil
}

//PrivKeyEd25519 私钥
type PrivKeyEd25519 [64]byte

//Bytes 字节格式
func (privKey PrivKeyEd25519) Bytes() []byte {
	s := make([]byte, 64)
	copy(s, privKey[:])
	return s
}

//Sign 签名
func (privKey PrivKeyEd25519) Sign(msg []byte) crypto.Signature {
	sig := ed25519.Sign(ed25519.PrivateKey(privKey[:]), msg)
	sigBytes := new([64]byte)
	copy(sigBytes[:], sig)
	return SignatureEd25519(*sigBytes)
}

//PubKey 私钥生成公钥
func (privKey PrivKeyEd25519) PubKey() crypto.PubKey {
	var pubKeyBytes [32]byte
	copy(pubKeyBytes[:], privKey[32:])
	return PubKeyEd25519(pubKeyBytes)
}

//Equals 相等
func (privKey PrivKeyEd25519) Equals(other crypto.PrivKey) bool {
	if otherEd, ok := other.(PrivKeyEd25519); ok {
		return bytes.Equal(privKey[:], otherEd[:])
	}
	return false
}

//PubKeyEd25519 公钥
type PubKeyEd25519 [32]byte

//Bytes 字节格式
func (pubKey PubKeyEd25519) Bytes() []byte {
	s := make([]byte, 32)
	copy(s, pubKey[:])
	return s
}

//VerifyBytes 验证签名
func (pubKey PubKeyEd25519) VerifyBytes(msg []byte, sig crypto.Signature) bool {
	if wrap, ok := sig.(SignatureS); ok {
		sig = wrap.Signature
	}
	sigEd25519, ok := sig.(SignatureEd25519)
	if !ok {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(pubKey[:]), msg, sigEd25519[:])
}

//KeyString 公钥字符串格式
func (pubKey PubKeyEd25519) KeyString() string {
	return fmt.Sprintf("%X", pubKey[:])
}

//Equals 相等
func (pubKey PubKeyEd25519) Equals(other crypto.PubKey) bool {
	if otherEd, ok := other.(PubKeyEd25519); ok {
		return bytes.Equal(pubKey[:], otherEd[:])
	}
	return false
}

//SignatureEd25519 签名
type SignatureEd25519 [64]byte

//SignatureS 签名包装
type SignatureS struct {
	crypto.Signature
}

//Bytes 字节格式
func (sig SignatureEd25519) Bytes() []byte {
	s := make([]byte, 64)
	copy(s, sig[:])
	return s
}

//IsZero 是否为空
func (sig SignatureEd25519) IsZero() bool { return len(sig) == 0 }

func (sig SignatureEd25519) String() string {
	fingerprint := make([]byte, len(sig[:]))
	copy(fingerprint, sig[:])
	return fmt.Sprintf("/%X.../", fingerprint)
}

//Equals 相等
func (sig SignatureEd25519) Equals(other crypto.Signature) bool {
	if otherEd, ok := other.(SignatureEd25519); ok {
		return bytes.Equal(sig[:], otherEd[:])
	}
	return false
}

//const
const (
	Name = "ed25519"
	ID   = 2
)

func init() {
	crypto.Register(Name, &Driver{})
	crypto.RegisterType(Name, ID)
}
