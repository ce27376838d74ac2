// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ethsecp256k1 以太坊风格签名驱动，keccak256哈希，签名格式为[R || S || V]
package ethsecp256k1

import (
	"bytes"
	"errors"
	"fmt"

	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/guessbet/guessbet/common/crypto"
)

const privKeyBytesLen = 32
const pubKeyBytesLen = 64 + 1

//Driver 驱动
type Driver struct{}

//GenKey 生成私钥
func (d Driver) GenKey() (crypto.PrivKey, error) {
	privKeyBytes := [privKeyBytesLen]byte{}
	copy(privKeyBytes[:], crypto.CRandBytes(privKeyBytesLen))
	priv, _ := secp256k1.PrivKeyFromBytes(privKeyBytes[:])
	copy(privKeyBytes[:], priv.Serialize())
	return PrivKeyEth(privKeyBytes), nil
}

//PrivKeyFromBytes 字节转为私钥
func (d Driver) PrivKeyFromBytes(b []byte) (privKey crypto.PrivKey, err error) {
	if len(b) != privKeyBytesLen {
		return nil, errors.New("invalid priv key byte")
	}
	privKeyBytes := new([privKeyBytesLen]byte)
	copy(privKeyBytes[:], b[:privKeyBytesLen])
	return PrivKeyEth(*privKeyBytes), nil
}

//PubKeyFromBytes 字节转为公钥，支持65字节非压缩和33字节压缩格式
func (d Driver) PubKeyFromBytes(b []byte) (pubKey crypto.PubKey, err error) {
	if len(b) != pubKeyBytesLen && len(b) != 33 {
		return nil, errors.New("invalid pub key byte, must be 65 or 33 bytes")
	}
	if len(b) == 33 {
		p, err := ethcrypto.DecompressPubkey(b)
		if err != nil {
			return nil, err
		}
		b = ethcrypto.FromECDSAPub(p)
	}
	var pubKeyBytes [pubKeyBytesLen]byte
	copy(pubKeyBytes[:], b[:])
	return PubKeyEth(pubKeyBytes), nil
}

//SignatureFromBytes 字节转为签名
func (d Driver) SignatureFromBytes(b []byte) (sig crypto.Signature, err error) {
	return SignatureEth(b), nil
}

//PrivKeyEth 私钥
type PrivKeyEth [privKeyBytesLen]byte

//Bytes 字节格式
func (privKey PrivKeyEth) Bytes() []byte {
	s := make([]byte, privKeyBytesLen)
	copy(s, privKey[:])
	return s
}

//Sign 签名，输出65字节[R || S || V]，V为0或1
func (privKey PrivKeyEth) Sign(msg []byte) crypto.Signature {
	priv, err := ethcrypto.ToECDSA(privKey[:])
	if err != nil {
		return nil
	}
	hash := ethcrypto.Keccak256(msg)
	sig, err := ethcrypto.Sign(hash, priv)
	if err != nil {
		panic("Error Sign calculates an ECDSA signature." + err.Error())
	}
	return SignatureEth(sig)
}

//PubKey 私钥生成公钥，非压缩65字节 0x04+X+Y
func (privKey PrivKeyEth) PubKey() crypto.PubKey {
	priv, err := ethcrypto.ToECDSA(privKey[:])
	if err != nil {
		return nil
	}
	var pubEth PubKeyEth
	pub := ethcrypto.FromECDSAPub(&priv.PublicKey)
	copy(pubEth[:], pub)
	return pubEth
}

//Equals 相等
func (privKey PrivKeyEth) Equals(other crypto.PrivKey) bool {
	if otherSecp, ok := other.(PrivKeyEth); ok {
		return bytes.Equal(privKey[:], otherSecp[:])
	}
	return false
}

func (privKey PrivKeyEth) String() string {
	return "PrivKeyEth{*****}"
}

//PubKeyEth 非压缩公钥，前缀0x04
type PubKeyEth [pubKeyBytesLen]byte

//Bytes 字节格式
func (pubKey PubKeyEth) Bytes() []byte {
	s := make([]byte, pubKeyBytesLen)
	copy(s, pubKey[:])
	return s
}

//VerifyBytes 验证签名，通过Ecrecover恢复公钥比对
func (pubKey PubKeyEth) VerifyBytes(msg []byte, sig crypto.Signature) bool {
	if wrap, ok := sig.(SignatureS); ok {
		sig = wrap.Signature
	}
	sigEth, ok := sig.(SignatureEth)
	if !ok {
		return false
	}
	sigBytes := sigEth.Bytes()
	if len(sigBytes) != 65 {
		return false
	}
	hash := ethcrypto.Keccak256(msg)
	recoverPub, err := ethcrypto.Ecrecover(hash, sigBytes)
	if err != nil {
		return false
	}
	if !bytes.Equal(recoverPub, pubKey[:]) {
		return false
	}
	return ethcrypto.VerifySignature(pubKey[:], hash, sigBytes[:64])
}

func (pubKey PubKeyEth) String() string {
	return fmt.Sprintf("PubKeyEth{%X}", pubKey[:])
}

//KeyString hex格式，用于map的key等场景
func (pubKey PubKeyEth) KeyString() string {
	return fmt.Sprintf("%X", pubKey[:])
}

//Equals 相等
func (pubKey PubKeyEth) Equals(other crypto.PubKey) bool {
	if otherSecp, ok := other.(PubKeyEth); ok {
		return bytes.Equal(pubKey[:], otherSecp[:])
	}
	return false
}

//SignatureEth 签名
type SignatureEth []byte

//SignatureS 签名包装
type SignatureS struct {
	crypto.Signature
}

//Bytes 字节格式
func (sig SignatureEth) Bytes() []byte {
	s := make([]byte, len(sig))
	copy(s, sig[:])
	return s
}

//IsZero 是否为空
func (sig SignatureEth) IsZero() bool { return len(sig) == 0 }

func (sig SignatureEth) String() string {
	fingerprint := make([]byte, len(sig[:]))
	copy(fingerprint, sig[:])
	return fmt.Sprintf("/%X.../", fingerprint)
}

//Equals 相等
func (sig SignatureEth) Equals(other crypto.Signature) bool {
	if otherEth, ok := other.(SignatureEth); ok {
		return bytes.Equal(sig[:], otherEth[:])
	}
	return false
}

//const
const (
	Name = "ethsecp256k1"
	ID   = 4
)

func init() {
	crypto.Register(Name, &Driver{})
	crypto.RegisterType(Name, ID)
}
