// Copyright 2025 The Nexavolt Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package innercipher implements the inner encryption layer of the envelope:
// AES-128-CBC with a zero IV and PKCS#7 padding, keyed per session. The
// resulting ciphertext is exchanged on the wire as uppercase hex.
package innercipher

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5" //nolint:gosec // required by the vendor protocol
	"encoding/hex"
	"fmt"
)

const blockSize = aes.BlockSize

// DeriveKey returns MD5(secret), the key derivation the vendor protocol uses
// both for the login-time password key and the session content key
// (MD5 of the server-issued encryToken).
func DeriveKey(secret string) [16]byte {
	return md5.Sum([]byte(secret)) //nolint:gosec
}

func pkcs7Pad(data []byte) []byte {
	padLen := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+padLen)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(padLen)
	}
	return out
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	n := len(data)
	if n == 0 || n%blockSize != 0 {
		return nil, fmt.Errorf("innercipher: ciphertext is not block aligned")
	}
	padLen := int(data[n-1])
	if padLen == 0 || padLen > blockSize || padLen > n {
		return nil, fmt.Errorf("innercipher: invalid padding")
	}
	for _, b := range data[n-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("innercipher: invalid padding")
		}
	}
	return data[:n-padLen], nil
}

// EncryptHex encrypts plaintext under key with AES-128-CBC, zero IV, PKCS#7
// padding, and returns the ciphertext as uppercase hex -- the shape the
// vendor protocol expects in the encryData/respondData fields.
func EncryptHex(key [16]byte, plaintext []byte) (string, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return "", fmt.Errorf("innercipher: %w", err)
	}

	padded := pkcs7Pad(plaintext)
	iv := make([]byte, blockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out, padded)

	return fmt.Sprintf("%X", out), nil
}

// DecryptHex reverses EncryptHex. An empty input yields an empty, nil-error
// result -- an empty respondData means "no payload", not an error.
func DecryptHex(key [16]byte, hexCiphertext string) ([]byte, error) {
	if hexCiphertext == "" {
		return nil, nil
	}

	raw, err := hex.DecodeString(hexCiphertext)
	if err != nil {
		return nil, fmt.Errorf("innercipher: invalid hex: %w", err)
	}
	if len(raw)%blockSize != 0 {
		return nil, fmt.Errorf("innercipher: ciphertext length %d is not block aligned", len(raw))
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("innercipher: %w", err)
	}

	plain := make([]byte, len(raw))
	iv := make([]byte, blockSize)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, raw)

	return pkcs7Unpad(plain)
}
