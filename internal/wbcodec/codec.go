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

// Package wbcodec implements the outer transport-layer cipher used by the
// vendor's cloud protocol: a table-driven substitution pass composed with
// AES-128-CBC under a fixed, artifact-derived key and a zero IV. Every
// envelope produced or consumed by the client passes through Encode/Decode.
//
// The eight substitution tables are the vendor's shipped white-box artifact
// (see artifact.go). This package never attempts to regenerate them; it only
// slices the constant blob into tables and looks values up in it.
package wbcodec

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5" //nolint:gosec // required by the vendor protocol, not used for security
	"fmt"
)

const blockSize = aes.BlockSize

var (
	tables    [8][256]byte
	invTables [8][256]byte
	blockKey  [16]byte
)

func init() {
	for t := 0; t < 8; t++ {
		copy(tables[t][:], artifact[t*256:(t+1)*256])
		for i, v := range tables[t] {
			invTables[t][v] = byte(i)
		}
	}

	// The outer AES key is derived once, deterministically, from the fixed
	// artifact -- it is not regenerated per call and the artifact itself is
	// never altered.
	sum := md5.Sum(artifact[:]) //nolint:gosec
	copy(blockKey[:], sum[:])
}

// substitute runs the forward per-position substitution layer over data,
// selecting one of the eight tables by byte offset modulo 8.
func substitute(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = tables[i%8][b]
	}
	return out
}

// unsubstitute reverses substitute.
func unsubstitute(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = invTables[i%8][b]
	}
	return out
}

func pkcs7Pad(data []byte) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	n := len(data)
	if n == 0 || n%blockSize != 0 {
		return nil, fmt.Errorf("wbcodec: ciphertext is not block aligned")
	}
	padLen := int(data[n-1])
	if padLen == 0 || padLen > blockSize || padLen > n {
		return nil, fmt.Errorf("wbcodec: invalid padding")
	}
	for _, b := range data[n-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("wbcodec: invalid padding")
		}
	}
	return data[:n-padLen], nil
}

// Encode applies the substitution layer, PKCS#7 pads, and AES-128-CBC
// encrypts data under the fixed artifact-derived key with a zero IV.
func Encode(data []byte) ([]byte, error) {
	block, err := aes.NewCipher(blockKey[:])
	if err != nil {
		return nil, fmt.Errorf("wbcodec: %w", err)
	}

	padded := pkcs7Pad(substitute(data))
	iv := make([]byte, blockSize)
	out := make([]byte, len(padded))

	mode := cipher.NewCBCEncrypter(block, iv)
	mode.CryptBlocks(out, padded)

	return out, nil
}

// Decode reverses Encode: AES-128-CBC decrypts under the fixed key with a
// zero IV, strips PKCS#7 padding, and reverses the substitution layer.
func Decode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if len(data)%blockSize != 0 {
		return nil, fmt.Errorf("wbcodec: ciphertext length %d is not a multiple of block size", len(data))
	}

	block, err := aes.NewCipher(blockKey[:])
	if err != nil {
		return nil, fmt.Errorf("wbcodec: %w", err)
	}

	iv := make([]byte, blockSize)
	plain := make([]byte, len(data))
	mode := cipher.NewCBCDecrypter(block, iv)
	mode.CryptBlocks(plain, data)

	unpadded, err := pkcs7Unpad(plain)
	if err != nil {
		return nil, err
	}

	return unsubstitute(unpadded), nil
}

// Equal reports whether two byte slices are identical. Exposed for tests
// that assert round-trip identity without importing bytes directly.
func Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}
