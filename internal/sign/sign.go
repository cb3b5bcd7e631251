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

// Package sign implements the canonical field-ordering, SHA-1 request
// signature, and MD5 checkcode used to authenticate every envelope.
package sign

import (
	"crypto/md5"  //nolint:gosec // required by the vendor protocol
	"crypto/sha1" //nolint:gosec // required by the vendor protocol
	"fmt"
	"sort"
	"strings"
)

// OuterFields carries the outer envelope identifiers. The first five
// participate in the signature alongside the inner field map; ServiceTime
// is used only by Checkcode.
type OuterFields struct {
	CountryCode  string
	Identifier   string
	IMEIMD5      string
	Language     string
	ReqTimestamp string
	ServiceTime  string
}

// Sign computes the SHA-1 request signature over the canonical
// "k1=v1&k2=v2&...&key=<signKey>" string built from the union of inner and
// outer fields, sorted lexicographically by key. Returns 40 uppercase hex
// characters.
func Sign(inner map[string]string, outer OuterFields, signKey string) string {
	union := make(map[string]string, len(inner)+5)
	for k, v := range inner {
		union[k] = v
	}
	union["countryCode"] = outer.CountryCode
	union["identifier"] = outer.Identifier
	union["imeiMD5"] = outer.IMEIMD5
	union["language"] = outer.Language
	union["reqTimestamp"] = outer.ReqTimestamp

	canonical := canonicalize(union)
	canonical += "&key=" + signKey

	sum := sha1.Sum([]byte(canonical)) //nolint:gosec
	return fmt.Sprintf("%X", sum)
}

// Checkcode computes the MD5 checkcode over the fixed concatenation of
// identifier, imeiMD5, reqTimestamp, serviceTime, and signKey. Returns 32
// uppercase hex characters.
func Checkcode(outer OuterFields, signKey string) string {
	concat := outer.Identifier + outer.IMEIMD5 + outer.ReqTimestamp + outer.ServiceTime + signKey
	sum := md5.Sum([]byte(concat)) //nolint:gosec
	return fmt.Sprintf("%X", sum)
}

// canonicalize sorts the map's keys and joins "k=v" pairs with "&", using
// raw string values with no URL-encoding.
func canonicalize(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+fields[k])
	}
	return strings.Join(parts, "&")
}

// SignKeyFromToken returns MD5(token) upper-hex, used for both the
// authenticated signToken and the login-time password.
func SignKeyFromToken(token string) string {
	sum := md5.Sum([]byte(token)) //nolint:gosec
	return fmt.Sprintf("%X", sum)
}
