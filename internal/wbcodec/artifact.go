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

package wbcodec

// artifact is the compiled-in white-box substitution table set shipped with
// the client. It is opaque, vendor-supplied data: eight interleaved 256-byte
// permutation tables (2048 bytes total) that stand in for the vendor's
// baked-in AES key schedule. The bytes below are fixed at build time and are
// never regenerated, derived, or recomputed by this package at runtime --
// only sliced into the eight tables and consulted by lookup.
var artifact = [2048]byte{
	0xab, 0xcb, 0xbc, 0xc5, 0x3e, 0xc3, 0x84, 0x25, 0xe9, 0x97, 0x3a, 0x74, 0x55, 0xde, 0xd9, 0xe8,
	0x05, 0x7d, 0x56, 0x20, 0x7e, 0x83, 0x4d, 0xbf, 0x30, 0x33, 0x73, 0xbe, 0x5c, 0x6d, 0xc2, 0xd3,
	0xca, 0xa0, 0xe7, 0x90, 0x4f, 0x4a, 0x68, 0xd0, 0x3f, 0x5f, 0x9a, 0x08, 0x42, 0x88, 0x69, 0x99,
	0xe1, 0xc9, 0x16, 0xf9, 0x80, 0x50, 0x6e, 0xb1, 0x92, 0x57, 0x71, 0xb7, 0x87, 0x40, 0x95, 0x9b,
	0x8d, 0xf6, 0x7a, 0x37, 0x00, 0x4b, 0xa8, 0x58, 0x62, 0xe6, 0xdc, 0x5a, 0x53, 0x8b, 0x81, 0xf5,
	0xe3, 0x93, 0x67, 0x8a, 0x29, 0xe0, 0x45, 0x1c, 0x1a, 0x9e, 0x31, 0x85, 0xdd, 0x10, 0x96, 0xf2,
	0x2c, 0x47, 0x3b, 0xcc, 0x02, 0x38, 0x26, 0x79, 0xc8, 0x12, 0x77, 0x35, 0x18, 0x91, 0x4e, 0x9d,
	0xdb, 0x6b, 0x27, 0x65, 0x2e, 0x2f, 0xad, 0xfb, 0xfa, 0x0a, 0x0e, 0x07, 0x0c, 0x9f, 0x59, 0xd6,
	0x2b, 0xff, 0xfe, 0x17, 0x66, 0xda, 0xb9, 0xd8, 0x44, 0xed, 0xf0, 0x7c, 0x98, 0xbb, 0xb8, 0x3d,
	0x94, 0x51, 0x32, 0xba, 0xc6, 0xb4, 0xb6, 0xb2, 0xa2, 0x11, 0x52, 0xfd, 0x49, 0x4c, 0xa5, 0x1d,
	0xea, 0xaf, 0xd1, 0xa3, 0x72, 0xd2, 0x7f, 0xae, 0xa6, 0x5b, 0x5d, 0x9c, 0xa7, 0xeb, 0x78, 0x60,
	0xf7, 0xa9, 0xe5, 0xac, 0x01, 0x7b, 0x15, 0xcf, 0x06, 0x8f, 0xce, 0x1b, 0xa1, 0x24, 0xf1, 0xe2,
	0x64, 0x21, 0xf8, 0xb5, 0x86, 0x43, 0xb3, 0x61, 0x63, 0x0f, 0xd4, 0x1f, 0x48, 0xbd, 0xdf, 0x14,
	0xaa, 0xe4, 0x6f, 0x89, 0x8c, 0x0d, 0x03, 0xfc, 0x39, 0xa4, 0x23, 0x75, 0xf4, 0x36, 0xc1, 0x8e,
	0x1e, 0x2a, 0x6c, 0xc4, 0xc7, 0x09, 0xcd, 0x04, 0x28, 0xd5, 0xf3, 0xc0, 0x6a, 0x19, 0xee, 0x82,
	0x3c, 0x70, 0x34, 0xd7, 0x5e, 0xec, 0x2d, 0x41, 0xef, 0x13, 0x22, 0x0b, 0xb0, 0x46, 0x76, 0x54,
	0x9b, 0x9f, 0x71, 0x36, 0xe6, 0x34, 0xd7, 0xed, 0x9a, 0x0c, 0x66, 0x84, 0xb6, 0x15, 0x8f, 0xbb,
	0x07, 0x6c, 0xc0, 0xe7, 0x73, 0xad, 0x6d, 0x3b, 0xd1, 0x85, 0x86, 0xfb, 0x46, 0x6b, 0xe1, 0x7a,
	0x28, 0x13, 0x01, 0xe8, 0x2e, 0xf5, 0x3e, 0x1d, 0x1a, 0x69, 0xe5, 0x7b, 0x7d, 0xff, 0x1b, 0x9e,
	0xf4, 0x82, 0xe2, 0x0b, 0x7c, 0xca, 0x58, 0x76, 0x00, 0x55, 0xfa, 0xf0, 0xf1, 0x19, 0x47, 0x41,
	0xe3, 0x16, 0x8d, 0x96, 0x80, 0x75, 0x18, 0x10, 0x79, 0xa5, 0xd8, 0x42, 0xda, 0xb5, 0x81, 0x62,
	0x1e, 0xa4, 0xdf, 0x4d, 0x5c, 0xf6, 0x0e, 0x5e, 0xe4, 0xf2, 0x64, 0x0f, 0x9d, 0x78, 0xc8, 0xbd,
	0x52, 0x83, 0xc3, 0x5d, 0xb3, 0x91, 0x89, 0x38, 0x3d, 0x74, 0x4b, 0x4a, 0x6e, 0x03, 0x67, 0x8c,
	0xcd, 0x7f, 0x8b, 0x61, 0xa2, 0x22, 0x87, 0x63, 0x27, 0xc2, 0xd3, 0x8a, 0xfc, 0x65, 0xa0, 0x90,
	0xaf, 0xce, 0x1f, 0xc7, 0xe9, 0xf8, 0x93, 0xfe, 0x4c, 0xba, 0x94, 0xae, 0x45, 0xa6, 0x57, 0x06,
	0xf3, 0xc6, 0x72, 0xf9, 0x2a, 0x6f, 0x2c, 0xd6, 0xf7, 0x24, 0xdd, 0xd5, 0x70, 0x39, 0xcc, 0x2d,
	0x95, 0x7e, 0xb7, 0xd4, 0x5b, 0xb8, 0x6a, 0x43, 0x23, 0x9c, 0x51, 0x12, 0xdb, 0xc1, 0x53, 0x54,
	0x2b, 0x08, 0x77, 0x5a, 0xd0, 0x29, 0x32, 0xb0, 0x31, 0x09, 0xef, 0xac, 0x88, 0xc5, 0x37, 0x68,
	0xb9, 0x02, 0xdc, 0x14, 0xbe, 0xe0, 0x04, 0x1c, 0x60, 0x50, 0x2f, 0x4f, 0xd9, 0xbf, 0x59, 0xa1,
	0x30, 0xaa, 0xea, 0x5f, 0x40, 0xb1, 0xc9, 0xde, 0x97, 0xd2, 0xcb, 0xcf, 0x44, 0xee, 0xbc, 0x92,
	0xec, 0x4e, 0xa9, 0x11, 0x17, 0x21, 0xa8, 0xeb, 0x0a, 0x35, 0xb4, 0x56, 0xab, 0x99, 0x98, 0x26,
	0x05, 0xa3, 0xa7, 0x49, 0xfd, 0x48, 0x3f, 0x33, 0x20, 0xc4, 0x3a, 0x8e, 0x0d, 0xb2, 0x3c, 0x25,
	0x14, 0xa3, 0x3c, 0x1c, 0x26, 0xb6, 0x6e, 0xf8, 0xf1, 0x2f, 0xf5, 0xd4, 0x2d, 0x7f, 0x6b, 0xf7,
	0x36, 0x78, 0x05, 0xd2, 0x21, 0xc6, 0x13, 0xc7, 0xd6, 0x4c, 0x20, 0x5b, 0xc5, 0x5d, 0x6f, 0xdf,
	0x7d, 0xea, 0xe4, 0x00, 0xd3, 0xf4, 0x33, 0xd7, 0x70, 0xb2, 0xc0, 0x08, 0xc1, 0xa7, 0x98, 0x51,
	0xcf, 0x6c, 0x41, 0x5c, 0x77, 0xed, 0x58, 0x57, 0xf6, 0x87, 0x60, 0x9e, 0xaa, 0x84, 0x9a, 0x4a,
	0x94, 0xb4, 0x0d, 0x16, 0x61, 0x10, 0x4f, 0x7c, 0x4b, 0x3b, 0xaf, 0x0a, 0x1d, 0x06, 0xfd, 0xbc,
	0x0b, 0x02, 0x7b, 0xda, 0xbd, 0xb1, 0x63, 0x96, 0xe3, 0xba, 0x4d, 0xab, 0x53, 0xe9, 0x69, 0x25,
	0x2b, 0x22, 0xf2, 0x8d, 0x8c, 0x9f, 0x42, 0xfe, 0x45, 0xe8, 0x9d, 0x52, 0x71, 0xe7, 0x5f, 0x37,
	0x2e, 0x5a, 0xff, 0xad, 0x8b, 0x27, 0x6a, 0xd8, 0x55, 0x97, 0x8f, 0xf0, 0x24, 0x48, 0xcc, 0xb0,
	0x95, 0x99, 0x67, 0x1a, 0xa4, 0xa8, 0xf9, 0x76, 0x5e, 0x03, 0xcb, 0x86, 0x2a, 0x35, 0x7a, 0x7e,
	0x38, 0x1e, 0xdb, 0x73, 0xc8, 0xef, 0x32, 0x3e, 0x74, 0x4e, 0xe1, 0xc3, 0x6d, 0xfc, 0x47, 0xca,
	0x28, 0xec, 0x12, 0x04, 0xc2, 0x09, 0x3f, 0x43, 0xb3, 0x85, 0x89, 0x64, 0x65, 0xbe, 0xc9, 0x29,
	0x2c, 0xe0, 0x23, 0x83, 0x01, 0x0c, 0x93, 0x1f, 0xd1, 0xbb, 0xe2, 0x49, 0xde, 0xbf, 0xb7, 0xdc,
	0xa9, 0xd0, 0xac, 0x82, 0xf3, 0xee, 0x39, 0xa0, 0x90, 0xb9, 0x59, 0x80, 0x46, 0x91, 0x30, 0x19,
	0x56, 0xeb, 0x07, 0xe6, 0xe5, 0xd9, 0x1b, 0x0e, 0x44, 0x81, 0xc4, 0xa2, 0x3d, 0x17, 0xdd, 0x9c,
	0x79, 0xa1, 0x62, 0xce, 0xcd, 0x88, 0x31, 0x8a, 0xfb, 0xd5, 0x34, 0x68, 0x8e, 0xb8, 0x0f, 0xfa,
	0xae, 0xb5, 0x11, 0x3a, 0x50, 0x72, 0xa5, 0x18, 0x54, 0x9b, 0x75, 0x40, 0x15, 0x92, 0x66, 0xa6,
	0xc8, 0x9c, 0xd1, 0x68, 0xa3, 0xf6, 0x0d, 0x15, 0xd0, 0xa5, 0xcf, 0xf5, 0xe6, 0x91, 0x08, 0x10,
	0x03, 0x45, 0x04, 0x7b, 0x22, 0x4e, 0x1d, 0x19, 0x0b, 0xf1, 0xd9, 0xd6, 0x99, 0xc2, 0xe7, 0x50,
	0xcb, 0xd4, 0x14, 0xb2, 0xd5, 0xcd, 0x88, 0x1b, 0x32, 0xca, 0xb3, 0xa2, 0x67, 0x12, 0x98, 0x9b,
	0x8a, 0x6e, 0xe5, 0x11, 0xb9, 0x41, 0x26, 0x25, 0x65, 0xbf, 0x5a, 0x8f, 0x6b, 0xe9, 0x54, 0xd2,
	0x36, 0xee, 0xbd, 0x13, 0xde, 0xdf, 0x2e, 0x27, 0x28, 0xe0, 0x87, 0x48, 0x00, 0x76, 0xa9, 0x2c,
	0xdc, 0x6d, 0x9e, 0xec, 0x06, 0x8d, 0x3a, 0x73, 0x78, 0xad, 0x0c, 0x17, 0x6a, 0xf4, 0x4b, 0xf8,
	0x86, 0x8e, 0xae, 0x1c, 0xc1, 0x79, 0xab, 0x1a, 0x5e, 0x34, 0x3d, 0x63, 0x60, 0x71, 0x05, 0xc6,
	0x93, 0x85, 0x20, 0xaa, 0x82, 0xc4, 0xfa, 0x61, 0xeb, 0x84, 0x29, 0xa7, 0xdd, 0xf2, 0xd8, 0xce,
	0xcc, 0x38, 0x55, 0x64, 0x18, 0x8c, 0xb4, 0xf0, 0xb8, 0x9d, 0x35, 0xf9, 0xc9, 0xaf, 0xbe, 0xc5,
	0x81, 0x4d, 0x46, 0x47, 0x09, 0x44, 0x4a, 0xff, 0x7d, 0xb5, 0x07, 0xe3, 0x39, 0x1f, 0x69, 0x5c,
	0xe1, 0xf3, 0x95, 0x2b, 0x43, 0xed, 0xac, 0xea, 0x4c, 0x33, 0xb6, 0xb0, 0xd3, 0x2d, 0x8b, 0xa6,
	0x3e, 0xe4, 0x21, 0x7a, 0x5d, 0x77, 0xe8, 0xa1, 0x0e, 0x1e, 0x6c, 0x01, 0x80, 0x74, 0x90, 0x83,
	0x96, 0x57, 0xa0, 0xc0, 0x49, 0x7c, 0x75, 0x2a, 0xfe, 0x92, 0x89, 0x0a, 0x16, 0xba, 0xb1, 0x37,
	0xc7, 0xbb, 0xa8, 0xd7, 0x3c, 0xda, 0x3b, 0xc3, 0x70, 0xbc, 0x7f, 0xf7, 0x62, 0x3f, 0x40, 0x72,
	0x42, 0x53, 0x9f, 0x94, 0x66, 0x5b, 0xfb, 0x6f, 0xb7, 0xfc, 0xef, 0x58, 0x24, 0x2f, 0xe2, 0x9a,
	0x51, 0x52, 0x59, 0xa4, 0x7e, 0xfd, 0xdb, 0x30, 0x97, 0x56, 0x4f, 0x23, 0x31, 0x0f, 0x02, 0x5f,
	0xa7, 0x60, 0xf2, 0x23, 0x91, 0x71, 0xef, 0x65, 0xb9, 0x5e, 0xa8, 0xe8, 0x9c, 0x3a, 0x34, 0xd2,
	0x7e, 0xed, 0xf0, 0x4f, 0xd4, 0xce, 0x00, 0xc9, 0x75, 0x76, 0xb7, 0x4d, 0xf6, 0x88, 0xd0, 0x55,
	0xfc, 0x62, 0xc5, 0xad, 0x74, 0x57, 0x90, 0x35, 0x7a, 0xf9, 0x1e, 0xbe, 0x2f, 0xab, 0x3f, 0x9a,
	0xe9, 0x17, 0xcb, 0xa4, 0x84, 0xf1, 0x61, 0x5d, 0xff, 0xbf, 0x8d, 0x08, 0x5c, 0x31, 0x47, 0xc8,
	0x14, 0x40, 0x70, 0x05, 0xd1, 0xfb, 0xee, 0x3d, 0x89, 0x1a, 0x1d, 0x02, 0x06, 0xc3, 0x63, 0xc2,
	0x20, 0x0f, 0xd8, 0x54, 0x4b, 0x37, 0x0b, 0x6d, 0x39, 0x42, 0x30, 0x4a, 0x10, 0xa5, 0x85, 0xe4,
	0xa0, 0x44, 0xc1, 0x7d, 0x95, 0x9e, 0x6a, 0xa9, 0x0a, 0xbb, 0x80, 0xe6, 0x6c, 0x07, 0x04, 0x26,
	0x1c, 0x0d, 0x24, 0x8f, 0xcd, 0xb0, 0x1f, 0xf8, 0x72, 0x64, 0x92, 0x11, 0x2a, 0x28, 0x48, 0x9f,
	0xae, 0x68, 0x45, 0x86, 0xe7, 0x4c, 0x9d, 0x36, 0xe2, 0x56, 0x09, 0x49, 0x79, 0x2c, 0x25, 0x7b,
	0x27, 0xb2, 0xc6, 0x43, 0xe5, 0xd7, 0x58, 0xe3, 0x6e, 0xc4, 0x78, 0xd5, 0x8c, 0xa2, 0x7f, 0x99,
	0x51, 0x59, 0x32, 0x8a, 0x52, 0xeb, 0x8e, 0xdb, 0xcc, 0x53, 0xd9, 0x16, 0xaa, 0x0e, 0xec, 0x12,
	0x6f, 0x7c, 0x33, 0xb5, 0x41, 0x81, 0xdd, 0xe0, 0x0c, 0xcf, 0x01, 0xbc, 0x03, 0x5f, 0x66, 0x4e,
	0xc7, 0x22, 0x3b, 0x69, 0x38, 0x87, 0x50, 0x19, 0x98, 0xbd, 0x94, 0x77, 0xea, 0xb4, 0xdc, 0xac,
	0x29, 0xba, 0xf5, 0xd3, 0x5b, 0xda, 0x15, 0xfd, 0xf3, 0xc0, 0x83, 0xdf, 0x82, 0x73, 0xfe, 0xf4,
	0xb6, 0xaf, 0x93, 0x18, 0x2e, 0x9b, 0x97, 0xde, 0xf7, 0xb3, 0xa3, 0x3e, 0xb8, 0xa6, 0x2b, 0x6b,
	0xb1, 0x46, 0xca, 0x5a, 0x96, 0xd6, 0xfa, 0x8b, 0x1b, 0xe1, 0x3c, 0x13, 0x2d, 0xa1, 0x67, 0x21,
	0x58, 0x34, 0xf7, 0xe5, 0x89, 0x43, 0x60, 0xcf, 0xc8, 0x81, 0xb3, 0xe2, 0x0b, 0xe3, 0x1e, 0xcd,
	0x37, 0x57, 0x55, 0x3f, 0xfa, 0x0d, 0xf6, 0x7f, 0xcb, 0x63, 0x61, 0x3a, 0xae, 0x6c, 0x9f, 0x45,
	0x56, 0x20, 0x26, 0xc9, 0xbd, 0xa8, 0xf8, 0x15, 0xa1, 0x17, 0x80, 0x0f, 0xdf, 0x3c, 0x5e, 0x59,
	0xf9, 0x4c, 0x75, 0xe6, 0x6e, 0x71, 0xd7, 0xad, 0xda, 0xdd, 0x53, 0xbc, 0x62, 0x27, 0x69, 0x5b,
	0xc2, 0x52, 0x7e, 0x4a, 0x0e, 0x06, 0x0a, 0xb9, 0xc0, 0x41, 0x9d, 0x07, 0x4e, 0x93, 0xc7, 0x87,
	0x98, 0x8e, 0xdb, 0x70, 0x46, 0x33, 0x31, 0xd8, 0x82, 0xbe, 0x6f, 0x67, 0xe0, 0x40, 0xc4, 0xab,
	0x48, 0xfc, 0x7b, 0xfb, 0x8f, 0x00, 0xa0, 0x6a, 0x64, 0xca, 0x18, 0x2a, 0xba, 0xd3, 0x85, 0x96,
	0xb8, 0xbf, 0x92, 0x99, 0x3e, 0xd6, 0xee, 0x9c, 0x2b, 0xa6, 0x78, 0x7d, 0xc5, 0x03, 0x5a, 0x11,
	0xd5, 0x77, 0x6b, 0x0c, 0x36, 0x42, 0x21, 0x22, 0x4b, 0x9e, 0xe4, 0x2f, 0xb2, 0xa7, 0x47, 0x14,
	0x90, 0x3b, 0x84, 0xeb, 0xa3, 0x1b, 0x4f, 0x1f, 0x10, 0x29, 0xe7, 0xf0, 0xc6, 0x2c, 0xb7, 0x7a,
	0xc1, 0xac, 0x5c, 0x54, 0x2d, 0x4d, 0x74, 0x66, 0xf2, 0xbb, 0x1c, 0x8b, 0x32, 0x72, 0x86, 0xfd,
	0x16, 0x01, 0x50, 0x95, 0xb1, 0xa5, 0x5f, 0x24, 0xff, 0xdc, 0x13, 0x76, 0x8a, 0xa4, 0x12, 0x30,
	0xef, 0xd4, 0xf3, 0x8c, 0x6d, 0x19, 0xea, 0xd2, 0xde, 0x05, 0x65, 0xd9, 0x79, 0x44, 0xcc, 0xc3,
	0x91, 0x23, 0x51, 0xaf, 0xb0, 0xce, 0xa2, 0x7c, 0x39, 0xaa, 0xe8, 0x88, 0x2e, 0x38, 0xf1, 0xb4,
	0x04, 0xed, 0xec, 0x94, 0xe9, 0x97, 0x28, 0xf4, 0xd1, 0x5d, 0x68, 0xa9, 0x8d, 0x73, 0x25, 0xb6,
	0x08, 0x49, 0x3d, 0xe1, 0x09, 0x1a, 0x1d, 0xd0, 0x83, 0xfe, 0x02, 0xf5, 0x9a, 0xb5, 0x35, 0x9b,
	0xf4, 0xa5, 0x5f, 0x9e, 0xde, 0xaf, 0x4a, 0x1e, 0xef, 0x44, 0xbe, 0x57, 0xdf, 0xe2, 0x49, 0x74,
	0x5e, 0xa1, 0xe6, 0x47, 0xc8, 0xd0, 0x4c, 0x42, 0x23, 0x99, 0x1b, 0x59, 0x0f, 0xd6, 0x63, 0x7f,
	0xe7, 0x36, 0x5c, 0x8e, 0x00, 0x50, 0x78, 0x58, 0xc7, 0x52, 0x66, 0x32, 0xb1, 0xa6, 0xe9, 0xd4,
	0xbd, 0xcf, 0xdb, 0x75, 0x01, 0x7e, 0x2e, 0x72, 0x25, 0xd7, 0x3f, 0x2c, 0x12, 0x38, 0xb9, 0x7d,
	0x5a, 0x6a, 0xfa, 0x17, 0x97, 0x83, 0x93, 0xbf, 0x5d, 0x19, 0xda, 0x94, 0x9f, 0x60, 0xa2, 0xfc,
	0xe0, 0x46, 0x54, 0xd1, 0x89, 0xee, 0xf9, 0x1d, 0x31, 0x98, 0x67, 0x4f, 0xcd, 0xc4, 0x13, 0x9d,
	0xe3, 0xfb, 0xa4, 0xd5, 0xcb, 0xec, 0xc6, 0xaa, 0x08, 0x92, 0xa7, 0x82, 0x4d, 0xb3, 0x0d, 0x33,
	0x40, 0x6b, 0x28, 0xc1, 0x69, 0x8c, 0xe1, 0xae, 0xc5, 0x34, 0xfe, 0x20, 0x2f, 0xe5, 0x26, 0x1c,
	0x39, 0x8a, 0xac, 0xca, 0x45, 0x0c, 0x24, 0x62, 0xbc, 0x84, 0x81, 0x4e, 0xc3, 0x88, 0x64, 0xdd,
	0x21, 0xd9, 0xd3, 0x0a, 0x7b, 0x29, 0xeb, 0xbb, 0x16, 0xb8, 0x11, 0x27, 0x43, 0x7a, 0xad, 0x76,
	0xba, 0x1a, 0xf3, 0x41, 0x9b, 0x8d, 0x65, 0x51, 0x1f, 0x96, 0xa8, 0xc2, 0x2a, 0x14, 0x90, 0xfd,
	0x35, 0x9a, 0x15, 0xdc, 0x3c, 0x09, 0x05, 0xf0, 0xc0, 0xe4, 0xb4, 0xa9, 0x53, 0xd2, 0x86, 0xed,
	0x37, 0x9c, 0xb7, 0x48, 0xe8, 0x8b, 0xc9, 0xa3, 0x6f, 0xf8, 0xa0, 0x68, 0x80, 0x55, 0x03, 0x2d,
	0x10, 0xf2, 0x22, 0x95, 0xf7, 0x04, 0x4b, 0x6c, 0x3d, 0x7c, 0xf5, 0x61, 0x3a, 0x0b, 0x30, 0xb2,
	0x56, 0x07, 0x06, 0x3e, 0xb5, 0x71, 0x70, 0x0e, 0xd8, 0x3b, 0x02, 0x2b, 0x79, 0x5b, 0xff, 0xb0,
	0xf6, 0x77, 0xf1, 0xea, 0x8f, 0x91, 0xb6, 0xcc, 0x85, 0x6d, 0x73, 0x87, 0x6e, 0x18, 0xab, 0xce,
	0xb8, 0xfa, 0x3a, 0x7f, 0x5a, 0x6f, 0xa2, 0x76, 0x96, 0xee, 0xf0, 0xb3, 0x33, 0x6b, 0xb9, 0xe9,
	0x94, 0x14, 0xd6, 0xad, 0x50, 0x98, 0xd3, 0xca, 0xc9, 0xc0, 0xdf, 0x1d, 0x8a, 0x41, 0xe3, 0x23,
	0x9a, 0x54, 0x38, 0xe2, 0x07, 0x7a, 0x73, 0xc5, 0x26, 0xaf, 0xef, 0x85, 0x1b, 0x3f, 0xa8, 0xb2,
	0x4d, 0xc7, 0x0d, 0x20, 0xe0, 0x32, 0xbc, 0xfc, 0x89, 0xab, 0xc2, 0x86, 0x56, 0x7b, 0x15, 0x4f,
	0x6d, 0x1c, 0x90, 0x25, 0xc8, 0xd1, 0x70, 0x61, 0x00, 0x60, 0xb1, 0xc1, 0x97, 0xda, 0x68, 0xb5,
	0xcf, 0x83, 0xe5, 0x80, 0x6e, 0xd9, 0x69, 0xf6, 0x37, 0x42, 0x36, 0x06, 0x79, 0x5e, 0x7e, 0x44,
	0x28, 0xb0, 0xc6, 0xa1, 0x9e, 0xe1, 0xbf, 0xbb, 0x6a, 0x2f, 0xae, 0xf4, 0x7c, 0x17, 0x09, 0x99,
	0x92, 0xe8, 0x03, 0x9d, 0xe6, 0x5d, 0xf8, 0x6c, 0x8f, 0x8e, 0x05, 0xbe, 0xeb, 0x2d, 0x5c, 0x77,
	0xcc, 0x18, 0x7d, 0x2c, 0x49, 0x4e, 0x16, 0x9c, 0x87, 0x9f, 0x82, 0x1f, 0xf1, 0x46, 0x29, 0x93,
	0x04, 0xd5, 0x34, 0x40, 0x52, 0x53, 0xcb, 0x27, 0xf5, 0xa5, 0xa0, 0xf9, 0x62, 0x5b, 0xa3, 0xc3,
	0x39, 0x0e, 0xa7, 0x31, 0x4a, 0x64, 0x19, 0xfb, 0xe7, 0x3b, 0x75, 0xf2, 0x95, 0xb6, 0xcd, 0xb7,
	0x43, 0xdd, 0xa4, 0xec, 0xdb, 0x0b, 0x3d, 0x21, 0x88, 0x01, 0xd2, 0xfe, 0x47, 0x3c, 0xff, 0x51,
	0x78, 0xea, 0x22, 0x35, 0x65, 0xed, 0x91, 0xac, 0xaa, 0x5f, 0x55, 0xf3, 0x66, 0xfd, 0x0f, 0xd7,
	0x4c, 0x11, 0x81, 0xe4, 0xc4, 0x30, 0x45, 0x10, 0x71, 0x67, 0x3e, 0xdc, 0x1e, 0x4b, 0xde, 0x59,
	0x13, 0x8b, 0x9b, 0xba, 0x57, 0xa6, 0x2a, 0x1a, 0x02, 0xa9, 0x08, 0x84, 0xb4, 0xd0, 0x74, 0x12,
	0x63, 0xf7, 0x0c, 0x0a, 0x2e, 0x8c, 0x8d, 0x48, 0x72, 0x2b, 0x58, 0xce, 0x24, 0xd8, 0xd4, 0xbd,
}
