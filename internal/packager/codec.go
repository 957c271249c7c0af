// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package packager

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash/fnv"
	"strconv"
	"time"
)

// KeyLabel is mixed into every export key.
const KeyLabel = "page-guard-export-v1"

// DeriveKey returns hex(SHA-256(ownerID ":" unixMillis ":" KeyLabel)). The
// ASCII bytes of the hex string are the XOR key.
func DeriveKey(ownerID int64, at time.Time) string {
	seed := strconv.FormatInt(ownerID, 10) + ":" + strconv.FormatInt(at.UnixMilli(), 10) + ":" + KeyLabel
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:])
}

// Checksum is the 32-bit FNV-1a hash of b.
func Checksum(b []byte) uint32 {
	h := fnv.New32a()
	_, _ = h.Write(b)
	return h.Sum32()
}

// Encode XORs plain against the repeating key bytes and base64-encodes the
// result with standard padding.
func Encode(plain []byte, key string) string {
	return base64.StdEncoding.EncodeToString(xorKey(plain, key))
}

// Decode reverses Encode and verifies the plaintext checksum.
func Decode(data, key string, sum uint32) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptPayload, err)
	}
	plain := xorKey(raw, key)
	if Checksum(plain) != sum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrCorruptPayload)
	}
	return plain, nil
}

func xorKey(in []byte, key string) []byte {
	out := make([]byte, len(in))
	if key == "" {
		copy(out, in)
		return out
	}
	for i, b := range in {
		out[i] = b ^ key[i%len(key)]
	}
	return out
}
