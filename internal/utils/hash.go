package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// HashString computes an HMAC-SHA256 signature over the given string using
// the provided hash key and returns the result as a hex-encoded string.
//
// Used for password hashing: the stored hash is HashString(password, key)
// and comparison happens via VerifyHash.
func HashString(data string, hashKey string) string {
	h := hmac.New(sha256.New, []byte(hashKey))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifyHash reports whether the given plaintext hashes to expected under the
// provided key, using a constant-time comparison.
func VerifyHash(data, hashKey, expected string) bool {
	return hmac.Equal([]byte(HashString(data, hashKey)), []byte(expected))
}
