// internal/crypto/token.go
package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const (
	idBytes        = 8 // 16 hex chars
	secretKeyBytes = 4 // 8 hex chars
)

// GenerateID returns a 16-character lowercase hex id, unpredictable and
// collision-resistant in practice.
func GenerateID() string {
	bytes := make([]byte, idBytes)
	if _, err := rand.Read(bytes); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return hex.EncodeToString(bytes)
}

// GenerateSecretKey returns an 8-character uppercase hex token. It is
// stored with the surprise but not consumed by any verification path yet.
func GenerateSecretKey() string {
	bytes := make([]byte, secretKeyBytes)
	if _, err := rand.Read(bytes); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return strings.ToUpper(hex.EncodeToString(bytes))
}
