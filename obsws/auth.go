package obsws

import (
	"crypto/sha256"
	"encoding/base64"
)

// authResponse computes the Identify authentication string for the v5
// challenge/salt scheme:
//
//	base64(sha256(base64(sha256(password + salt)) + challenge))
func authResponse(password, salt, challenge string) string {
	secretHash := sha256.Sum256([]byte(password + salt))
	secret := base64.StdEncoding.EncodeToString(secretHash[:])

	responseHash := sha256.Sum256([]byte(secret + challenge))
	return base64.StdEncoding.EncodeToString(responseHash[:])
}
