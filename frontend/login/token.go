package login

import (
	"crypto/rand"
	"encoding/hex"
)

const sessionTokenBytes = 24

// newSessionToken returns a random hex token used as both the session ID
// and the session cookie value.
func newSessionToken() string {
	buf := make([]byte, sessionTokenBytes)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
