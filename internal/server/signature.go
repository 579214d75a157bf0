package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignatureHeader is the header Meta signs webhook deliveries with.
const SignatureHeader = "X-Hub-Signature-256"

// VerifySignature checks the X-Hub-Signature-256 header against the raw
// request body. An empty secret disables verification entirely; that is the
// documented opt-out for setups without an app secret, not a failure mode.
// The comparison is constant-time.
func VerifySignature(secret string, body []byte, header string) bool {
	if secret == "" {
		return true
	}

	const prefix = "sha256="
	if !strings.HasPrefix(header, prefix) {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(header[len(prefix):]))
}
