// Package basicauth decodes HTTP Basic Authorization headers.
package basicauth

import (
	"encoding/base64"
	"strings"
)

// Parse extracts the identifier/secret pair from an Authorization header
// value. The scheme is matched case-insensitively; the token must be valid
// base64 and decode to "identifier:secret". The identifier cannot contain a
// colon, the secret may. Any deviation yields ok=false.
func Parse(header string) (identifier, secret string, ok bool) {
	const prefix = "basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return "", "", false
	}

	identifier, secret, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", false
	}

	return identifier, secret, true
}
