package basicauth

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

func encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func TestParse(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		wantIdentifier string
		wantSecret     string
		wantOK         bool
	}{
		{
			name:           "valid",
			header:         "Basic " + encode("alice@example.com:hunter2"),
			wantIdentifier: "alice@example.com",
			wantSecret:     "hunter2",
			wantOK:         true,
		},
		{
			name:           "scheme is case-insensitive",
			header:         "bAsIc " + encode("alice@example.com:hunter2"),
			wantIdentifier: "alice@example.com",
			wantSecret:     "hunter2",
			wantOK:         true,
		},
		{
			name:           "secret may contain colons",
			header:         "Basic " + encode("alice@example.com:pa:ss:word"),
			wantIdentifier: "alice@example.com",
			wantSecret:     "pa:ss:word",
			wantOK:         true,
		},
		{
			name:           "empty secret",
			header:         "Basic " + encode("alice@example.com:"),
			wantIdentifier: "alice@example.com",
			wantSecret:     "",
			wantOK:         true,
		},
		{name: "missing header", header: "", wantOK: false},
		{name: "scheme only", header: "Basic", wantOK: false},
		{name: "wrong scheme", header: "Bearer " + encode("alice:hunter2"), wantOK: false},
		{name: "not base64", header: "Basic not-base-64!!", wantOK: false},
		{name: "no colon in token", header: "Basic " + encode("alice@example.com"), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identifier, secret, ok := Parse(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantIdentifier, identifier)
				assert.Equal(t, tt.wantSecret, secret)
			}
		})
	}
}
