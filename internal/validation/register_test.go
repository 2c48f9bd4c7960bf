package validation

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func raw(s string) json.RawMessage {
	if s == "" {
		return nil
	}
	return json.RawMessage(s)
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "valid", raw: `"alice@example.com"`, want: "alice@example.com"},
		{name: "uppercase is normalized", raw: `"Alice@Example.COM"`, want: "alice@example.com"},
		{name: "surrounding whitespace trimmed", raw: `" alice@example.com "`, want: "alice@example.com"},
		{name: "absent", raw: "", wantErr: ErrMissingEmail},
		{name: "null", raw: `null`, wantErr: ErrMissingEmail},
		{name: "not a string", raw: `42`, wantErr: ErrInvalidEmailFormat},
		{name: "empty string", raw: `""`, wantErr: ErrInvalidEmailFormat},
		{name: "no at sign", raw: `"alice.example.com"`, wantErr: ErrInvalidEmailFormat},
		{name: "display name form rejected", raw: `"alice <alice@example.com>"`, wantErr: ErrInvalidEmailFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Email(raw(tt.raw))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmailTooLong(t *testing.T) {
	long := `"` + strings.Repeat("a", 250) + `@example.com"`
	_, err := Email(raw(long))
	require.ErrorIs(t, err, ErrInvalidEmailFormat)
	assert.True(t, IsValidationError(err))
}

func TestName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "valid", raw: `"Alice"`, want: "Alice"},
		{name: "trimmed", raw: `"  Alice  "`, want: "Alice"},
		{name: "absent", raw: "", wantErr: ErrMissingName},
		{name: "null", raw: `null`, wantErr: ErrMissingName},
		{name: "blank", raw: `"   "`, wantErr: ErrMissingName},
		{name: "not a string", raw: `{"first":"Alice"}`, wantErr: ErrInvalidNameType},
		{name: "number", raw: `7`, wantErr: ErrInvalidNameType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Name(raw(tt.raw))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNameTooLong(t *testing.T) {
	_, err := Name(raw(`"` + strings.Repeat("x", 101) + `"`))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestPassword(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "valid", raw: `"hunter2hunter2"`, want: "hunter2hunter2"},
		{name: "absent", raw: "", wantErr: ErrInvalidPassword},
		{name: "null", raw: `null`, wantErr: ErrInvalidPassword},
		{name: "empty", raw: `""`, wantErr: ErrInvalidPassword},
		{name: "not a string", raw: `12345`, wantErr: ErrInvalidPasswordType},
		{name: "boolean", raw: `true`, wantErr: ErrInvalidPasswordType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Password(raw(tt.raw))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPasswordTooLongForBcrypt(t *testing.T) {
	_, err := Password(raw(`"` + strings.Repeat("p", 73) + `"`))
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestRoleFlag(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    bool
		wantErr error
	}{
		{name: "true", raw: `true`, want: true},
		{name: "false", raw: `false`, want: false},
		{name: "absent", raw: "", wantErr: ErrMissingRoleFlag},
		{name: "null", raw: `null`, wantErr: ErrMissingRoleFlag},
		{name: "string", raw: `"true"`, wantErr: ErrMissingRoleFlag},
		{name: "number", raw: `1`, wantErr: ErrMissingRoleFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RoleFlag(raw(tt.raw))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidationError(t *testing.T) {
	assert.True(t, IsValidationError(ErrMissingEmail))
	assert.True(t, IsValidationError(ErrMissingRoleFlag))
	assert.False(t, IsValidationError(errors.New("connection refused")))
	assert.False(t, IsValidationError(nil))
}
