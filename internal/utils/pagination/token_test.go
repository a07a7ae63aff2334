package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	date := time.Date(2023, 5, 15, 14, 30, 45, 123456789, time.UTC)

	token := EncodeToken(date, 42)
	assert.NotEmpty(t, token)

	decodedDate, decodedID, err := DecodeToken(token)
	require.NoError(t, err)
	assert.True(t, date.Equal(decodedDate))
	assert.Equal(t, 42, decodedID)

	zeroToken := EncodeToken(time.Time{}, 0)
	decodedZero, zeroID, err := DecodeToken(zeroToken)
	require.NoError(t, err)
	assert.True(t, decodedZero.IsZero())
	assert.Equal(t, 0, zeroID)
}

func TestDecodeToken_Invalid(t *testing.T) {
	cases := map[string]string{
		"not base64":   "%%%",
		"no separator": base64.StdEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z")),
		"bad date":     base64.StdEncoding.EncodeToString([]byte("yesterday|4")),
		"bad id":       base64.StdEncoding.EncodeToString([]byte("2023-05-15T00:00:00Z|four")),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := DecodeToken(token)
			assert.Error(t, err)
		})
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, ClampLimit(0))
	assert.Equal(t, DefaultLimit, ClampLimit(-3))
	assert.Equal(t, 10, ClampLimit(10))
	assert.Equal(t, MaxLimit, ClampLimit(MaxLimit+1))
}
