package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatVND(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "0", want: "0"},
		{in: "950", want: "950"},
		{in: "1500000", want: "1.500.000"},
		{in: "1234567.6", want: "1.234.568"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatVND(decimal.RequireFromString(tt.in)))
		})
	}
}

func TestFormatViTimestamp(t *testing.T) {
	assert.Equal(t, "09:05:00 1/5/2024", FormatViTimestamp("2024-05-01T09:05:00"))
	assert.Equal(t, "14:30:15 21/12/2023", FormatViTimestamp("2023-12-21 14:30:15"))
	assert.Equal(t, "sem data", FormatViTimestamp("sem data"))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2024-05-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 5, 31, 0, 0, 0, 0, time.Local), *date)

	empty, err := ParseDate("")
	require.NoError(t, err)
	assert.True(t, empty.IsZero())

	_, err = ParseDate("31/05/2024")
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID(12)
	require.NoError(t, err)
	assert.Len(t, id, 12)
}
