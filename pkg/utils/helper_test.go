package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-3", 1))
}

func TestParseFloat(t *testing.T) {
	result := ParseFloat("19.5")
	require.NotNil(t, result)
	assert.Equal(t, 19.5, *result)

	assert.Nil(t, ParseFloat(""))
	assert.Nil(t, ParseFloat("abc"))
}

func TestParseBool(t *testing.T) {
	result := ParseBool("true")
	require.NotNil(t, result)
	assert.True(t, *result)

	result = ParseBool("false")
	require.NotNil(t, result)
	assert.False(t, *result)

	assert.Nil(t, ParseBool(""))
}

func TestGenerateOrderID(t *testing.T) {
	id := GenerateOrderID()
	assert.True(t, strings.HasPrefix(id, "RENT-"))

	parts := strings.Split(id, "-")
	require.Len(t, parts, 4)
	assert.Len(t, parts[1], 8)
	assert.Len(t, parts[2], 6)
	assert.Len(t, parts[3], 4)
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 20))
	assert.Equal(t, 20, CalculateOffset(2, 20))
	assert.Equal(t, 0, CalculateOffset(0, 20))
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 5, CalculateTotalPages(100, 20))
	assert.Equal(t, 6, CalculateTotalPages(101, 20))
	assert.Equal(t, 0, CalculateTotalPages(0, 20))
	assert.Equal(t, 0, CalculateTotalPages(10, 0))
}

func TestValidateStructPhoneTag(t *testing.T) {
	type form struct {
		Phone string `validate:"required,phone"`
	}

	assert.Empty(t, ValidateStruct(form{Phone: "+1 (555) 123-4567"}))
	assert.NotEmpty(t, ValidateStruct(form{Phone: "call me maybe"}))
}
