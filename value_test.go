package kscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueTruthy(t *testing.T) {
	assert.True(t, Number(1).Truthy())
	assert.True(t, Number(-1).Truthy())
	assert.False(t, Number(0).Truthy())
	assert.True(t, String("x").Truthy())
	assert.False(t, String("").Truthy())
}

func TestValueStringFormatsNumbersWithSixDecimals(t *testing.T) {
	assert.Equal(t, "8.000000", Number(8).String())
	assert.Equal(t, "0.500000", Number(0.5).String())
	assert.Equal(t, "-1.000000", Number(-1).String())
}

func TestValueStringIsUnquotedForStrings(t *testing.T) {
	assert.Equal(t, "hello", String("hello").String())
}

func TestNumEqualUsesTolerance(t *testing.T) {
	assert.True(t, numEqual(1.0, 1.00001))
	assert.False(t, numEqual(1.0, 1.1))
}

func TestToInt32Truncates(t *testing.T) {
	assert.Equal(t, int32(3), toInt32(3.9))
	assert.Equal(t, int32(-3), toInt32(-3.9))
}
