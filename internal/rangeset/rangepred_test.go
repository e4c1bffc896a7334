package rangeset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRangePred_AcceptsAndRejects(t *testing.T) {
	p, err := ParseRangePred("-3,6,9-11,18,24-")
	assert.NoError(t, err)

	accepted := []int{1, 2, 3, 6, 9, 10, 11, 18, 24, 25, 100}
	for _, v := range accepted {
		assert.Truef(t, p.Contains(v), "expected %d to be accepted", v)
	}

	rejected := []int{4, 5, 7, 8, 12, 13, 14, 15, 16, 17, 19, 20, 21, 22, 23}
	for _, v := range rejected {
		assert.Falsef(t, p.Contains(v), "expected %d to be rejected", v)
	}
}

func TestParseRangePred_SingleValue(t *testing.T) {
	p, err := ParseRangePred("5")
	assert.NoError(t, err)
	assert.True(t, p.Contains(5))
	assert.False(t, p.Contains(4))
	assert.False(t, p.Contains(6))
}

func TestParseRangePred_OpenLower(t *testing.T) {
	p, err := ParseRangePred("-10")
	assert.NoError(t, err)
	assert.True(t, p.Contains(1))
	assert.True(t, p.Contains(10))
	assert.False(t, p.Contains(11))
}

func TestParseRangePred_OpenUpper(t *testing.T) {
	p, err := ParseRangePred("10-")
	assert.NoError(t, err)
	assert.True(t, p.Contains(10))
	assert.True(t, p.Contains(1000000))
	assert.False(t, p.Contains(9))
}

func TestParseRangePred_ClosedRange(t *testing.T) {
	p, err := ParseRangePred("9-11")
	assert.NoError(t, err)
	assert.False(t, p.Contains(8))
	assert.True(t, p.Contains(9))
	assert.True(t, p.Contains(10))
	assert.True(t, p.Contains(11))
	assert.False(t, p.Contains(12))
}

func TestParseRangePred_Empty(t *testing.T) {
	p, err := ParseRangePred("")
	assert.NoError(t, err)
	assert.False(t, p.Contains(1))
}

func TestParseRangePred_InvalidItem(t *testing.T) {
	_, err := ParseRangePred("5-2")
	assert.Error(t, err)

	_, err = ParseRangePred("abc")
	assert.Error(t, err)

	_, err = ParseRangePred("0")
	assert.Error(t, err)
}
