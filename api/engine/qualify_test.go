/* qualify_test.go
 * Contains unit tests for qualify.go functions
 */

package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseQualifySpec_Integer tests plain integer specs
func TestParseQualifySpec_Integer(t *testing.T) {
	count, err := ParseQualifySpec("4", 10)
	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}

// TestParseQualifySpec_Fraction tests fractional specs: 2/3 of 9 is exactly 6
func TestParseQualifySpec_Fraction(t *testing.T) {
	count, err := ParseQualifySpec("2/3", 9)
	assert.NoError(t, err)
	assert.Equal(t, 6, count)

	count, err = ParseQualifySpec("2/3", 10)
	assert.NoError(t, err)
	assert.Equal(t, 6, count) // floor(6.66)

	count, err = ParseQualifySpec("1/2", 7)
	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

// TestParseQualifySpec_Decimal tests decimal specs with flooring
func TestParseQualifySpec_Decimal(t *testing.T) {
	count, err := ParseQualifySpec("0.5", 9)
	assert.NoError(t, err)
	assert.Equal(t, 4, count)

	count, err = ParseQualifySpec("0.75", 8)
	assert.NoError(t, err)
	assert.Equal(t, 6, count)
}

// TestParseQualifySpec_ClampedToTotal tests that oversized counts clamp
func TestParseQualifySpec_ClampedToTotal(t *testing.T) {
	count, err := ParseQualifySpec("20", 6)
	assert.NoError(t, err)
	assert.Equal(t, 6, count)

	count, err = ParseQualifySpec("3/2", 6)
	assert.NoError(t, err)
	assert.Equal(t, 6, count)
}

// TestParseQualifySpec_BelowOne tests rejection of counts under one team
func TestParseQualifySpec_BelowOne(t *testing.T) {
	for _, spec := range []string{"0", "-2", "0.05", "1/20"} {
		_, err := ParseQualifySpec(spec, 8)
		assert.Error(t, err, "spec %q", spec)
		assert.Contains(t, err.Error(), "at least one team")
	}
}

// TestParseQualifySpec_Invalid tests malformed specs
func TestParseQualifySpec_Invalid(t *testing.T) {
	for _, spec := range []string{"", "abc", "2/0", "x/y", "1.2.3"} {
		_, err := ParseQualifySpec(spec, 8)
		assert.Error(t, err, "spec %q", spec)
	}
}

// TestParseQualifySpec_Whitespace tests that surrounding whitespace is tolerated
func TestParseQualifySpec_Whitespace(t *testing.T) {
	count, err := ParseQualifySpec(" 2 / 3 ", 9)
	assert.NoError(t, err)
	assert.Equal(t, 6, count)
}

// TestAutoQualifyCount tests the automatic two-thirds rule
func TestAutoQualifyCount(t *testing.T) {
	assert.Equal(t, 6, AutoQualifyCount(9))
	assert.Equal(t, 6, AutoQualifyCount(10))
	assert.Equal(t, 2, AutoQualifyCount(4))
	assert.Equal(t, 1, AutoQualifyCount(2))
	assert.Equal(t, 1, AutoQualifyCount(1)) // never below one
}
