package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinPrefixForBoundaries(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		value    int64
		expected BinPrefix
	}{
		{name: "negative", value: -1, expected: BinBase},
		{name: "zero", value: 0, expected: BinBase},
		{name: "below_kibi", value: 1023, expected: BinBase},
		{name: "exact_kibi", value: 1024, expected: Kibi},
		{name: "below_mebi", value: 1<<20 - 1, expected: Kibi},
		{name: "exact_mebi", value: 1 << 20, expected: Mebi},
		{name: "exact_gibi", value: 1 << 30, expected: Gibi},
		{name: "exact_tebi", value: 1 << 40, expected: Tebi},
		{name: "beyond_tebi", value: 1 << 50, expected: Tebi},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, BinPrefixFor(testCase.value))
		})
	}
}

func TestSiPrefixForBoundaries(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		value    int64
		expected SiPrefix
	}{
		{name: "negative", value: -5, expected: SiBase},
		{name: "zero", value: 0, expected: SiBase},
		{name: "below_kilo", value: 999, expected: SiBase},
		{name: "exact_kilo", value: 1000, expected: Kilo},
		{name: "exact_mega", value: 1_000_000, expected: Mega},
		{name: "below_giga", value: 999_999_999, expected: Mega},
		{name: "exact_giga", value: 1_000_000_000, expected: Giga},
		{name: "exact_tera", value: 1_000_000_000_000, expected: Tera},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, SiPrefixFor(testCase.value))
		})
	}
}

func TestPrefixLabelsAndBaseValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "KiB", Kibi.Label())
	assert.Equal(t, "TiB", Tebi.Label())
	assert.Equal(t, "MB", Mega.Label())
	assert.Equal(t, uint64(1<<30), Gibi.BaseValue())
	assert.Equal(t, uint64(1_000_000_000_000), Tera.BaseValue())
	assert.Equal(t, uint64(1), SiBase.BaseValue())
}

func TestParsePrefixKind(t *testing.T) {
	t.Parallel()

	kind, parseError := ParsePrefixKind("SI")
	require.NoError(t, parseError)
	assert.Equal(t, PrefixKindSI, kind)

	kind, parseError = ParsePrefixKind("")
	require.NoError(t, parseError)
	assert.Equal(t, PrefixKindBinary, kind)

	_, parseError = ParsePrefixKind("octal")
	require.Error(t, parseError)
}
