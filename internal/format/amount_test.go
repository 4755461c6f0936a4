package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func TestConverterFormat(t *testing.T) {
	c := NewConverter(language.AmericanEnglish)

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"one unit", "100000000000000", "1.000"},
		{"fraction", "32500000000000", "0.325"},
		{"zero", "0", "0.000"},
		{"below internal precision", "9999999999", "0.000"},
		{"rounds half away from zero", "50000000000", "0.001"},
		{"truncates before rounding", "99999999999999", "1.000"},
		{"grouping", "123450000000000000", "1,234.500"},
		{"surrounding space", " 100000000000000 ", "1.000"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Format(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestConverterFormatLocale(t *testing.T) {
	got, err := NewConverter(language.German).Format("123450000000000000")
	require.NoError(t, err)
	assert.Equal(t, "1.234,500", got)
}

func TestConverterWeiDecimals(t *testing.T) {
	c := NewConverterWithDecimals(language.AmericanEnglish, 18)
	got, err := c.Format("3250000000000000000")
	require.NoError(t, err)
	assert.Equal(t, "3.250", got)
}

func TestConverterRejectsInvalidAmounts(t *testing.T) {
	c := NewConverter(language.AmericanEnglish)
	for _, in := range []string{"", "  ", "-5", "+5", "1.5", "abc", "1e18", "0x10"} {
		_, err := c.Format(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)
	}
}

func TestParseBaseUnitsBeyondFloatPrecision(t *testing.T) {
	n, err := ParseBaseUnits("123456789012345678901234567890")
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678901234567890", n.String())
}

func TestConverterKeepsExactDigitsBeyondFloatPrecision(t *testing.T) {
	got, err := NewConverter(language.AmericanEnglish).Format("123456789012345678901234567890")
	require.NoError(t, err)
	assert.Equal(t, "1,234,567,890,123,456.789", got)
}

func TestNumberSymbolsRender(t *testing.T) {
	cases := []struct {
		name    string
		symbols numberSymbols
		fixed   string
		want    string
	}{
		{name: "below grouping", symbols: defaultSymbols, fixed: "0.325", want: "0.325"},
		{name: "three digits", symbols: defaultSymbols, fixed: "123.000", want: "123.000"},
		{name: "grouped", symbols: defaultSymbols, fixed: "1234567.000", want: "1,234,567.000"},
		{name: "min grouping five short", symbols: numberSymbols{group: ".", decimal: ",", minGrouping: 5}, fixed: "1234.500", want: "1234,500"},
		{name: "min grouping five long", symbols: numberSymbols{group: ".", decimal: ",", minGrouping: 5}, fixed: "12345.500", want: "12.345,500"},
		{name: "no group separator", symbols: numberSymbols{decimal: ",", minGrouping: 4}, fixed: "1234567.000", want: "1234567,000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.symbols.render(tc.fixed))
		})
	}
}

func TestSymbolsForLocales(t *testing.T) {
	assert.Equal(t, defaultSymbols, symbolsFor(message.NewPrinter(language.AmericanEnglish)))

	de := symbolsFor(message.NewPrinter(language.German))
	assert.Equal(t, ".", de.group)
	assert.Equal(t, ",", de.decimal)
}
