package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitsValidate(t *testing.T) {
	require.NoError(t, DefaultLimits().Validate())
	require.NoError(t, Limits{Capacity: 1, MaxName: 1, MaxPages: MaxFieldValue, MaxPrice: MaxFieldValue}.Validate())

	bad := []Limits{
		{Capacity: 0, MaxName: 1, MaxPages: 1, MaxPrice: 0},
		{Capacity: 1, MaxName: 0, MaxPages: 1, MaxPrice: 0},
		{Capacity: 1, MaxName: 1, MaxPages: 0, MaxPrice: 0},
		{Capacity: 1, MaxName: 1, MaxPages: 1, MaxPrice: -1},
		{Capacity: 1, MaxName: 1, MaxPages: MaxFieldValue + 1, MaxPrice: 0},
		{Capacity: 1, MaxName: 1, MaxPages: 1, MaxPrice: MaxFieldValue + 1},
		{Capacity: MaxFieldValue + 2, MaxName: 1, MaxPages: 1, MaxPrice: 0},
	}
	for _, l := range bad {
		assert.Error(t, l.Validate(), "%+v", l)
	}
}

func TestCheckBook(t *testing.T) {
	l := DefaultLimits()
	require.NoError(t, l.CheckBook(Book{Name: "Ok", Pages: 1, Price: 0}))
	require.NoError(t, l.CheckBook(Book{Name: strings.Repeat("x", 49), Pages: 1500, Price: 100000}))

	invalid := []Book{
		{Name: "", Pages: 1, Price: 1},
		{Name: strings.Repeat("x", 50), Pages: 1, Price: 1},
		{Name: "p", Pages: 0, Price: 1},
		{Name: "p", Pages: 1501, Price: 1},
		{Name: "p", Pages: 1, Price: -1},
		{Name: "p", Pages: 1, Price: 100001},
	}
	for _, b := range invalid {
		assert.ErrorIs(t, l.CheckBook(b), ErrInvalidBook, "%+v", b)
	}
}

func TestNormalizeName(t *testing.T) {
	// "e" followed by a combining acute accent composes to a single rune.
	assert.Equal(t, "caf\u00e9", NormalizeName("cafe\u0301", 10))
	assert.Equal(t, "abc", NormalizeName("  abcdef ", 3))
	assert.Equal(t, "unbounded", NormalizeName("unbounded", 0))
}

func TestTruncateNameKeepsSpacingAndForm(t *testing.T) {
	assert.Equal(t, " Dune ", TruncateName(" Dune ", 10))
	assert.Equal(t, "cafe\u0301", TruncateName("cafe\u0301", 10))
	assert.Equal(t, " Du", TruncateName(" Dune ", 3))
}
