package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCurrency(t *testing.T) {
	cases := map[string]string{
		"try":   "TRY",
		" usd ": "USD",
		"EUR":   "EUR",
		"":      "TRY",
	}
	for in, want := range cases {
		got, err := NormalizeCurrency(in, "TRY")
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestNormalizeCurrency_Invalida(t *testing.T) {
	for _, in := range []string{"XXXX", "lira", "Z9"} {
		_, err := NormalizeCurrency(in, "TRY")
		assert.Error(t, err, in)
	}
}
