// Package money normaliza códigos de moneda ISO 4217.
package money

import (
	"fmt"
	"strings"

	"golang.org/x/text/currency"
)

// NormalizeCurrency devuelve el código ISO 4217 en mayúsculas.
// Vacío devuelve def. Un código no reconocido es error.
func NormalizeCurrency(code, def string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return def, nil
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("moneda %q no reconocida: %w", code, err)
	}
	return unit.String(), nil
}
