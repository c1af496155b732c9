package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestCodigosSQLState(t *testing.T) {
	wrap := func(code string) error {
		return fmt.Errorf("insert: %w", &pgconn.PgError{Code: code})
	}

	assert.True(t, isUniqueViolation(wrap("23505")))
	assert.True(t, isForeignKeyViolation(wrap("23503")))
	assert.True(t, isRejectedValue(wrap("23514")), "CHECK (quantity > 0) tras redondear")
	assert.True(t, isRejectedValue(wrap("22003")), "desborde de NUMERIC(18,4)")

	assert.False(t, isRejectedValue(wrap("23505")))
	assert.False(t, isRejectedValue(errors.New("conexión perdida")))
	assert.Equal(t, "", pgCode(nil))
}
