package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate_UsesDollarPlaceholders(t *testing.T) {
	query, args, err := Update("turnos").
		Set("slots_available", squirrel.Expr("slots_available - 1")).
		Where(squirrel.Eq{"id": 7}).
		Where(squirrel.Gt{"slots_available": 0}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE turnos SET slots_available = slots_available - 1 WHERE id = $1 AND slots_available > $2", query)
	assert.Equal(t, []interface{}{7, 0}, args)
}
