package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rana718/arcadia/internal/database/common"
	"github.com/Rana718/arcadia/internal/dataset"
)

func TestMapColumnType(t *testing.T) {
	a := New()
	assert.Equal(t, "DOUBLE PRECISION", a.MapColumnType(dataset.KindFloat))
	assert.Equal(t, "TIMESTAMP", a.MapColumnType(dataset.KindDate))
	assert.Equal(t, "TEXT", a.MapColumnType(dataset.KindList))
	assert.Equal(t, "TEXT", a.MapColumnType(dataset.Kind("unknown")))
}

func TestSelectUsesDollarPlaceholders(t *testing.T) {
	a := New()
	sql, args, err := common.BuildSelect(a.qb, common.Query{
		Table: "contracts",
		Where: map[string]interface{}{"status": "Active"},
	}, quote)
	assert.NoError(t, err)
	assert.Equal(t, `SELECT * FROM "contracts" WHERE "status" = $1`, sql)
	assert.Equal(t, []interface{}{"Active"}, args)
}
