package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantityMapPositive(t *testing.T) {
	q := QuantityMap{"090": 3, "095": 0, "100": -2, "105": 1}

	got := q.Positive()
	assert.Equal(t, QuantityMap{"090": 3, "105": 1}, got)

	// 原映射不被修改
	assert.Equal(t, 4, len(q))
}

func TestQuantityMapPositiveIdempotent(t *testing.T) {
	q := QuantityMap{"090": 3, "095": 0, "100": 7}

	once := q.Positive()
	twice := once.Positive()
	assert.Equal(t, once, twice)
}

func TestQuantityMapPositiveEmpty(t *testing.T) {
	assert.Empty(t, QuantityMap{}.Positive())
	assert.Empty(t, QuantityMap{"095": 0}.Positive())
}

func TestQuantityMapHasPositive(t *testing.T) {
	assert.False(t, QuantityMap{}.HasPositive())
	assert.False(t, QuantityMap{"095": 0, "100": -1}.HasPositive())
	assert.True(t, QuantityMap{"095": 0, "100": 2}.HasPositive())
}

func TestQuantityMapTotal(t *testing.T) {
	q := QuantityMap{"090": 3, "095": 5, "100": 0, "105": -4}
	assert.Equal(t, 8, q.Total())
}

func TestQuantityMapValueScan(t *testing.T) {
	q := QuantityMap{"095": 2, "100": 1}

	value, err := q.Value()
	require.NoError(t, err)

	var decoded QuantityMap
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, q, decoded)
}

func TestQuantityMapScanNil(t *testing.T) {
	var q QuantityMap
	require.NoError(t, q.Scan(nil))
	assert.Nil(t, q)
}
