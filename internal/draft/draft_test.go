package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartsWithOneEmptyRow(t *testing.T) {
	d := New()
	require.Len(t, d.Rows, 1)
	assert.Nil(t, d.Rows[0].Product)
	assert.Empty(t, d.Rows[0].Quantities)
	assert.Nil(t, d.Dealer)
}

func TestAddAndRemoveRow(t *testing.T) {
	d := New()
	d.AddRow()
	d.AddRow()
	require.Len(t, d.Rows, 3)

	d.BindProduct(1, Option{ID: "p2", Name: "Second"})
	d.RemoveRow(0)
	require.Len(t, d.Rows, 2)
	// 行状态随行移动：产品绑定跟着记录走
	require.NotNil(t, d.Rows[0].Product)
	assert.Equal(t, "p2", d.Rows[0].Product.ID)
}

func TestRemoveRowOutOfRangeIsNoop(t *testing.T) {
	d := New()
	d.RemoveRow(-1)
	d.RemoveRow(5)
	assert.Len(t, d.Rows, 1)
}

func TestSetQuantityParsing(t *testing.T) {
	d := New()

	d.SetQuantity(0, "095", "3")
	assert.Equal(t, 3, d.Rows[0].Quantities["095"])

	// 覆盖旧值
	d.SetQuantity(0, "095", "7")
	assert.Equal(t, 7, d.Rows[0].Quantities["095"])

	// 非数字与负数归零
	d.SetQuantity(0, "100", "abc")
	assert.Equal(t, 0, d.Rows[0].Quantities["100"])
	d.SetQuantity(0, "105", "-4")
	assert.Equal(t, 0, d.Rows[0].Quantities["105"])

	// 带空白可解析
	d.SetQuantity(0, "110", " 2 ")
	assert.Equal(t, 2, d.Rows[0].Quantities["110"])

	// 越界no-op
	d.SetQuantity(9, "095", "1")
	assert.Len(t, d.Rows, 1)
}

func TestBindProductClearsQuery(t *testing.T) {
	d := New()
	d.SetQuery(0, "sock")
	d.BindProduct(0, Option{ID: "p1", Name: "Socks"})
	assert.Empty(t, d.Rows[0].Query)
	require.NotNil(t, d.Rows[0].Product)
}

func TestEditingQueryUnbindsProduct(t *testing.T) {
	d := New()
	d.BindProduct(0, Option{ID: "p1", Name: "Socks"})
	d.SetQuery(0, "soc")
	assert.Nil(t, d.Rows[0].Product)
}

func TestBoundProductIDs(t *testing.T) {
	d := New()
	d.AddRow()
	d.BindProduct(0, Option{ID: "p1"})
	d.BindProduct(1, Option{ID: "p2"})
	d.ClearProduct(1)

	bound := d.BoundProductIDs()
	assert.True(t, bound["p1"])
	assert.False(t, bound["p2"])
}

func TestCanSubmit(t *testing.T) {
	d := New()
	assert.False(t, d.CanSubmit(), "no dealer, no rows")

	d.BindDealer(Option{ID: "d1"})
	assert.False(t, d.CanSubmit(), "no product bound")

	d.BindProduct(0, Option{ID: "p1"})
	assert.False(t, d.CanSubmit(), "no positive quantity")

	d.SetQuantity(0, "095", "0")
	assert.False(t, d.CanSubmit(), "zero quantity does not count")

	d.SetQuantity(0, "095", "2")
	assert.True(t, d.CanSubmit())

	// 全为零的附加行容忍，不阻塞提交
	d.AddRow()
	d.BindProduct(1, Option{ID: "p2"})
	assert.True(t, d.CanSubmit())
}

func TestSubmissionProjection(t *testing.T) {
	d := New()
	d.BindDealer(Option{ID: "d1"})
	d.BindProduct(0, Option{ID: "p1"})
	d.SetQuantity(0, "095", "2")
	d.SetQuantity(0, "100", "0")

	// 未绑定产品的行被丢弃
	d.AddRow()
	d.SetQuantity(1, "095", "9")

	// 绑定了产品但全为零的行被丢弃
	d.AddRow()
	d.BindProduct(2, Option{ID: "p3"})
	d.SetQuantity(2, "105", "0")

	sub, err := d.Submission()
	require.NoError(t, err)
	assert.Equal(t, "d1", sub.DealerID)
	require.Len(t, sub.Items, 1)
	assert.Equal(t, "p1", sub.Items[0].BaseID)
	assert.Equal(t, map[string]int{"095": 2}, sub.Items[0].Quantities)
}

func TestSubmissionRejectsEmptyProjection(t *testing.T) {
	d := New()
	_, err := d.Submission()
	assert.ErrorIs(t, err, ErrNothingToSubmit)

	d.BindDealer(Option{ID: "d1"})
	d.BindProduct(0, Option{ID: "p1"})
	d.SetQuantity(0, "095", "0")
	_, err = d.Submission()
	assert.ErrorIs(t, err, ErrNothingToSubmit)
}

func TestReset(t *testing.T) {
	d := New()
	d.BindDealer(Option{ID: "d1"})
	d.BindProduct(0, Option{ID: "p1"})
	d.SetQuantity(0, "095", "2")
	d.AddRow()

	d.Reset()
	assert.Nil(t, d.Dealer)
	require.Len(t, d.Rows, 1)
	assert.Nil(t, d.Rows[0].Product)
	assert.Empty(t, d.Rows[0].Quantities)
}
