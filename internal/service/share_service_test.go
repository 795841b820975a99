package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/varteks/matrixorder/internal/model/entity"
)

func TestBuildMessageFormat(t *testing.T) {
	message := BuildMessage("Abanoz Tekstil", "Bursa", []ShareItem{
		{ProductName: "Classic Sock", Quantities: entity.QuantityMap{"095": 2, "090": 3, "100": 0}},
		{ProductName: "Winter Wool", Quantities: entity.QuantityMap{"105": 0}},
	})

	lines := strings.Split(message, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Abanoz Tekstil (Bursa)", lines[0])
	assert.Equal(t, "Classic Sock: 090/3, 095/2", lines[1], "only positive sizes, sorted")
	assert.Equal(t, "Winter Wool: —", lines[2], "placeholder when no positive quantities")
	assert.Equal(t, "Total: 5", lines[3])
}

func TestEncodeTextPercentEncoding(t *testing.T) {
	encoded := EncodeText("Abanoz (Bursa)\nClassic: 090/3")

	assert.NotContains(t, encoded, " ")
	assert.NotContains(t, encoded, "+", "deep links need %20, not +")
	assert.Contains(t, encoded, "%20")
	assert.Contains(t, encoded, "%0A")
	assert.Contains(t, encoded, "%28", "parentheses are escaped")
}

type fakeOrderReader struct {
	lines []entity.OrderLine
}

func (f *fakeOrderReader) ListByOrderID(_ context.Context, orderID string) ([]entity.OrderLine, error) {
	var out []entity.OrderLine
	for _, line := range f.lines {
		if line.OrderID == orderID {
			out = append(out, line)
		}
	}
	return out, nil
}

func TestForOrderBuildsLinks(t *testing.T) {
	reader := &fakeOrderReader{lines: []entity.OrderLine{
		{
			ID: "L1", OrderID: "O1",
			Dealer:     &entity.Dealer{ID: "d1", Name: "Abanoz", City: "Bursa"},
			Base:       &entity.ProductBase{ID: "p1", BaseName: "Classic"},
			Quantities: entity.QuantityMap{"095": 2},
		},
	}}
	svc := NewShareService(reader, "https://chat.whatsapp.com/GROUP")

	msg, err := svc.ForOrder(context.Background(), "O1")
	require.NoError(t, err)

	assert.Contains(t, msg.Message, "Abanoz (Bursa)")
	assert.Contains(t, msg.Message, "Classic: 095/2")
	assert.True(t, strings.HasPrefix(msg.Link, "https://wa.me/?text="))
	assert.Equal(t, msg.Encoded, strings.TrimPrefix(msg.Link, "https://wa.me/?text="))
	assert.True(t, strings.HasPrefix(msg.GroupLink, "https://chat.whatsapp.com/GROUP?text="))
}

func TestForOrderUnknownOrder(t *testing.T) {
	svc := NewShareService(&fakeOrderReader{}, "")
	_, err := svc.ForOrder(context.Background(), "missing")
	assert.Error(t, err)
}

func TestForOrderWithoutGroupLink(t *testing.T) {
	reader := &fakeOrderReader{lines: []entity.OrderLine{
		{
			ID: "L1", OrderID: "O1",
			Dealer:     &entity.Dealer{Name: "Abanoz", City: "Bursa"},
			Base:       &entity.ProductBase{BaseName: "Classic"},
			Quantities: entity.QuantityMap{"095": 1},
		},
	}}
	svc := NewShareService(reader, "")

	msg, err := svc.ForOrder(context.Background(), "O1")
	require.NoError(t, err)
	assert.Empty(t, msg.GroupLink)
}
