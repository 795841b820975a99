package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/varteks/matrixorder/internal/model/entity"
)

type orderReader interface {
	ListByOrderID(ctx context.Context, orderID string) ([]entity.OrderLine, error)
}

// ShareService 生成可分享的订单摘要文本与消息深链
type ShareService struct {
	orders    orderReader
	groupLink string
}

func NewShareService(orders orderReader, groupLink string) *ShareService {
	return &ShareService{orders: orders, groupLink: groupLink}
}

// ShareItem 摘要中的一个产品项
type ShareItem struct {
	ProductName string
	Quantities  entity.QuantityMap
}

// ShareMessage 摘要文本及其编码形式与外部深链
type ShareMessage struct {
	Message   string `json:"message"`
	Encoded   string `json:"encoded"`
	Link      string `json:"link"`
	GroupLink string `json:"group_link,omitempty"`
}

// BuildMessage 纯文本摘要：首行经销商，每个产品一行"名称: 尺码/数量, ..."
// 只包含正数量尺码；没有正数量的产品以"—"占位。末行为总数
func BuildMessage(dealerName, dealerCity string, items []ShareItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", dealerName, dealerCity)

	total := 0
	for _, item := range items {
		positive := item.Quantities.Positive()
		if len(positive) == 0 {
			fmt.Fprintf(&b, "%s: —\n", item.ProductName)
			continue
		}
		parts := make([]string, 0, len(positive))
		for _, size := range sortedSizes(positive) {
			parts = append(parts, fmt.Sprintf("%s/%d", size, positive[size]))
			total += positive[size]
		}
		fmt.Fprintf(&b, "%s: %s\n", item.ProductName, strings.Join(parts, ", "))
	}

	fmt.Fprintf(&b, "Total: %d", total)
	return b.String()
}

// EncodeText 按RFC 3986百分号编码，供消息深链嵌入
// url.QueryEscape将空格编码为'+'，深链里需要%20
func EncodeText(message string) string {
	return strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
}

// ForOrder 为一次已持久化的提交生成摘要消息与深链
func (s *ShareService) ForOrder(ctx context.Context, orderID string) (*ShareMessage, error) {
	lines, err := s.orders.ListByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("order %s not found", orderID)
	}

	var dealerName, dealerCity string
	if lines[0].Dealer != nil {
		dealerName = lines[0].Dealer.Name
		dealerCity = lines[0].Dealer.City
	}

	items := make([]ShareItem, 0, len(lines))
	for _, line := range lines {
		name := line.BaseID
		if line.Base != nil {
			name = line.Base.BaseName
		}
		items = append(items, ShareItem{ProductName: name, Quantities: line.Quantities})
	}

	message := BuildMessage(dealerName, dealerCity, items)
	encoded := EncodeText(message)

	out := &ShareMessage{
		Message: message,
		Encoded: encoded,
		Link:    "https://wa.me/?text=" + encoded,
	}
	if s.groupLink != "" {
		out.GroupLink = s.groupLink + "?text=" + encoded
	}
	return out, nil
}
