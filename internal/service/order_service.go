package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/varteks/matrixorder/internal/model/entity"
)

// 提交校验错误，由handler映射为400响应
var (
	ErrDealerRequired = errors.New("dealer_id required")
	ErrNoItems        = errors.New("no items provided")
	ErrNoValidItems   = errors.New("no valid items")
)

// DefaultSalesperson 请求未携带业务员时的默认值
const DefaultSalesperson = "web_app_user"

type orderWriter interface {
	CreateBatch(ctx context.Context, lines []entity.OrderLine) error
}

// OrderService 订单提交服务
type OrderService struct {
	store       orderWriter
	salesperson string
}

// NewOrderService 创建订单服务。salesperson为空时使用DefaultSalesperson
func NewOrderService(store orderWriter, salesperson string) *OrderService {
	if salesperson == "" {
		salesperson = DefaultSalesperson
	}
	return &OrderService{store: store, salesperson: salesperson}
}

// SubmitOrderRequest 一次订单提交：一个经销商，多个(产品系列,尺码数量)项
type SubmitOrderRequest struct {
	DealerID    string            `json:"dealer_id"`
	Items       []SubmitOrderItem `json:"items"`
	Salesperson string            `json:"salesperson"`
	Notes       string            `json:"notes"`
}

type SubmitOrderItem struct {
	BaseID     string             `json:"base_id"`
	Quantities entity.QuantityMap `json:"quantities"`
}

// Submit 校验请求并批量持久化订单行
//
// 同一次提交的所有行共享一个新生成的订单ID和一个创建时间戳。
// 数量过滤在服务端强制执行：不能信任客户端已做过正数过滤。
// 无幂等保证：重复提交产生一个全新的独立订单。
func (s *OrderService) Submit(ctx context.Context, req SubmitOrderRequest) (string, error) {
	if req.DealerID == "" {
		return "", ErrDealerRequired
	}
	if len(req.Items) == 0 {
		return "", ErrNoItems
	}

	orderID := uuid.New().String()
	now := time.Now()

	salesperson := req.Salesperson
	if salesperson == "" {
		salesperson = s.salesperson
	}

	var lines []entity.OrderLine
	for _, item := range req.Items {
		if item.BaseID == "" {
			continue
		}
		quantities := item.Quantities.Positive()
		if len(quantities) == 0 {
			continue
		}
		lines = append(lines, entity.OrderLine{
			ID:          uuid.New().String(),
			OrderID:     orderID,
			DealerID:    req.DealerID,
			BaseID:      item.BaseID,
			Quantities:  quantities,
			Salesperson: salesperson,
			Notes:       req.Notes,
			CreatedAt:   now,
		})
	}

	if len(lines) == 0 {
		return "", ErrNoValidItems
	}

	if err := s.store.CreateBatch(ctx, lines); err != nil {
		return "", fmt.Errorf("insert order lines: %w", err)
	}
	return orderID, nil
}
