package repository

import (
	"context"

	"github.com/varteks/matrixorder/internal/model/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateBatch 单语句批量写入一次提交的所有订单行，整体成功或整体失败
func (r *OrderRepository) CreateBatch(ctx context.Context, lines []entity.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&lines).Error
}

// List 返回订单行（可按经销商过滤），按创建时间倒序，预加载经销商与产品系列
func (r *OrderRepository) List(ctx context.Context, dealerID string) ([]entity.OrderLine, error) {
	query := r.db.WithContext(ctx).Model(&entity.OrderLine{})
	if dealerID != "" {
		query = query.Where("dealer_id = ?", dealerID)
	}
	var lines []entity.OrderLine
	err := query.Preload("Dealer").Preload("Base").
		Order("created_at DESC").
		Find(&lines).Error
	return lines, err
}

// ListByOrderID 返回同一次提交的所有订单行
func (r *OrderRepository) ListByOrderID(ctx context.Context, orderID string) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.db.WithContext(ctx).
		Preload("Dealer").Preload("Base").
		Where("order_id = ?", orderID).
		Find(&lines).Error
	return lines, err
}
