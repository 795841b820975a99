package repository

import (
	"context"

	"github.com/varteks/matrixorder/internal/model/entity"
	"gorm.io/gorm"
)

// SearchLimit 模糊搜索结果上限
const SearchLimit = 20

type DealerRepository struct {
	db *gorm.DB
}

func NewDealerRepository(db *gorm.DB) *DealerRepository {
	return &DealerRepository{db: db}
}

// List 按名称排序返回全部经销商
func (r *DealerRepository) List(ctx context.Context) ([]entity.Dealer, error) {
	var dealers []entity.Dealer
	err := r.db.WithContext(ctx).Order("name ASC").Find(&dealers).Error
	return dealers, err
}

func (r *DealerRepository) FindByID(ctx context.Context, id string) (*entity.Dealer, error) {
	var dealer entity.Dealer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dealer).Error
	return &dealer, err
}

// SearchByName 名称大小写不敏感子串匹配，最多返回 SearchLimit 条
func (r *DealerRepository) SearchByName(ctx context.Context, keyword string) ([]entity.Dealer, error) {
	var dealers []entity.Dealer
	kw := "%" + keyword + "%"
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", kw).
		Limit(SearchLimit).
		Find(&dealers).Error
	return dealers, err
}
