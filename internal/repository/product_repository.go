package repository

import (
	"context"

	"github.com/varteks/matrixorder/internal/model/entity"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// ListBases 按名称排序返回全部产品系列
func (r *ProductRepository) ListBases(ctx context.Context) ([]entity.ProductBase, error) {
	var bases []entity.ProductBase
	err := r.db.WithContext(ctx).Order("base_name ASC").Find(&bases).Error
	return bases, err
}

func (r *ProductRepository) FindBaseByID(ctx context.Context, id string) (*entity.ProductBase, error) {
	var base entity.ProductBase
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&base).Error
	return &base, err
}

// SearchBases 名称大小写不敏感子串匹配，最多返回 SearchLimit 条
func (r *ProductRepository) SearchBases(ctx context.Context, keyword string) ([]entity.ProductBase, error) {
	var bases []entity.ProductBase
	kw := "%" + keyword + "%"
	err := r.db.WithContext(ctx).
		Where("base_name ILIKE ?", kw).
		Limit(SearchLimit).
		Find(&bases).Error
	return bases, err
}

// ListSkusByBase 返回某产品系列的尺码列表，按数值尺码（空值排后）、尺码标签排序
func (r *ProductRepository) ListSkusByBase(ctx context.Context, baseID string) ([]entity.Sku, error) {
	var skus []entity.Sku
	err := r.db.WithContext(ctx).
		Where("base_id = ?", baseID).
		Order("size_cm ASC NULLS LAST").
		Order("size_label ASC").
		Find(&skus).Error
	return skus, err
}
