package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/varteks/matrixorder/internal/model/entity"
)

const (
	// MinSearchLen 触发后端搜索的最小查询长度（去除首尾空白后）
	MinSearchLen = 3

	catalogCacheTTL = 5 * time.Minute
)

type dealerDirectory interface {
	List(ctx context.Context) ([]entity.Dealer, error)
	SearchByName(ctx context.Context, keyword string) ([]entity.Dealer, error)
}

type productCatalog interface {
	ListBases(ctx context.Context) ([]entity.ProductBase, error)
	SearchBases(ctx context.Context, keyword string) ([]entity.ProductBase, error)
	ListSkusByBase(ctx context.Context, baseID string) ([]entity.Sku, error)
}

// CatalogService 目录读取服务，带Redis读缓存
type CatalogService struct {
	dealers  dealerDirectory
	products productCatalog
	rdb      *redis.Client
}

// NewCatalogService 创建目录服务。rdb为nil时禁用缓存
func NewCatalogService(dealers dealerDirectory, products productCatalog, rdb *redis.Client) *CatalogService {
	return &CatalogService{dealers: dealers, products: products, rdb: rdb}
}

// Dealers 按名称排序的经销商列表
func (s *CatalogService) Dealers(ctx context.Context) ([]entity.Dealer, error) {
	var cached []entity.Dealer
	if s.fromCache(ctx, "catalog:dealers", &cached) {
		return cached, nil
	}
	dealers, err := s.dealers.List(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, "catalog:dealers", dealers)
	return dealers, nil
}

// ProductBases 按名称排序的产品系列列表
func (s *CatalogService) ProductBases(ctx context.Context) ([]entity.ProductBase, error) {
	var cached []entity.ProductBase
	if s.fromCache(ctx, "catalog:products", &cached) {
		return cached, nil
	}
	bases, err := s.products.ListBases(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, "catalog:products", bases)
	return bases, nil
}

// SkusByBase 某产品系列的尺码列表，按尺码排序
func (s *CatalogService) SkusByBase(ctx context.Context, baseID string) ([]entity.Sku, error) {
	key := "catalog:skus:" + baseID
	var cached []entity.Sku
	if s.fromCache(ctx, key, &cached) {
		return cached, nil
	}
	skus, err := s.products.ListSkusByBase(ctx, baseID)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, key, skus)
	return skus, nil
}

// SearchDealers 经销商名称子串搜索。过短的查询不触发后端调用
func (s *CatalogService) SearchDealers(ctx context.Context, query string) ([]entity.Dealer, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinSearchLen {
		return []entity.Dealer{}, nil
	}
	return s.dealers.SearchByName(ctx, query)
}

// SearchProducts 产品系列名称子串搜索。过短的查询不触发后端调用
func (s *CatalogService) SearchProducts(ctx context.Context, query string) ([]entity.ProductBase, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinSearchLen {
		return []entity.ProductBase{}, nil
	}
	return s.products.SearchBases(ctx, query)
}

// fromCache 读缓存。缓存故障静默降级为未命中
func (s *CatalogService) fromCache(ctx context.Context, key string, dest interface{}) bool {
	if s.rdb == nil {
		return false
	}
	payload, err := s.rdb.Get(ctx, key).Result()
	if err != nil || payload == "" {
		return false
	}
	return json.Unmarshal([]byte(payload), dest) == nil
}

func (s *CatalogService) toCache(ctx context.Context, key string, value interface{}) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.rdb.Set(ctx, key, payload, catalogCacheTTL)
}
