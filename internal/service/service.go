package service

import (
	"github.com/redis/go-redis/v9"
	"github.com/varteks/matrixorder/internal/config"
	"github.com/varteks/matrixorder/internal/repository"
)

// Services 服务集合
type Services struct {
	Catalog *CatalogService
	Order   *OrderService
	Summary *SummaryService
	Share   *ShareService
}

func NewServices(repos *repository.Repositories, rdb *redis.Client, cfg *config.Config) *Services {
	return &Services{
		Catalog: NewCatalogService(repos.Dealer, repos.Product, rdb),
		Order:   NewOrderService(repos.Order, cfg.Share.Salesperson),
		Summary: NewSummaryService(repos.Order, repos.Product),
		Share:   NewShareService(repos.Order, cfg.Share.GroupLink),
	}
}
