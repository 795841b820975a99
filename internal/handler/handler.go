package handler

import (
	"github.com/varteks/matrixorder/internal/service"
)

// Handlers 处理器集合
type Handlers struct {
	Catalog *CatalogHandler
	Order   *OrderHandler
	Summary *SummaryHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Catalog: NewCatalogHandler(services.Catalog),
		Order:   NewOrderHandler(services.Order, services.Share),
		Summary: NewSummaryHandler(services.Summary),
	}
}
