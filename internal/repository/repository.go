package repository

import "gorm.io/gorm"

// Repositories 仓库集合
type Repositories struct {
	Dealer  *DealerRepository
	Product *ProductRepository
	Order   *OrderRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Dealer:  NewDealerRepository(db),
		Product: NewProductRepository(db),
		Order:   NewOrderRepository(db),
	}
}
