package entity

import "time"

// Dealer 经销商（下单客户），只读基础数据
type Dealer struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"size:128;not null;index"`
	City      string    `json:"city" gorm:"size:64"`
	Phone     string    `json:"phone,omitempty" gorm:"size:32"`
	CreatedAt time.Time `json:"created_at"`
}

func (Dealer) TableName() string {
	return "dealers"
}
