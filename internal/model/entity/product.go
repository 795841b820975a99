package entity

import "time"

// ProductBase 产品系列（同一款式的多个尺码组成一个系列）
type ProductBase struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	BaseName  string    `json:"base_name" gorm:"size:128;not null;index"`
	Category  string    `json:"category" gorm:"size:64"`
	CreatedAt time.Time `json:"created_at"`

	Skus []Sku `json:"skus,omitempty" gorm:"foreignKey:BaseID"`
}

func (ProductBase) TableName() string {
	return "products_base"
}

// Sku 具体尺码变体。同一产品系列内尺码标签唯一
type Sku struct {
	ID        string   `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	BaseID    string   `json:"base_id" gorm:"type:uuid;not null;uniqueIndex:uniq_skus_base_size"`
	SizeLabel string   `json:"size_label" gorm:"size:32;not null;uniqueIndex:uniq_skus_base_size"`
	SizeCM    *float64 `json:"size_cm" gorm:"column:size_cm"`
	FullName  string   `json:"full_name" gorm:"size:160"`

	Base *ProductBase `json:"base,omitempty" gorm:"foreignKey:BaseID"`
}

func (Sku) TableName() string {
	return "skus"
}
