package entity

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// QuantityMap 尺码→数量映射，存储为PostgreSQL JSONB
// 数量为0或缺失的尺码视为"未订购"
type QuantityMap map[string]int

func (q QuantityMap) Value() (driver.Value, error) {
	if q == nil {
		return nil, nil
	}
	return json.Marshal(q)
}

func (q *QuantityMap) Scan(value interface{}) error {
	if value == nil {
		*q = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, q)
}

// Positive 过滤出数量严格大于0的条目。过滤是幂等的
func (q QuantityMap) Positive() QuantityMap {
	out := make(QuantityMap, len(q))
	for size, qty := range q {
		if qty > 0 {
			out[size] = qty
		}
	}
	return out
}

// HasPositive 是否含有至少一个正数量条目
func (q QuantityMap) HasPositive() bool {
	for _, qty := range q {
		if qty > 0 {
			return true
		}
	}
	return false
}

// Total 正数量条目之和
func (q QuantityMap) Total() int {
	total := 0
	for _, qty := range q {
		if qty > 0 {
			total += qty
		}
	}
	return total
}

// OrderLine 订单行：一次提交中每个(订单,产品系列)持久化为一行
// 同一次提交的所有行共享 OrderID 与 CreatedAt
type OrderLine struct {
	ID          string      `json:"id" gorm:"primaryKey;type:uuid"`
	OrderID     string      `json:"order_id" gorm:"type:uuid;not null;index"`
	DealerID    string      `json:"dealer_id" gorm:"type:uuid;not null;index"`
	BaseID      string      `json:"base_id" gorm:"type:uuid;not null"`
	Quantities  QuantityMap `json:"quantities" gorm:"type:jsonb;not null"`
	Salesperson string      `json:"salesperson,omitempty" gorm:"size:64"`
	Notes       string      `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time   `json:"created_at" gorm:"index"`

	Dealer *Dealer      `json:"dealer,omitempty" gorm:"foreignKey:DealerID"`
	Base   *ProductBase `json:"base,omitempty" gorm:"foreignKey:BaseID"`
}

func (OrderLine) TableName() string {
	return "orders_matrix"
}
