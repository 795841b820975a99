// Package draft 订单录入的客户端草稿状态：未提交前的经销商选择、
// 草稿行与尺码数量，以及提交前的投影与校验。纯状态，无I/O
package draft

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNothingToSubmit 投影后没有任何有效项，提交被客户端拦截
var ErrNothingToSubmit = errors.New("add at least one product with a size quantity")

// Option 搜索候选项（经销商或产品系列）
type Option struct {
	ID   string
	Name string
}

// Row 一个草稿行。搜索文本、候选列表、绑定产品与数量
// 作为一条记录随行移动，行的增删不会让各状态之间失步
type Row struct {
	Query      string
	Options    []Option
	Product    *Option
	Quantities map[string]int
}

// Draft 一份未提交的订单草稿
type Draft struct {
	Dealer *Option
	Rows   []Row
}

// New 创建草稿，初始含一个空行
func New() *Draft {
	return &Draft{Rows: []Row{newRow()}}
}

func newRow() Row {
	return Row{Quantities: make(map[string]int)}
}

// AddRow 追加一个空行，无上限
func (d *Draft) AddRow() {
	d.Rows = append(d.Rows, newRow())
}

// RemoveRow 删除指定行。越界是no-op而非错误
func (d *Draft) RemoveRow(i int) {
	if i < 0 || i >= len(d.Rows) {
		return
	}
	d.Rows = append(d.Rows[:i], d.Rows[i+1:]...)
}

// SetQuantity 解析raw为整数写入该行的尺码数量。
// 非数字或负数一律归零；同尺码覆盖旧值
func (d *Draft) SetQuantity(i int, sizeLabel, raw string) {
	if i < 0 || i >= len(d.Rows) {
		return
	}
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || qty < 0 {
		qty = 0
	}
	d.Rows[i].Quantities[sizeLabel] = qty
}

// BindDealer 绑定经销商
func (d *Draft) BindDealer(opt Option) {
	d.Dealer = &opt
}

// BindProduct 绑定该行的产品系列并清除未决的搜索文本
func (d *Draft) BindProduct(i int, opt Option) {
	if i < 0 || i >= len(d.Rows) {
		return
	}
	d.Rows[i].Product = &opt
	d.Rows[i].Query = ""
}

// SetQuery 更新该行的搜索文本。已绑定产品后再编辑文本会解除绑定，
// 强制重新选择后才允许提交
func (d *Draft) SetQuery(i int, query string) {
	if i < 0 || i >= len(d.Rows) {
		return
	}
	d.Rows[i].Query = query
	d.Rows[i].Product = nil
}

// ClearProduct 解除该行的产品绑定
func (d *Draft) ClearProduct(i int) {
	if i < 0 || i >= len(d.Rows) {
		return
	}
	d.Rows[i].Product = nil
}

// BoundProductIDs 当前已绑定的产品ID集合，用于禁用已选中的候选项
func (d *Draft) BoundProductIDs() map[string]bool {
	bound := make(map[string]bool)
	for _, row := range d.Rows {
		if row.Product != nil {
			bound[row.Product.ID] = true
		}
	}
	return bound
}

// CanSubmit 经销商已绑定，且至少一行同时有产品与正数量。
// 绑定了产品但数量全为零的行不阻塞提交，只是不会进入载荷
func (d *Draft) CanSubmit() bool {
	if d.Dealer == nil {
		return false
	}
	for _, row := range d.Rows {
		if row.Product == nil {
			continue
		}
		for _, qty := range row.Quantities {
			if qty > 0 {
				return true
			}
		}
	}
	return false
}

// Submission 提交载荷
type Submission struct {
	DealerID string
	Items    []Item
}

type Item struct {
	BaseID     string
	Quantities map[string]int
}

// Submission 将草稿投影为提交载荷：丢弃未绑定产品的行，
// 数量只保留正数条目，过滤后为空的行丢弃。
// 投影结果为空时返回错误，提交在任何网络调用前被拦截
func (d *Draft) Submission() (Submission, error) {
	if d.Dealer == nil {
		return Submission{}, ErrNothingToSubmit
	}
	sub := Submission{DealerID: d.Dealer.ID}
	for _, row := range d.Rows {
		if row.Product == nil {
			continue
		}
		quantities := make(map[string]int)
		for size, qty := range row.Quantities {
			if qty > 0 {
				quantities[size] = qty
			}
		}
		if len(quantities) == 0 {
			continue
		}
		sub.Items = append(sub.Items, Item{BaseID: row.Product.ID, Quantities: quantities})
	}
	if len(sub.Items) == 0 {
		return Submission{}, ErrNothingToSubmit
	}
	return sub, nil
}

// Reset 提交成功后丢弃草稿，回到初始状态
func (d *Draft) Reset() {
	d.Dealer = nil
	d.Rows = []Row{newRow()}
}
