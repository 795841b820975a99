package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/varteks/matrixorder/internal/model/entity"
	"github.com/xuri/excelize/v2"
)

type orderLister interface {
	List(ctx context.Context, dealerID string) ([]entity.OrderLine, error)
}

type skuLister interface {
	ListSkusByBase(ctx context.Context, baseID string) ([]entity.Sku, error)
}

// SummaryService 汇总报表：按尺码展开订单行并按产品聚合
type SummaryService struct {
	orders orderLister
	skus   skuLister
}

func NewSummaryService(orders orderLister, skus skuLister) *SummaryService {
	return &SummaryService{orders: orders, skus: skus}
}

// Orders 持久化订单行（含经销商与产品关联），按创建时间倒序
func (s *SummaryService) Orders(ctx context.Context, dealerID string) ([]entity.OrderLine, error) {
	return s.orders.List(ctx, dealerID)
}

// FlattenedRow 报表投影行，按需计算，不持久化
type FlattenedRow struct {
	ID         string    `json:"id"`
	DealerName string    `json:"dealer"`
	DealerCity string    `json:"city"`
	BaseName   string    `json:"base_name"`
	SizeLabel  string    `json:"size_label"`
	FullName   string    `json:"full_name"`
	Qty        int       `json:"qty"`
	CreatedAt  time.Time `json:"time"`
}

// Flatten 展开订单行并计算按产品名称的数量合计
//
// 每个(订单行,正数量尺码)产生一行，行ID为"{订单行ID}-{尺码标签}"。
// 数量为0或负数的条目绝不产生行。合计由已展开的行求和得出，
// 因此天然继承正数过滤与经销商过滤，且与输入顺序无关。
func (s *SummaryService) Flatten(ctx context.Context, dealerID string) ([]FlattenedRow, map[string]int, error) {
	lines, err := s.orders.List(ctx, dealerID)
	if err != nil {
		return nil, nil, fmt.Errorf("list order lines: %w", err)
	}

	// 每个产品系列的尺码表只解析一次
	skusByBase := make(map[string]map[string]entity.Sku)

	var rows []FlattenedRow
	for _, line := range lines {
		bySize, ok := skusByBase[line.BaseID]
		if !ok {
			bySize = make(map[string]entity.Sku)
			skus, err := s.skus.ListSkusByBase(ctx, line.BaseID)
			if err == nil {
				for _, sku := range skus {
					bySize[sku.SizeLabel] = sku
				}
			}
			skusByBase[line.BaseID] = bySize
		}

		var dealerName, dealerCity string
		if line.Dealer != nil {
			dealerName = line.Dealer.Name
			dealerCity = line.Dealer.City
		}
		var baseName string
		if line.Base != nil {
			baseName = line.Base.BaseName
		}

		for _, sizeLabel := range sortedSizes(line.Quantities) {
			qty := line.Quantities[sizeLabel]
			if qty <= 0 {
				continue
			}
			fullName := fmt.Sprintf("%s %s", baseName, sizeLabel)
			if sku, ok := bySize[sizeLabel]; ok && sku.FullName != "" {
				fullName = sku.FullName
			}
			rows = append(rows, FlattenedRow{
				ID:         fmt.Sprintf("%s-%s", line.ID, sizeLabel),
				DealerName: dealerName,
				DealerCity: dealerCity,
				BaseName:   baseName,
				SizeLabel:  sizeLabel,
				FullName:   fullName,
				Qty:        qty,
				CreatedAt:  line.CreatedAt,
			})
		}
	}

	totals := make(map[string]int)
	for _, row := range rows {
		totals[row.BaseName] += row.Qty
	}
	return rows, totals, nil
}

var summaryExportHeaders = []string{
	"Dealer", "City", "Product", "Size", "Tally name", "Qty", "Time",
}

// Export 导出汇总报表为xlsx
func (s *SummaryService) Export(ctx context.Context, dealerID string) (*excelize.File, string, error) {
	rows, totals, err := s.Flatten(ctx, dealerID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheet := "Orders"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range summaryExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	for rowIdx, r := range rows {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), r.DealerName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), r.DealerCity)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), r.BaseName)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), r.SizeLabel)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), r.FullName)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), r.Qty)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	// 底部按产品合计
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	row := len(rows) + 3
	cell := fmt.Sprintf("A%d", row)
	f.SetCellValue(sheet, cell, "Totals by product")
	f.SetCellStyle(sheet, cell, cell, totalStyle)
	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), name)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), totals[name])
	}

	colWidths := []float64{20, 14, 20, 10, 24, 8, 18}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	filename := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("20060102_150405"))
	return f, filename, nil
}

func sortedSizes(q entity.QuantityMap) []string {
	sizes := make([]string, 0, len(q))
	for size := range q {
		sizes = append(sizes, size)
	}
	sort.Strings(sizes)
	return sizes
}
