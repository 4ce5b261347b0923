package excel

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"github.com/yourusername/belle-tracker/internal/domain/entity"
	"github.com/yourusername/belle-tracker/internal/domain/repository"
)

const targetsSheet = "Targets"

var exportHeader = []any{"ID", "Product Code", "Name", "Colour", "Size", "Target Price", "Price", "Stock", "Reached", "Image URL"}

type targetSheet struct{}

// NewTargetSheet yangi Excel eksport/import yaratish
func NewTargetSheet() repository.TargetSheet {
	return &targetSheet{}
}

// Export targetlarni xlsx ga yozish
func (s *targetSheet) Export(ctx context.Context, targets []entity.Target) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), targetsSheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := f.SetSheetRow(targetsSheet, "A1", &exportHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, t := range targets {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{t.ID, t.ProductCode, t.Name, t.Colour, t.Size, t.TargetPrice, t.Price, t.Stock, t.Reached(), t.ImageUrl}
		if err := f.SetSheetRow(targetsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

// Import xlsx dan target so'rovlarini o'qish.
// Ustunlar: mahsulot (URL yoki kod), rang, o'lcham, narx.
func (s *targetSheet) Import(ctx context.Context, data []byte) ([]entity.TargetRequest, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open excel from bytes: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("excel file is empty")
	}

	columns, hasHeader := mapColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
	}

	var requests []entity.TargetRequest
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		req, err := parseRow(row, columns)
		if err != nil {
			log.Printf("Row %d skipped: %v", i+1, err)
			continue
		}
		requests = append(requests, req)
	}

	if len(requests) == 0 {
		return nil, fmt.Errorf("excel file has no valid rows")
	}
	return requests, nil
}

type columnMap struct {
	product, colour, size, price int
}

var defaultColumns = columnMap{product: 0, colour: 1, size: 2, price: 3}

// mapColumns sarlavha qatoridan ustun indekslarini aniqlash
func mapColumns(header []string) (columnMap, bool) {
	columns := columnMap{product: -1, colour: -1, size: -1, price: -1}
	found := 0

	for i, col := range header {
		name := strings.ToLower(strings.TrimSpace(col))
		switch {
		case columns.product < 0 && contains(name, "product", "code", "url", "link", "mahsulot"):
			columns.product = i
		case columns.colour < 0 && contains(name, "colour", "color", "rang"):
			columns.colour = i
		case columns.size < 0 && contains(name, "size", "o'lcham", "olcham"):
			columns.size = i
		case columns.price < 0 && contains(name, "price", "narx", "target"):
			columns.price = i
		default:
			continue
		}
		found++
	}

	if found == 0 {
		return defaultColumns, false
	}

	if columns.product < 0 {
		columns.product = defaultColumns.product
	}
	if columns.colour < 0 {
		columns.colour = defaultColumns.colour
	}
	if columns.size < 0 {
		columns.size = defaultColumns.size
	}
	if columns.price < 0 {
		columns.price = defaultColumns.price
	}
	return columns, true
}

func parseRow(row []string, columns columnMap) (entity.TargetRequest, error) {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	code := entity.ResolveProductCode(cell(columns.product))
	if code == "" {
		return entity.TargetRequest{}, fmt.Errorf("invalid product %q", cell(columns.product))
	}

	colour, size := cell(columns.colour), cell(columns.size)
	if colour == "" || size == "" {
		return entity.TargetRequest{}, fmt.Errorf("colour and size are required")
	}

	price, err := parsePrice(cell(columns.price))
	if err != nil {
		return entity.TargetRequest{}, err
	}

	return entity.TargetRequest{
		ProductCode: code,
		Colour:      colour,
		Size:        size,
		Price:       price,
	}, nil
}

func parsePrice(priceStr string) (uint, error) {
	priceStr = strings.ToLower(strings.TrimSpace(priceStr))
	if priceStr == "" {
		return 0, fmt.Errorf("empty price")
	}

	for _, r := range []string{",", " ", "¥", "￥", "円", "yen", "jpy"} {
		priceStr = strings.ReplaceAll(priceStr, r, "")
	}

	// Excel raqamlarni "1500.00" ko'rinishida berishi mumkin
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || math.IsNaN(price) || price < 1 {
		return 0, fmt.Errorf("invalid price format: %s", priceStr)
	}
	if price > math.MaxUint32 {
		return 0, fmt.Errorf("price out of range: %s", priceStr)
	}
	return uint(price), nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func contains(str string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(str, keyword) {
			return true
		}
	}
	return false
}
