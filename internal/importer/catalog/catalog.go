// Package catalog parses semicolon-separated catalog exports into
// accessory create params. Files typically come from Spanish-locale
// spreadsheets, so headers are Spanish and prices use "1.234,56"
// formatting.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Santiagox01/VeterinariaFinal/internal/accessory"
	enc "github.com/Santiagox01/VeterinariaFinal/internal/encoding"
)

const (
	colCode  = "Código"
	colName  = "Nombre"
	colType  = "Tipo"
	colPrice = "Precio"
	colStock = "Stock"
)

// Parser reads catalog CSV exports. The header row is located by
// landmark rather than assumed to be first, so files with banner rows
// above the table still parse.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]accessory.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	cols, headerIdx, ok := findHeader(rows)
	if !ok {
		return nil, fmt.Errorf("no catalog header found: expected columns %s, %s, %s, %s, %s",
			colCode, colName, colType, colPrice, colStock)
	}

	var params []accessory.CreateParams

	for _, row := range rows[headerIdx+1:] {
		code := cellValue(row, cols[colCode])
		name := cellValue(row, cols[colName])
		typ := cellValue(row, cols[colType])
		if code == "" || name == "" || typ == "" {
			continue
		}

		price, err := parsePrice(cellValue(row, cols[colPrice]))
		if err != nil || price < 0 {
			continue
		}

		stock, err := strconv.Atoi(cellValue(row, cols[colStock]))
		if err != nil || stock < 0 {
			continue
		}

		params = append(params, accessory.CreateParams{
			ID:    code,
			Name:  name,
			Type:  typ,
			Price: price,
			Stock: stock,
		})
	}

	return params, nil
}

// colIndex maps column names to their index in the header row.
type colIndex map[string]int

// findHeader scans rows for one containing all expected columns.
func findHeader(rows [][]string) (colIndex, int, bool) {
	required := []string{colCode, colName, colType, colPrice, colStock}

	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		matched := true
		for _, name := range required {
			if _, ok := cols[name]; !ok {
				matched = false
				break
			}
		}

		if matched {
			return cols, rowIdx, true
		}
	}

	return nil, 0, false
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// parsePrice parses a Spanish-formatted price into cents.
// Format examples: "1.234,56" -> 123456, "15.000" -> 1500000.
func parsePrice(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}

	clean := strings.ReplaceAll(s, ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
