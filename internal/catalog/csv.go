package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	enc "github.com/MrJamesThe3rd/kasir/internal/encoding"
	"github.com/MrJamesThe3rd/kasir/internal/money"
)

// header describes one accepted column naming for a price list export.
type header struct {
	Name     string
	NameCol  string
	PriceCol string
	UnitCol  string
	CatCol   string
}

func (h header) requiredCols() []string {
	return []string{h.NameCol, h.PriceCol, h.UnitCol, h.CatCol}
}

// headers is tried in order against every row until one matches.
var headers = []header{
	{Name: "id", NameCol: "nama", PriceCol: "harga", UnitCol: "satuan", CatCol: "kategori"},
	{Name: "en", NameCol: "name", PriceCol: "price", UnitCol: "unit", CatCol: "category"},
}

type colIndex map[string]int

// ParseCSV reads a semicolon separated price list. Rows above the header are
// skipped, as are rows with no name. Any other malformed row fails the whole
// file so a half-loaded price list never reaches a register.
func ParseCSV(r io.Reader) ([]Product, error) {
	utf8r, _, err := enc.NewUTF8Reader(r)
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

	h, cols, headerIdx := detectHeader(rows)
	if h == nil {
		return nil, fmt.Errorf("no price list header found: expected nama;harga;satuan;kategori or name;price;unit;category")
	}

	return parseRows(h, cols, rows[headerIdx+1:], headerIdx+1)
}

// LoadFile parses the price list at path and puts every product into c.
func (c *Catalog) LoadFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open price list: %w", err)
	}
	defer f.Close()

	products, err := ParseCSV(f)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", path, err)
	}

	for _, p := range products {
		if err := c.Put(p); err != nil {
			return 0, fmt.Errorf("put %s: %w", p.Name, err)
		}
	}

	return len(products), nil
}

func detectHeader(rows [][]string) (*header, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range headers {
			if matchesHeader(&headers[i], cols) {
				return &headers[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesHeader(h *header, cols colIndex) bool {
	for _, name := range h.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

func parseRows(h *header, cols colIndex, rows [][]string, headerRowNum int) ([]Product, error) {
	var products []Product

	for i, row := range rows {
		rowNum := headerRowNum + i + 1

		name := cellValue(row, cols[h.NameCol])
		if name == "" {
			continue
		}

		price, err := money.ParseRupiah(cellValue(row, cols[h.PriceCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: price: %w", rowNum, err)
		}

		category, err := ParseCategory(cellValue(row, cols[h.CatCol]))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		p, err := NewProduct(name, price, cellValue(row, cols[h.UnitCol]), category)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		products = append(products, p)
	}

	return products, nil
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
