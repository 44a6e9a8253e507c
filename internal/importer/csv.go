// Package importer parses bulk phone uploads.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	domain "github.com/donaldgifford/phone-resale/pkg/types"
)

// ErrInvalidCSV is wrapped by every parse failure.
var ErrInvalidCSV = errors.New("invalid CSV")

// Column names recognised in the header row.
const (
	colModel     = "model"
	colBrand     = "brand"
	colBasePrice = "base_price"
	colStock     = "stock"
	colCondition = "condition"
	colSpecs     = "specs"
)

var requiredColumns = []string{colModel, colBrand, colBasePrice, colStock, colCondition}

// ParseCSV reads a header row followed by one phone per row. Header names are
// case-insensitive and may come in any order; specs is optional. The first
// bad row aborts the parse, so callers either get every phone or none.
func ParseCSV(r io.Reader) ([]domain.Phone, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", ErrInvalidCSV)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading header: %w", ErrInvalidCSV, err)
	}

	cols, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	var phones []domain.Phone
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCSV, err)
		}

		line, _ := cr.FieldPos(0)
		p, err := parseRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidCSV, line, err)
		}
		phones = append(phones, p)
	}

	return phones, nil
}

func indexHeader(header []string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := cols[key]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrInvalidCSV, key)
		}
		cols[key] = i
	}

	var missing []string
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing columns: %s", ErrInvalidCSV, strings.Join(missing, ", "))
	}

	return cols, nil
}

func parseRecord(record []string, cols map[string]int) (domain.Phone, error) {
	field := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	price, err := strconv.ParseFloat(field(colBasePrice), 64)
	if err != nil {
		return domain.Phone{}, fmt.Errorf("base_price %q is not a number", field(colBasePrice))
	}

	stock, err := strconv.Atoi(field(colStock))
	if err != nil {
		return domain.Phone{}, fmt.Errorf("stock %q is not an integer", field(colStock))
	}

	cond, err := domain.ParseCondition(field(colCondition))
	if err != nil {
		return domain.Phone{}, err
	}

	p := domain.Phone{
		Model:     field(colModel),
		Brand:     field(colBrand),
		BasePrice: price,
		Stock:     stock,
		Condition: cond,
		Specs:     field(colSpecs),
	}
	p.ApplyDefaults()

	if err := p.Validate(); err != nil {
		return domain.Phone{}, err
	}
	return p, nil
}
