package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"zapstore/internal/domain"

	"github.com/shopspring/decimal"
)

type ProductWriter interface {
	SaveProduct(ctx context.Context, p domain.Product) domain.Product
}

type CategoryWriter interface {
	SaveCategory(ctx context.Context, c domain.Category) domain.Category
}

// Kind tells which catalog collection a CSV file holds.
type Kind string

const (
	KindProducts   Kind = "products"
	KindCategories Kind = "categories"
)

// DetectKind inspects the header row: product files carry a price column.
func DetectKind(r io.Reader) (Kind, error) {
	headers, err := csv.NewReader(r).Read()
	if err != nil {
		return "", fmt.Errorf("read headers: %w", err)
	}
	idx := headerIndex(headers)
	if _, ok := idx["price"]; ok {
		return KindProducts, nil
	}
	if _, ok := idx["name"]; ok {
		return KindCategories, nil
	}
	return "", errors.New("unrecognized CSV header")
}

// CSVImporter reads catalog CSV files and saves each row through the store.
type CSVImporter struct {
	reader     *csv.Reader
	products   ProductWriter
	categories CategoryWriter
}

func NewCSVImporter(r io.Reader, products ProductWriter, categories CategoryWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:     csvr,
		products:   products,
		categories: categories,
	}
}

// Run imports every row and returns how many were saved. Rows before a bad
// one stay saved; the error names the offending line.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	_, isProducts := index["price"]
	if isProducts && i.products == nil || !isProducts && i.categories == nil {
		return 0, errors.New("no writer for this CSV kind")
	}

	imported := 0
	for line := 2; ; line++ {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}
		if blank(record) {
			continue
		}

		if isProducts {
			p, err := parseProduct(record, index)
			if err != nil {
				return imported, fmt.Errorf("row %d: %w", line, err)
			}
			i.products.SaveProduct(ctx, p)
		} else {
			c, err := parseCategory(record, index)
			if err != nil {
				return imported, fmt.Errorf("row %d: %w", line, err)
			}
			i.categories.SaveCategory(ctx, c)
		}
		imported++
	}
	return imported, nil
}

func parseProduct(record []string, index map[string]int) (domain.Product, error) {
	p := domain.Product{
		ID:          pick(record, index, "id"),
		Name:        pick(record, index, "name"),
		Description: pick(record, index, "description"),
		Image:       pick(record, index, "image"),
		CategoryID:  pick(record, index, "categoryId"),
		Active:      true,
	}
	if p.Name == "" {
		return p, errors.New("name is required")
	}

	price, err := decimal.NewFromString(strings.ReplaceAll(pick(record, index, "price"), ",", "."))
	if err != nil {
		return p, fmt.Errorf("invalid price: %w", err)
	}
	if price.IsNegative() {
		return p, fmt.Errorf("negative price %s", price)
	}
	p.Price = price

	if v := pick(record, index, "active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return p, fmt.Errorf("invalid active %q", v)
		}
		p.Active = active
	}
	if p.Order, err = intField(record, index, "order"); err != nil {
		return p, err
	}
	if p.Stock, err = intField(record, index, "stock"); err != nil {
		return p, err
	}
	if p.Stock < 0 {
		return p, fmt.Errorf("negative stock %d", p.Stock)
	}
	return p, nil
}

func parseCategory(record []string, index map[string]int) (domain.Category, error) {
	c := domain.Category{
		ID:   pick(record, index, "id"),
		Name: pick(record, index, "name"),
	}
	if c.Name == "" {
		return c, errors.New("name is required")
	}
	var err error
	c.Order, err = intField(record, index, "order")
	return c, err
}

func intField(record []string, index map[string]int, key string) (int, error) {
	v := pick(record, index, key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, v)
	}
	return n, nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	return idx
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}

func blank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
