// Package currencyfile loads currency definitions from YAML and CSV files.
//
// A YAML file lists the definitions under a top-level currencies key:
//
//	currencies:
//	  - code: USD
//	    num: 840
//	    name: US Dollar
//	    symbol: $
//	    minor_units: 2
//
// A CSV file starts with a header naming the columns name, code, num, scale
// and symbol in any order.
package currencyfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ledgerkit/money"
)

// ErrUnsupported is returned for files whose extension is neither YAML nor CSV.
var ErrUnsupported = errors.New("unsupported currency file format")

type yamlFile struct {
	Currencies []yamlCurrency `yaml:"currencies"`
}

// yamlCurrency keeps the numeric keys as pointers so that a missing key
// is not mistaken for 0.
type yamlCurrency struct {
	Code       string `yaml:"code"`
	Num        *int   `yaml:"num"`
	Name       string `yaml:"name"`
	Symbol     string `yaml:"symbol"`
	MinorUnits *int   `yaml:"minor_units"`
}

// LoadYAML reads currency definitions in YAML form.
// Unknown keys are rejected; num and minor_units are required.
// Malformed definitions are reported as [money.ErrValidation].
func LoadYAML(r io.Reader) ([]money.CurrencyRecord, error) {
	var f yamlFile
	if err := yaml.NewDecoder(r, yaml.DisallowUnknownField()).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: decoding yaml: %w", money.ErrValidation, err)
	}
	recs := make([]money.CurrencyRecord, 0, len(f.Currencies))
	for i, c := range f.Currencies {
		switch {
		case c.Num == nil:
			return nil, fmt.Errorf("%w: currency %d (%q): missing num", money.ErrValidation, i, c.Code)
		case c.MinorUnits == nil:
			return nil, fmt.Errorf("%w: currency %d (%q): missing minor_units", money.ErrValidation, i, c.Code)
		}
		recs = append(recs, money.CurrencyRecord{
			Code:       c.Code,
			Num:        *c.Num,
			Name:       c.Name,
			Symbol:     c.Symbol,
			MinorUnits: *c.MinorUnits,
		})
	}
	return recs, nil
}

var csvColumns = []string{"name", "code", "num", "scale", "symbol"}

// LoadCSV reads currency definitions in CSV form.
// Malformed definitions are reported as [money.ErrValidation].
func LoadCSV(r io.Reader) ([]money.CurrencyRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range csvColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: reading csv header: missing column %q", money.ErrValidation, col)
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			return nil, fmt.Errorf("%w: reading csv: %w", money.ErrValidation, err)
		}
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	recs := make([]money.CurrencyRecord, 0, len(rows))
	for i, row := range rows {
		num, err := strconv.Atoi(row[index["num"]])
		if err != nil {
			return nil, fmt.Errorf("%w: csv line %d: parsing num: %w", money.ErrValidation, i+2, err)
		}
		scale, err := strconv.Atoi(row[index["scale"]])
		if err != nil {
			return nil, fmt.Errorf("%w: csv line %d: parsing scale: %w", money.ErrValidation, i+2, err)
		}
		recs = append(recs, money.CurrencyRecord{
			Code:       row[index["code"]],
			Num:        num,
			Name:       row[index["name"]],
			Symbol:     row[index["symbol"]],
			MinorUnits: scale,
		})
	}
	return recs, nil
}

// File returns a source reading the file at path when the registry is built.
// The format is chosen by extension: .yaml, .yml or .csv.
func File(path string) money.Source {
	return money.SourceFunc(func() ([]money.CurrencyRecord, error) {
		return readFile(path)
	})
}

func readFile(path string) ([]money.CurrencyRecord, error) {
	var load func(io.Reader) ([]money.CurrencyRecord, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		load = LoadYAML
	case ".csv":
		load = LoadCSV
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	recs, err := load(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return recs, nil
}
