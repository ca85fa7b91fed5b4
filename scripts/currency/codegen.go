package main

import (
	"bufio"
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"github.com/ledgerkit/money"
	"github.com/ledgerkit/money/currencyfile"
)

func main() {
	// Open the input file and read its contents
	currs, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %w", err))
	}

	// Keep the sentinel first, the rest by code
	sortCurrencies(currs)

	// Generate Go code from the records using a template
	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %w", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %w", err))
	}
}

func readCsvFile(filename string) ([]money.CurrencyRecord, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()
	return currencyfile.LoadCSV(in)
}

func sortCurrencies(currs []money.CurrencyRecord) {
	none := money.None.Code()
	slices.SortFunc(currs, func(a, b money.CurrencyRecord) int {
		switch {
		case a.Code == b.Code:
			return 0
		case a.Code == none:
			return -1
		case b.Code == none:
			return 1
		}
		return strings.Compare(a.Code, b.Code)
	})
}

func generateGoCode(filename string, currs []money.CurrencyRecord) ([]byte, error) {
	// Create a new template object from the template file
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
