// Package supplier parses supplier-invoice CSV exports into draft
// purchase transactions.
package supplier

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/lepetitpoucetlyon-sketch/restobooks/internal/encoding"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/importer/frcsv"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/transaction"
)

const (
	colDate      = "Date"
	colSupplier  = "Fournisseur"
	colLabel     = "Libellé"
	colAmountHT  = "Montant HT"
	colVATRate   = "Taux TVA"
	colVATAmount = "Montant TVA"
)

type Importer struct{}

func New() *Importer {
	return &Importer{}
}

func (i *Importer) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, nil
	}

	cols := make(map[string]int)
	for i, cell := range rows[0] {
		cols[strings.TrimSpace(cell)] = i
	}

	for _, name := range []string{colDate, colSupplier, colAmountHT, colVATAmount} {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing column %q in supplier export", name)
		}
	}

	var txs []transaction.CreateParams

	for rowIdx, row := range rows[1:] {
		rowNum := rowIdx + 2

		params, err := parseRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		txs = append(txs, params)
	}

	return txs, nil
}

func parseRow(cols map[string]int, row []string) (transaction.CreateParams, error) {
	date, err := frcsv.ParseDate(cell(row, cols, colDate))
	if err != nil {
		return transaction.CreateParams{}, err
	}

	name := cell(row, cols, colSupplier)
	if name == "" {
		return transaction.CreateParams{}, fmt.Errorf("missing supplier name")
	}

	amountHT, err := frcsv.ParseAmount(cell(row, cols, colAmountHT))
	if err != nil {
		return transaction.CreateParams{}, err
	}

	vatAmount, err := frcsv.ParseAmount(cell(row, cols, colVATAmount))
	if err != nil {
		return transaction.CreateParams{}, err
	}

	vatRate, err := frcsv.ParseRate(cell(row, cols, colVATRate))
	if err != nil {
		return transaction.CreateParams{}, err
	}

	description := name
	if label := cell(row, cols, colLabel); label != "" {
		description = name + " - " + label
	}

	return transaction.CreateParams{
		Type:           transaction.TypePurchase,
		Status:         transaction.StatusDraft,
		Description:    description,
		RawDescription: name,
		Date:           date,
		AmountHT:       amountHT,
		VATRate:        vatRate,
		VATAmount:      vatAmount,
	}, nil
}

func cell(row []string, cols map[string]int, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
