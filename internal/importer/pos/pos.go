// Package pos parses the till software's end-of-day CSV export into
// draft sale transactions.
package pos

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/lepetitpoucetlyon-sketch/restobooks/internal/encoding"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/importer/frcsv"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/transaction"
)

// Expected columns. The export prepends shop name and period banner
// rows, so the header is searched for rather than assumed on line 1.
const (
	colDate      = "Date"
	colTicket    = "Ticket"
	colLabel     = "Désignation"
	colCategory  = "Catégorie"
	colPayment   = "Règlement"
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

	cols, headerIdx := findHeader(rows)
	if cols == nil {
		return nil, fmt.Errorf("no ticket header found: expected columns %q, %q and %q", colDate, colLabel, colAmountHT)
	}

	var txs []transaction.CreateParams

	for rowIdx, row := range rows[headerIdx+1:] {
		rowNum := headerIdx + rowIdx + 2 // 1-based file line

		params, ok, err := parseRow(cols, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		if !ok {
			continue
		}

		txs = append(txs, params)
	}

	return txs, nil
}

type colIndex map[string]int

// findHeader scans for the row carrying the expected column names.
func findHeader(rows [][]string) (colIndex, int) {
	required := []string{colDate, colLabel, colAmountHT, colVATRate, colVATAmount}

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
			return cols, rowIdx
		}
	}

	return nil, 0
}

// parseRow converts one data row. Rows without a parseable date are
// trailing summary lines and are skipped rather than rejected.
func parseRow(cols colIndex, row []string) (transaction.CreateParams, bool, error) {
	date, err := frcsv.ParseDate(cell(row, cols, colDate))
	if err != nil {
		return transaction.CreateParams{}, false, nil
	}

	label := cell(row, cols, colLabel)
	if label == "" {
		return transaction.CreateParams{}, false, fmt.Errorf("missing designation")
	}

	amountHT, err := frcsv.ParseAmount(cell(row, cols, colAmountHT))
	if err != nil {
		return transaction.CreateParams{}, false, err
	}

	vatRate, err := frcsv.ParseRate(cell(row, cols, colVATRate))
	if err != nil {
		return transaction.CreateParams{}, false, err
	}

	vatAmount, err := frcsv.ParseAmount(cell(row, cols, colVATAmount))
	if err != nil {
		return transaction.CreateParams{}, false, err
	}

	description := label
	if ticket := cell(row, cols, colTicket); ticket != "" {
		description = fmt.Sprintf("%s (ticket %s)", label, ticket)
	}

	return transaction.CreateParams{
		Type:           transaction.TypeSale,
		Status:         transaction.StatusDraft,
		Description:    description,
		RawDescription: label,
		Date:           date,
		AmountHT:       amountHT,
		VATRate:        vatRate,
		VATAmount:      vatAmount,
		PaymentMethod:  paymentMethod(cell(row, cols, colPayment)),
		Category:       category(cell(row, cols, colCategory)),
	}, true, nil
}

func cell(row []string, cols colIndex, name string) string {
	idx, ok := cols[name]
	if !ok || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// paymentMethod maps the till's settlement labels. Anything
// unrecognized is treated as a bank settlement, mirroring the posting
// fallback.
func paymentMethod(s string) transaction.PaymentMethod {
	switch strings.ToUpper(s) {
	case "ESP", "ESPECES", "ESPÈCES":
		return transaction.PaymentCash
	case "CB", "CARTE":
		return transaction.PaymentCard
	default:
		return transaction.PaymentBank
	}
}

// category maps the till's section labels onto revenue categories.
// Unknown sections stay uncategorized so the review screen (helped by
// learned mappings) can fill them in.
func category(s string) transaction.Category {
	switch strings.ToUpper(s) {
	case "BAR", "BOISSONS":
		return transaction.CategoryDrinks
	case "VAE", "EMPORTER", "À EMPORTER", "A EMPORTER":
		return transaction.CategoryTakeaway
	case "CUISINE", "SUR PLACE":
		return transaction.CategoryFood
	default:
		return ""
	}
}
