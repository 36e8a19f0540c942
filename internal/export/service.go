// Package export assembles the FEC file for a reporting period from
// the confirmed transactions and hands it to whichever surface (HTTP
// download, TUI file write) delivers it.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/fec"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/transaction"
)

// Export is one generated FEC document plus what the caller needs to
// present it.
type Export struct {
	Filename     string
	Content      []byte
	Entries      []fec.Entry
	Transactions int
}

// Service generates FEC exports from the transaction service.
type Service struct {
	transactions *transaction.Service
	company      fec.Company
}

func NewService(txService *transaction.Service, company fec.Company) *Service {
	return &Service{
		transactions: txService,
		company:      company,
	}
}

// Generate lists the confirmed transactions of the period, posts them
// and serializes the document. Drafts are excluded: only reviewed
// transactions belong in a regulatory export.
func (s *Service) Generate(ctx context.Context, period fec.Period) (*Export, error) {
	confirmed := transaction.StatusConfirmed
	filter := transaction.ListFilter{
		Status:    &confirmed,
		StartDate: &period.Start,
		EndDate:   &period.End,
	}

	txs, err := s.transactions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}

	entries, err := fec.BuildEntries(toFECTransactions(txs))
	if err != nil {
		return nil, fmt.Errorf("building entries: %w", err)
	}

	if errs := fec.Validate(entries); len(errs) > 0 {
		return nil, fmt.Errorf("validating entries: %w", errs[0])
	}

	return &Export{
		Filename:     fec.Filename(s.company.SIRET, period.End),
		Content:      []byte(fec.Serialize(entries)),
		Entries:      entries,
		Transactions: len(txs),
	}, nil
}

// WriteFile persists the export under dir, creating it if needed, and
// returns the written path.
func (s *Service) WriteFile(ex *Export, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, ex.Filename)
	if err := os.WriteFile(path, ex.Content, 0o644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}

	return path, nil
}

// Summary renders per-journal totals for display after an export.
func (s *Service) Summary(ex *Export) string {
	type journalTotals struct {
		label     string
		ecritures map[string]struct{}
		debit     int64
		credit    int64
	}

	totals := make(map[string]*journalTotals)

	var order []string

	for _, e := range ex.Entries {
		jt, seen := totals[e.JournalCode]
		if !seen {
			jt = &journalTotals{label: e.JournalLib, ecritures: make(map[string]struct{})}
			totals[e.JournalCode] = jt

			order = append(order, e.JournalCode)
		}

		jt.ecritures[e.EcritureNum] = struct{}{}
		jt.debit += e.Debit
		jt.credit += e.Credit
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s: %d transactions, %d lignes\n", ex.Filename, ex.Transactions, len(ex.Entries)))

	for _, code := range order {
		jt := totals[code]
		sb.WriteString(fmt.Sprintf("* %s (%s) | %d écritures | débit %s € | crédit %s €\n",
			code, jt.label, len(jt.ecritures), formatCents(jt.debit), formatCents(jt.credit)))
	}

	return sb.String()
}

func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func toFECTransactions(txs []*transaction.Transaction) []fec.Transaction {
	out := make([]fec.Transaction, len(txs))
	for i, tx := range txs {
		out[i] = fec.Transaction{
			ID:            tx.ID.String(),
			Date:          tx.Date,
			Type:          fec.TxType(tx.Type),
			Description:   tx.Description,
			AmountHT:      tx.AmountHT,
			VATRate:       tx.VATRate,
			VATAmount:     tx.VATAmount,
			PaymentMethod: fec.PaymentMethod(tx.PaymentMethod),
			Category:      fec.Category(tx.Category),
		}
	}

	return out
}
