// Package fec generates the Fichier des Écritures Comptables, the
// ledger export French companies must be able to hand to the tax
// administration. Business transactions are expanded into balanced
// double-entry rows against a fixed Plan Comptable Général chart, then
// serialized as the mandated 18-column tab-separated text file.
package fec

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// columns are the 18 FEC column names, in the mandated order.
var columns = []string{
	"JournalCode", "JournalLib", "EcritureNum", "EcritureDate",
	"CompteNum", "CompteLib", "CompAuxNum", "CompAuxLib",
	"PieceRef", "PieceDate", "EcritureLib", "Debit", "Credit",
	"EcritureLet", "DateLet", "ValidDate", "Montantdevise", "Idevise",
}

// Period is the reporting period of the export. Only End is consumed
// today (by Filename); Start is reserved for a future summary header.
type Period struct {
	Start time.Time
	End   time.Time
}

// Company identifies the reporting company. Name is reserved; only the
// SIRET is consumed (by Filename).
type Company struct {
	Name  string
	SIRET string
}

// Generate builds the full FEC document for the given transactions.
// The first line is always the column header, even for an empty input.
// Rows keep the input transaction order; no sorting or reordering is
// applied. Generation is pure: the same input yields byte-identical
// output.
func Generate(txs []Transaction, period Period, company Company) (string, error) {
	entries, err := BuildEntries(txs)
	if err != nil {
		return "", err
	}

	return Serialize(entries), nil
}

// Serialize renders already-built rows as the final document text. It
// trusts the builder's ordering and balance and performs no checks of
// its own; Validate exists for callers who want them.
func Serialize(entries []Entry) string {
	var sb strings.Builder

	sb.WriteString(strings.Join(columns, "\t"))

	for _, e := range entries {
		sb.WriteByte('\n')
		sb.WriteString(strings.Join(e.fields(), "\t"))
	}

	return sb.String()
}

// fields renders the entry as its 18 columns, in header order.
func (e Entry) fields() []string {
	return []string{
		e.JournalCode,
		e.JournalLib,
		e.EcritureNum,
		formatDate(e.EcritureDate),
		e.CompteNum,
		e.CompteLib,
		e.CompAuxNum,
		e.CompAuxLib,
		e.PieceRef,
		formatDate(e.PieceDate),
		e.EcritureLib,
		formatAmount(e.Debit),
		formatAmount(e.Credit),
		e.EcritureLet,
		e.DateLet,
		formatDate(e.ValidDate),
		e.MontantDevise,
		e.Idevise,
	}
}

// formatAmount renders cents as a fixed two-decimal string, or empty
// when the side is not populated. A row never renders both sides.
func formatAmount(cents int64) string {
	if cents <= 0 {
		return ""
	}

	return decimal.New(cents, -2).StringFixed(2)
}

// formatDate renders the date's own calendar fields as YYYYMMDD. No
// UTC conversion: French fiscal filings are calendar-date based, so
// the date is taken exactly as it was constructed.
func formatDate(t time.Time) string {
	return t.Format("20060102")
}
