package importer

import (
	"io"

	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/transaction"
)

// Source identifies which upstream system produced the CSV file.
type Source string

const (
	// SourcePOS is the till software's end-of-day ticket export.
	SourcePOS Source = "pos"
	// SourceSupplier is the supplier-invoice export of the purchasing tool.
	SourceSupplier Source = "supplier"
)

type Importer interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}
