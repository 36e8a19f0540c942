package importer

import (
	"fmt"
	"io"

	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/importer/pos"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/importer/supplier"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/transaction"
)

type Service struct {
	posImporter      Importer
	supplierImporter Importer
}

func NewService() *Service {
	return &Service{
		posImporter:      pos.New(),
		supplierImporter: supplier.New(),
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]transaction.CreateParams, error) {
	var importer Importer

	switch source {
	case SourcePOS:
		importer = s.posImporter
	case SourceSupplier:
		importer = s.supplierImporter
	default:
		return nil, fmt.Errorf("unknown import source: %s", source)
	}

	return importer.Parse(r)
}
