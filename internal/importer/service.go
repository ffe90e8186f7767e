package importer

import (
	"fmt"
	"io"

	"github.com/Santiagox01/VeterinariaFinal/internal/accessory"
	"github.com/Santiagox01/VeterinariaFinal/internal/importer/catalog"
)

type Service struct {
	catalogImporter Importer
}

func NewService() *Service {
	return &Service{
		catalogImporter: catalog.NewParser(),
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]accessory.CreateParams, error) {
	var importer Importer

	switch source {
	case SourceCatalog:
		importer = s.catalogImporter
	default:
		return nil, fmt.Errorf("unknown source: %s", source)
	}

	return importer.Parse(r)
}
