package importer

import (
	"io"

	"github.com/Santiagox01/VeterinariaFinal/internal/accessory"
)

type Source string

const (
	SourceCatalog Source = "catalog"
)

type Importer interface {
	Parse(r io.Reader) ([]accessory.CreateParams, error)
}
