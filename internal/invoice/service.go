package invoice

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Santiagox01/VeterinariaFinal/internal/accessory"
	"github.com/Santiagox01/VeterinariaFinal/internal/money"
	"github.com/Santiagox01/VeterinariaFinal/internal/sale"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=invoice

// SaleReader resolves the sale an invoice is built from.
type SaleReader interface {
	Get(ctx context.Context, id string) (*sale.Sale, error)
}

// AccessoryReader resolves line-item codes to catalog entries.
type AccessoryReader interface {
	Get(ctx context.Context, id string) (*accessory.Accessory, error)
}

type Service struct {
	sales       SaleReader
	accessories AccessoryReader
	storeName   string
}

func NewService(sales SaleReader, accessories AccessoryReader, storeName string) *Service {
	return &Service{
		sales:       sales,
		accessories: accessories,
		storeName:   storeName,
	}
}

// Build resolves a sale into a renderable invoice. Accessories removed
// from the catalog after the sale fall back to their code as the name.
func (s *Service) Build(ctx context.Context, saleID string) (*Invoice, error) {
	sl, err := s.sales.Get(ctx, saleID)
	if err != nil {
		if errors.Is(err, sale.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading sale %s: %w", saleID, err)
	}

	inv := &Invoice{
		Number:   sl.ID,
		IssuedAt: sl.SoldAt,
		Customer: sl.Customer,
		Subtotal: sl.Total,
		Tax:      0,
		Total:    sl.Total,
	}

	for _, item := range sl.Items {
		name := item.AccessoryID
		if acc, err := s.accessories.Get(ctx, item.AccessoryID); err == nil {
			name = acc.Name
		} else if !errors.Is(err, accessory.ErrNotFound) {
			return nil, fmt.Errorf("loading accessory %s: %w", item.AccessoryID, err)
		}
		inv.Lines = append(inv.Lines, Line{
			Code:      item.AccessoryID,
			Name:      name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}

	return inv, nil
}

// Render produces the plain-text form of the invoice for terminal
// display.
func (s *Service) Render(inv *Invoice) string {
	var b strings.Builder

	rule := strings.Repeat("=", 64)
	thin := strings.Repeat("-", 64)

	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%s\n", center("FACTURA", 64))
	fmt.Fprintf(&b, "%s\n", center(s.storeName, 64))
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "NÚMERO DE FACTURA: %s\n", inv.Number)
	fmt.Fprintf(&b, "FECHA:             %s\n", inv.IssuedAt.Format("02/01/2006 15:04"))
	fmt.Fprintf(&b, "CLIENTE:           %s\n", inv.Customer)
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "%-28s %8s %12s %12s\n", "Producto", "Cantidad", "Precio Unit.", "Subtotal")
	fmt.Fprintln(&b, thin)
	for _, l := range inv.Lines {
		fmt.Fprintf(&b, "%-28s %8d %12s %12s\n",
			truncate(l.Name, 28), l.Quantity, money.Format(l.UnitPrice), money.Format(l.Subtotal))
	}
	fmt.Fprintln(&b, thin)
	fmt.Fprintf(&b, "%50s %12s\n", "Subtotal:", money.Format(inv.Subtotal))
	fmt.Fprintf(&b, "%50s %12s\n", "Impuesto:", money.Format(inv.Tax))
	fmt.Fprintf(&b, "%50s %12s\n", "Total:", money.Format(inv.Total))
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "%s\n", center("Gracias por su compra", 64))
	fmt.Fprintf(&b, "%s\n", center(s.storeName, 64))

	return b.String()
}

// Generate builds the sale's invoice and renders it as a PDF.
func (s *Service) Generate(ctx context.Context, saleID string) ([]byte, error) {
	inv, err := s.Build(ctx, saleID)
	if err != nil {
		return nil, err
	}

	cfg := config.NewBuilder().
		WithLeftMargin(15).
		WithRightMargin(15).
		WithTopMargin(15).
		Build()
	m := maroto.New(cfg)

	m.AddRow(10, text.NewCol(12, "FACTURA", props.Text{
		Size:  16,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))
	m.AddRow(7, text.NewCol(12, s.storeName, props.Text{
		Size:  10,
		Align: align.Center,
	}))
	m.AddRow(4, line.NewCol(12))

	m.AddRow(6,
		text.NewCol(6, "NÚMERO DE FACTURA", props.Text{Size: 8}),
		text.NewCol(6, "CLIENTE", props.Text{Size: 8, Align: align.Right}),
	)
	m.AddRow(7,
		text.NewCol(6, inv.Number, props.Text{Size: 11, Style: fontstyle.Bold}),
		text.NewCol(6, inv.Customer, props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right}),
	)
	m.AddRow(6, text.NewCol(12, "FECHA", props.Text{Size: 8}))
	m.AddRow(7, text.NewCol(12, inv.IssuedAt.Format("02/01/2006 15:04"), props.Text{Size: 10}))
	m.AddRow(4, line.NewCol(12))

	m.AddRow(7,
		text.NewCol(5, "Producto", props.Text{Size: 9, Style: fontstyle.Bold}),
		text.NewCol(2, "Cantidad", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Center}),
		text.NewCol(2, "Precio Unit.", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
		text.NewCol(3, "Subtotal", props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}),
	)
	for _, l := range inv.Lines {
		m.AddRow(6,
			text.NewCol(5, l.Name, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", l.Quantity), props.Text{Size: 9, Align: align.Center}),
			text.NewCol(2, money.Format(l.UnitPrice), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(3, money.Format(l.Subtotal), props.Text{Size: 9, Align: align.Right}),
		)
	}
	m.AddRow(4, line.NewCol(12))

	m.AddRow(6, text.NewCol(12, "Subtotal: "+money.Format(inv.Subtotal), props.Text{Size: 9, Align: align.Right}))
	m.AddRow(6, text.NewCol(12, "Impuesto: "+money.Format(inv.Tax), props.Text{Size: 9, Align: align.Right}))
	m.AddRow(8, text.NewCol(12, "Total: "+money.Format(inv.Total), props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}))

	m.AddRow(4, line.NewCol(12))
	m.AddRow(6, text.NewCol(12, "Gracias por su compra", props.Text{Size: 9, Align: align.Center}))
	m.AddRow(6, text.NewCol(12, s.storeName, props.Text{Size: 9, Align: align.Center}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating invoice pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func center(s string, width int) string {
	pad := width - len([]rune(s))
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad/2) + s
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
