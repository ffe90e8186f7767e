package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Santiagox01/VeterinariaFinal/internal/accessory"
	"github.com/Santiagox01/VeterinariaFinal/internal/sale"
)

func sampleSale() *sale.Sale {
	return &sale.Sale{
		ID:       "VTA123456",
		Customer: "Ana García",
		Total:    4500000,
		State:    sale.StateActive,
		SoldAt:   time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC),
		Items: []sale.LineItem{
			{
				ID:          "VTA123456-01",
				SaleID:      "VTA123456",
				AccessoryID: "ACC001",
				Quantity:    3,
				UnitPrice:   1500000,
				Subtotal:    4500000,
			},
		},
	}
}

func TestService_Build(t *testing.T) {
	t.Run("ResolvesNames", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sales := NewMockSaleReader(ctrl)
		sales.EXPECT().Get(gomock.Any(), "VTA123456").Return(sampleSale(), nil)

		accessories := NewMockAccessoryReader(ctrl)
		accessories.EXPECT().
			Get(gomock.Any(), "ACC001").
			Return(&accessory.Accessory{ID: "ACC001", Name: "Collar Grande"}, nil)

		svc := NewService(sales, accessories, "Accesorios Veterinaria")
		inv, err := svc.Build(context.Background(), "VTA123456")

		require.NoError(t, err)
		assert.Equal(t, "VTA123456", inv.Number)
		assert.Equal(t, "Ana García", inv.Customer)
		assert.Equal(t, int64(4500000), inv.Total)
		assert.Equal(t, int64(0), inv.Tax)
		require.Len(t, inv.Lines, 1)
		assert.Equal(t, "Collar Grande", inv.Lines[0].Name)
		assert.Equal(t, "ACC001", inv.Lines[0].Code)
	})

	t.Run("MissingAccessoryFallsBackToCode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sales := NewMockSaleReader(ctrl)
		sales.EXPECT().Get(gomock.Any(), "VTA123456").Return(sampleSale(), nil)

		accessories := NewMockAccessoryReader(ctrl)
		accessories.EXPECT().Get(gomock.Any(), "ACC001").Return(nil, accessory.ErrNotFound)

		svc := NewService(sales, accessories, "Accesorios Veterinaria")
		inv, err := svc.Build(context.Background(), "VTA123456")

		require.NoError(t, err)
		require.Len(t, inv.Lines, 1)
		assert.Equal(t, "ACC001", inv.Lines[0].Name)
	})

	t.Run("SaleNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		sales := NewMockSaleReader(ctrl)
		sales.EXPECT().Get(gomock.Any(), "VTA999999").Return(nil, sale.ErrNotFound)

		svc := NewService(sales, NewMockAccessoryReader(ctrl), "Accesorios Veterinaria")
		_, err := svc.Build(context.Background(), "VTA999999")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestService_Render(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sales := NewMockSaleReader(ctrl)
	sales.EXPECT().Get(gomock.Any(), "VTA123456").Return(sampleSale(), nil)

	accessories := NewMockAccessoryReader(ctrl)
	accessories.EXPECT().
		Get(gomock.Any(), "ACC001").
		Return(&accessory.Accessory{ID: "ACC001", Name: "Collar Grande"}, nil)

	svc := NewService(sales, accessories, "Accesorios Veterinaria")
	inv, err := svc.Build(context.Background(), "VTA123456")
	require.NoError(t, err)

	out := svc.Render(inv)

	assert.Contains(t, out, "FACTURA")
	assert.Contains(t, out, "Accesorios Veterinaria")
	assert.Contains(t, out, "NÚMERO DE FACTURA: VTA123456")
	assert.Contains(t, out, "CLIENTE:           Ana García")
	assert.Contains(t, out, "Collar Grande")
	assert.Contains(t, out, "Subtotal:")
	assert.Contains(t, out, "Impuesto:")
	assert.Contains(t, out, "$ 45.000")
	assert.Contains(t, out, "Gracias por su compra")
}

func TestService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sales := NewMockSaleReader(ctrl)
	sales.EXPECT().Get(gomock.Any(), "VTA123456").Return(sampleSale(), nil)

	accessories := NewMockAccessoryReader(ctrl)
	accessories.EXPECT().
		Get(gomock.Any(), "ACC001").
		Return(&accessory.Accessory{ID: "ACC001", Name: "Collar Grande"}, nil)

	svc := NewService(sales, accessories, "Accesorios Veterinaria")
	data, err := svc.Generate(context.Background(), "VTA123456")

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "corto", truncate("corto", 10))
	assert.Equal(t, "muy larg…", truncate("muy largo de verdad", 9))
}
