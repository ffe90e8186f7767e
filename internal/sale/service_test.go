package sale_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Santiagox01/VeterinariaFinal/internal/sale"
)

func TestService_Create(t *testing.T) {
	t.Run("SingleLine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := sale.NewMockTx(ctrl)
		tx.EXPECT().
			CreateSale(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *sale.Sale) error {
				assert.True(t, strings.HasPrefix(s.ID, "VTA"))
				assert.Len(t, s.ID, len("VTA")+6)
				assert.Equal(t, "Ana", s.Customer)
				assert.Equal(t, int64(45000), s.Total)
				assert.Equal(t, sale.StateActive, s.State)
				return nil
			})
		tx.EXPECT().
			CreateLineItems(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, items []sale.LineItem) error {
				require.Len(t, items, 1)
				assert.Equal(t, items[0].SaleID+"-01", items[0].ID)
				assert.Equal(t, "ACC001", items[0].AccessoryID)
				assert.Equal(t, 3, items[0].Quantity)
				assert.Equal(t, int64(45000), items[0].Subtotal)
				return nil
			})
		tx.EXPECT().ReduceStock(gomock.Any(), "ACC001", 3).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		repo := sale.NewMockRepository(ctrl)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		svc := sale.NewService(repo)
		got, err := svc.Create(context.Background(), "Ana", []sale.LineParams{
			{AccessoryID: "ACC001", Quantity: 3, UnitPrice: 15000},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(45000), got.Total)
		require.Len(t, got.Items, 1)
		assert.Equal(t, int64(45000), got.Items[0].Subtotal)
	})

	t.Run("MultiLineTotalsAndSequence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := sale.NewMockTx(ctrl)
		tx.EXPECT().CreateSale(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().
			CreateLineItems(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, items []sale.LineItem) error {
				require.Len(t, items, 2)
				assert.True(t, strings.HasSuffix(items[0].ID, "-01"))
				assert.True(t, strings.HasSuffix(items[1].ID, "-02"))
				return nil
			})
		tx.EXPECT().ReduceStock(gomock.Any(), "ACC001", 2).Return(nil)
		tx.EXPECT().ReduceStock(gomock.Any(), "ACC002", 1).Return(nil)
		tx.EXPECT().Commit().Return(nil)
		tx.EXPECT().Rollback().Return(nil).AnyTimes()

		repo := sale.NewMockRepository(ctrl)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		svc := sale.NewService(repo)
		got, err := svc.Create(context.Background(), "Carlos", []sale.LineParams{
			{AccessoryID: "ACC001", Quantity: 2, UnitPrice: 9000},
			{AccessoryID: "ACC002", Quantity: 1, UnitPrice: 25000},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(43000), got.Total)
	})
}

func TestService_Create_Validation(t *testing.T) {
	type testCase struct {
		name     string
		customer string
		lines    []sale.LineParams
		wantErr  error
	}

	tests := []testCase{
		{
			name:     "EmptyCustomer",
			customer: "   ",
			lines:    []sale.LineParams{{AccessoryID: "ACC001", Quantity: 1, UnitPrice: 100}},
			wantErr:  sale.ErrEmptyCustomer,
		},
		{
			name:     "EmptyCart",
			customer: "Ana",
			wantErr:  sale.ErrEmptyCart,
		},
		{
			name:     "ZeroQuantity",
			customer: "Ana",
			lines:    []sale.LineParams{{AccessoryID: "ACC001", Quantity: 0, UnitPrice: 100}},
			wantErr:  sale.ErrInvalidQuantity,
		},
		{
			name:     "NegativePrice",
			customer: "Ana",
			lines:    []sale.LineParams{{AccessoryID: "ACC001", Quantity: 1, UnitPrice: -5}},
			wantErr:  sale.ErrNegativePrice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			// No repository calls are expected when validation fails.
			svc := sale.NewService(sale.NewMockRepository(ctrl))
			got, err := svc.Create(context.Background(), tt.customer, tt.lines)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, sale.ErrValidation)
			assert.Nil(t, got)
		})
	}
}

func TestService_Create_RollsBackOnFailure(t *testing.T) {
	t.Run("HeaderFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := sale.NewMockTx(ctrl)
		tx.EXPECT().CreateSale(gomock.Any(), gomock.Any()).Return(sale.ErrDuplicateID)
		tx.EXPECT().Rollback().Return(nil)

		repo := sale.NewMockRepository(ctrl)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		svc := sale.NewService(repo)
		_, err := svc.Create(context.Background(), "Ana", []sale.LineParams{
			{AccessoryID: "ACC001", Quantity: 1, UnitPrice: 100},
		})

		assert.ErrorIs(t, err, sale.ErrDuplicateID)
	})

	t.Run("StockDecrementFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tx := sale.NewMockTx(ctrl)
		tx.EXPECT().CreateSale(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().CreateLineItems(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().ReduceStock(gomock.Any(), "ACC001", 1).Return(errors.New("db error"))
		tx.EXPECT().Rollback().Return(nil)

		repo := sale.NewMockRepository(ctrl)
		repo.EXPECT().Begin(gomock.Any()).Return(tx, nil)

		svc := sale.NewService(repo)
		_, err := svc.Create(context.Background(), "Ana", []sale.LineParams{
			{AccessoryID: "ACC001", Quantity: 1, UnitPrice: 100},
		})

		assert.Error(t, err)
	})
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sale.NewMockRepository(ctrl)
	repo.EXPECT().
		GetSale(gomock.Any(), "VTA000001").
		Return(nil, sale.ErrNotFound)

	svc := sale.NewService(repo)
	_, err := svc.Get(context.Background(), "VTA000001")

	assert.ErrorIs(t, err, sale.ErrNotFound)
}

func TestService_ListByAccessory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sale.NewMockRepository(ctrl)
	repo.EXPECT().
		ListSalesByAccessory(gomock.Any(), "ACC001").
		Return([]*sale.Sale{{ID: "VTA123456"}}, nil)

	svc := sale.NewService(repo)
	got, err := svc.ListByAccessory(context.Background(), "ACC001")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "VTA123456", got[0].ID)
}

func TestService_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := sale.NewMockRepository(ctrl)
	repo.EXPECT().DeactivateSale(gomock.Any(), "VTA123456").Return(nil)

	svc := sale.NewService(repo)
	assert.NoError(t, svc.Deactivate(context.Background(), "VTA123456"))
}
