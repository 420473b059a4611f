package services_test

import (
	"testing"

	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/core/domain/model/product"
	"orderservice/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog(t *testing.T) []*product.Product {
	t.Helper()

	a, err := product.NewProduct("1", "Product A", decimal.NewFromInt(100), 50)
	require.NoError(t, err)
	b, err := product.NewProduct("2", "Product B", decimal.NewFromInt(200), 30)
	require.NoError(t, err)
	c, err := product.NewProduct("3", "Product C", decimal.NewFromInt(300), 20)
	require.NoError(t, err)

	return []*product.Product{a, b, c}
}

func TestOrderBuilder_Build(t *testing.T) {
	builder := services.NewOrderBuilder()

	t.Run("should build fully populated order", func(t *testing.T) {
		items := []services.Item{
			{ProductID: "1", Quantity: 2},
			{ProductID: "2", Quantity: 3},
		}

		o, err := builder.Build("123 Main St", "a@b.com", "4111111111111111", items, catalog(t))

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "123 Main St", o.InvoiceAddress())

		lines := o.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "1", lines[0].ProductID())
		assert.Equal(t, 2, lines[0].Quantity())
		assert.True(t, decimal.NewFromInt(100).Equal(lines[0].UnitPrice()))
		assert.Equal(t, "2", lines[1].ProductID())
		assert.Equal(t, 3, lines[1].Quantity())
	})

	t.Run("should build order with no items", func(t *testing.T) {
		o, err := builder.Build("addr", "a@b.com", "cc", nil, catalog(t))

		require.NoError(t, err)
		assert.Empty(t, o.Lines())
	})

	t.Run("should merge duplicate items in input order", func(t *testing.T) {
		items := []services.Item{
			{ProductID: "2", Quantity: 1},
			{ProductID: "1", Quantity: 2},
			{ProductID: "2", Quantity: 4},
		}

		o, err := builder.Build("addr", "a@b.com", "cc", items, catalog(t))

		require.NoError(t, err)
		lines := o.Lines()
		require.Len(t, lines, 2)
		assert.Equal(t, "2", lines[0].ProductID(), "first occurrence determines line order")
		assert.Equal(t, 5, lines[0].Quantity())
		assert.Equal(t, "1", lines[1].ProductID())
		assert.Equal(t, 2, lines[1].Quantity())
	})

	t.Run("should propagate shell construction failures", func(t *testing.T) {
		o, err := builder.Build("", "a@b.com", "cc", nil, catalog(t))

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrInvoiceAddressIsRequired)

		o, err = builder.Build("addr", "not-an-email", "cc", nil, catalog(t))

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrInvoiceEmailIsInvalid)
	})

	t.Run("should fail with mismatch when product is unresolved", func(t *testing.T) {
		items := []services.Item{
			{ProductID: "1", Quantity: 2},
			{ProductID: "99", Quantity: 1},
		}

		o, err := builder.Build("addr", "a@b.com", "cc", items, catalog(t))

		require.Error(t, err)
		assert.Nil(t, o, "no partially-built order may escape")
		require.ErrorIs(t, err, services.ErrProductResolutionMismatch)
		assert.Contains(t, err.Error(), "99")
	})

	t.Run("should propagate insufficient stock", func(t *testing.T) {
		items := []services.Item{
			{ProductID: "3", Quantity: 21}, // stock is 20
		}

		o, err := builder.Build("addr", "a@b.com", "cc", items, catalog(t))

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrInsufficientStock)
	})

	t.Run("should propagate insufficient stock across merged items", func(t *testing.T) {
		items := []services.Item{
			{ProductID: "3", Quantity: 15},
			{ProductID: "3", Quantity: 6}, // 15+6 > 20
		}

		o, err := builder.Build("addr", "a@b.com", "cc", items, catalog(t))

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrInsufficientStock)
	})

	t.Run("should fail with unconstructed product in resolved set", func(t *testing.T) {
		var zero product.Product

		o, err := builder.Build("addr", "a@b.com", "cc", nil, []*product.Product{&zero})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}
