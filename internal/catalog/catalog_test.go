package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/kasir/internal/catalog"
	"github.com/MrJamesThe3rd/kasir/internal/errs"
)

func TestParseCategory(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    catalog.Category
		wantErr bool
	}

	tests := []testCase{
		{name: "English", input: "food", want: catalog.CategoryFood},
		{name: "Indonesian", input: "Minuman", want: catalog.CategoryDrink},
		{name: "Padded", input: " kebutuhan ", want: catalog.CategoryHousehold},
		{name: "Unknown", input: "elektronik", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.ParseCategory(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewProduct(t *testing.T) {
	type args struct {
		name     string
		price    int64
		unit     string
		category catalog.Category
	}

	type testCase struct {
		name    string
		args    args
		want    catalog.Product
		wantErr bool
	}

	tests := []testCase{
		{
			name: "NormalizesName",
			args: args{name: "  Kopi ", price: 5000, unit: "Buah", category: catalog.CategoryDrink},
			want: catalog.Product{Name: "kopi", UnitPrice: 5000, Unit: "buah", Category: catalog.CategoryDrink},
		},
		{name: "EmptyName", args: args{name: " ", price: 5000, unit: "buah", category: catalog.CategoryDrink}, wantErr: true},
		{name: "ZeroPrice", args: args{name: "kopi", price: 0, unit: "buah", category: catalog.CategoryDrink}, wantErr: true},
		{name: "NoUnit", args: args{name: "kopi", price: 5000, category: catalog.CategoryDrink}, wantErr: true},
		{name: "BadCategory", args: args{name: "kopi", price: 5000, unit: "buah", category: "toys"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.NewProduct(tt.args.name, tt.args.price, tt.args.unit, tt.args.category)
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidArgument)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLineItem(t *testing.T) {
	p := catalog.Product{Name: "beras", UnitPrice: 15000, Unit: "kg", Category: catalog.CategoryFood}

	li, err := catalog.NewLineItem(p, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(45000), li.Total())
	assert.Equal(t, "Beras", li.DisplayName())

	_, err = catalog.NewLineItem(p, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = catalog.NewLineItem(p, -2)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestLineItem_Validate(t *testing.T) {
	type testCase struct {
		name    string
		item    catalog.LineItem
		wantErr bool
	}

	tests := []testCase{
		{name: "Valid", item: catalog.LineItem{Name: "beras", UnitPrice: 15000, Category: catalog.CategoryFood, Quantity: 3}},
		{name: "IndonesianCategory", item: catalog.LineItem{Name: "beras", UnitPrice: 15000, Category: "makanan", Quantity: 1}},
		{name: "NegativePrice", item: catalog.LineItem{Name: "beras", UnitPrice: -15000, Category: catalog.CategoryFood, Quantity: 3}, wantErr: true},
		{name: "ZeroPrice", item: catalog.LineItem{Name: "beras", Category: catalog.CategoryFood, Quantity: 3}, wantErr: true},
		{name: "UnknownCategory", item: catalog.LineItem{Name: "televisi", UnitPrice: 900000, Category: "electronics", Quantity: 1}, wantErr: true},
		{name: "NoCategory", item: catalog.LineItem{Name: "beras", UnitPrice: 15000, Quantity: 1}, wantErr: true},
		{name: "BlankName", item: catalog.LineItem{Name: "  ", UnitPrice: 15000, Category: catalog.CategoryFood, Quantity: 1}, wantErr: true},
		{name: "ZeroQuantity", item: catalog.LineItem{Name: "beras", UnitPrice: 15000, Category: catalog.CategoryFood}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, errs.ErrInvalidArgument)
				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCatalog_RejectsInvalidProducts(t *testing.T) {
	_, err := catalog.New(
		catalog.Product{Name: "beras", UnitPrice: 15000, Unit: "kg", Category: catalog.CategoryFood},
		catalog.Product{Name: "rusak", UnitPrice: -1000, Unit: "kg", Category: catalog.CategoryFood},
	)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	c, err := catalog.New()
	require.NoError(t, err)

	assert.ErrorIs(t, c.Put(catalog.Product{Name: "teh", UnitPrice: 0, Unit: "kantong", Category: catalog.CategoryDrink}), errs.ErrInvalidArgument)
	assert.ErrorIs(t, c.Put(catalog.Product{Name: "televisi", UnitPrice: 900000, Unit: "unit", Category: "electronics"}), errs.ErrInvalidArgument)
	assert.Zero(t, c.Len())
}

func TestProduct_DisplayName(t *testing.T) {
	p := catalog.Product{Name: "mie_instan"}
	assert.Equal(t, "Mie Instan", p.DisplayName())
}

func TestCatalog_Default(t *testing.T) {
	c, err := catalog.NewDefault()
	require.NoError(t, err)
	assert.Equal(t, 14, c.Len())

	p, err := c.Product(" BERAS ")
	require.NoError(t, err)
	assert.Equal(t, int64(15000), p.UnitPrice)
	assert.Equal(t, catalog.CategoryFood, p.Category)

	p, err = c.Product("sampo")
	require.NoError(t, err)
	assert.Equal(t, catalog.CategoryHousehold, p.Category)

	_, err = c.Product("durian")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCatalog_PutAndAll(t *testing.T) {
	c, err := catalog.New()
	require.NoError(t, err)

	require.NoError(t, c.Put(catalog.Product{Name: "teh", UnitPrice: 3000, Unit: "kantong", Category: catalog.CategoryDrink}))
	require.NoError(t, c.Put(catalog.Product{Name: "Kopi", UnitPrice: 5000, Unit: "buah", Category: "minuman"}))
	require.NoError(t, c.Put(catalog.Product{Name: "teh", UnitPrice: 3500, Unit: "kantong", Category: catalog.CategoryDrink}))

	all := c.All()
	require.Len(t, all, 2)
	assert.Equal(t, "kopi", all[0].Name)
	assert.Equal(t, catalog.CategoryDrink, all[0].Category)
	assert.Equal(t, "teh", all[1].Name)
	assert.Equal(t, int64(3500), all[1].UnitPrice)
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "Makanan", catalog.CategoryFood.Label())
	assert.Equal(t, "Minuman", catalog.CategoryDrink.Label())
	assert.Equal(t, "Kebutuhan", catalog.CategoryHousehold.Label())
}
