package analyze

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	storePkg     = "mapper-generator/store"
	warehousePkg = "mapper-generator/warehouse"
)

func loadFixtures(t *testing.T) *Catalog {
	t.Helper()

	catalog, err := NewAnalyzer().LoadPackages(context.Background(), storePkg, warehousePkg)
	require.NoError(t, err)
	require.NotNil(t, catalog)

	return catalog
}

func storeStruct(t *testing.T, c *Catalog, name string) *Struct {
	t.Helper()

	s := c.Structs[TypeID{PkgPath: storePkg, Name: name}]
	require.NotNil(t, s, name)

	return s
}

func TestAnalyzer_LoadPackages(t *testing.T) {
	catalog := loadFixtures(t)

	assert.Contains(t, catalog.Packages, storePkg)
	assert.Contains(t, catalog.Packages, warehousePkg)
	assert.Equal(t, "store", catalog.Packages[storePkg].Name)

	assert.Contains(t, catalog.Structs, TypeID{PkgPath: storePkg, Name: "Order"})
	assert.Contains(t, catalog.Structs, TypeID{PkgPath: warehousePkg, Name: "Order"})

	// Only structs are catalogued.
	assert.NotContains(t, catalog.Structs, TypeID{PkgPath: storePkg, Name: "OrderStatus"})
	assert.Equal(t, warehousePkg, catalog.Packages[warehousePkg].Path)
}

func TestAnalyzer_FlattenEmbedded(t *testing.T) {
	catalog := loadFixtures(t)

	tests := []struct {
		name   string
		fields []string
	}{
		{"Entity", []string{"ID", "CreatedAt"}},
		{"Product", []string{"ID", "CreatedAt", "SKU", "Name", "Description", "PriceCents", "Inventory"}},
		{"Customer", []string{"ID", "CreatedAt", "Email", "FullName", "Address", "IsActive"}},
		// CreatedAt on Order shadows the promoted Entity.CreatedAt.
		{"Order", []string{"ID", "CreatedBy", "UpdatedBy", "CustomerID", "Status", "TotalCents", "Items", "CreatedAt"}},
		// UpdatedBy is promoted from two structs at the same depth.
		{"Shipment", []string{"CreatedBy", "SignedAt", "TrackingCode"}},
		{"Category", []string{"Name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fields, storeStruct(t, catalog, tt.name).FieldNames())
		})
	}
}

func TestAnalyzer_PromotionPath(t *testing.T) {
	catalog := loadFixtures(t)

	via := func(s *Struct) map[string][]string {
		out := make(map[string][]string, len(s.Fields))
		for _, f := range s.Fields {
			out[f.Name] = f.Via
		}

		return out
	}

	order := via(storeStruct(t, catalog, "Order"))
	assert.Equal(t, []string{"Entity"}, order["ID"])
	assert.Equal(t, []string{"Audit"}, order["CreatedBy"])
	assert.Empty(t, order["CreatedAt"])
	assert.NotContains(t, order, "note")
	assert.NotContains(t, order, "revision")

	shipment := via(storeStruct(t, catalog, "Shipment"))
	assert.Equal(t, []string{"Signoff"}, shipment["SignedAt"])
}

func TestCatalog_Find(t *testing.T) {
	catalog := loadFixtures(t)

	s, err := catalog.Find("Shipment")
	require.NoError(t, err)
	assert.Equal(t, storePkg, s.ID.PkgPath)

	s, err = catalog.Find("store.Customer")
	require.NoError(t, err)
	assert.Equal(t, TypeID{PkgPath: storePkg, Name: "Customer"}, s.ID)

	s, err = catalog.Find(warehousePkg + ".Order")
	require.NoError(t, err)
	assert.Equal(t, TypeID{PkgPath: warehousePkg, Name: "Order"}, s.ID)

	_, err = catalog.Find("Customer")
	assert.ErrorContains(t, err, "ambiguous")
	assert.ErrorContains(t, err, storePkg+".Customer")

	_, err = catalog.Find("store.Missing")
	assert.ErrorContains(t, err, "not found in "+storePkg+", "+warehousePkg)
}

func TestCatalog_TypeRef(t *testing.T) {
	catalog := loadFixtures(t)

	ref, err := catalog.TypeRef(warehousePkg + ".Customer")
	require.NoError(t, err)
	assert.Equal(t, "warehouse.Customer", ref.Name)
	assert.Equal(t, []string{"ID", "FirstName", "LastName", "Email", "Phone", "Addresses", "CreatedAt"}, ref.Fields)

	ref, err = catalog.TypeRef("Shipment")
	require.NoError(t, err)
	assert.Equal(t, "Shipment", ref.Name)

	_, err = catalog.TypeRef("Nope")
	assert.Error(t, err)
}

func TestAnalyzer_LoadErrors(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages(context.Background(), "mapper-generator/does/not/exist")
	assert.Error(t, err)
}

func TestTypeID(t *testing.T) {
	assert.Equal(t, "mapper-generator/store.Order", TypeID{PkgPath: storePkg, Name: "Order"}.String())
	assert.Equal(t, "int", TypeID{Name: "int"}.String())
}

func TestCatalog_PackageNameQualifies(t *testing.T) {
	catalog := NewCatalog()
	id := TypeID{PkgPath: "example.com/go-orders/v2", Name: "Order"}
	catalog.Structs[id] = &Struct{ID: id, Fields: []Field{{Name: "ID"}}}
	catalog.Packages[id.PkgPath] = &PackageInfo{Path: id.PkgPath, Name: "orders"}

	ref, err := catalog.TypeRef("orders.Order")
	require.NoError(t, err)
	assert.Equal(t, "orders.Order", ref.Name)
	assert.Equal(t, []string{"ID"}, ref.Fields)

	_, err = catalog.TypeRef("v2.Order")
	assert.ErrorContains(t, err, "not found in example.com/go-orders/v2")
}
