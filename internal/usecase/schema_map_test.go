package usecase

import (
	"reflect"
	"testing"

	"github.com/yourusername/asset-sheet-service/internal/domain/entity"
)

func registryHeaders() []string {
	_, names, _ := ResolveHeader(entity.RawGrid{
		{"", "Category", "Asset Name", "Quantity", "Functional Qty", "Functional Qty", "Unit Cost"},
	})
	return names
}

func TestMapSchema_ExactBeforeSubstring(t *testing.T) {
	mapping, _ := MapSchema([]string{"Unit", "Unit Cost"}, entity.AssetRegistrySchema())
	if got := mapping[entity.FieldUnitCost]; got != 1 {
		t.Fatalf("Unit Cost mapped to column %d, want 1", got)
	}
	if got := mapping[entity.FieldUnit]; got != 0 {
		t.Fatalf("Unit mapped to column %d, want 0", got)
	}
}

func TestMapSchema_DuplicateHeaderClaimsFirstOccurrence(t *testing.T) {
	mapping, _ := MapSchema(registryHeaders(), entity.AssetRegistrySchema())
	if got, ok := mapping[entity.FieldFunctionalQty]; !ok || got != 4 {
		t.Fatalf("Functional Qty mapped to column %d (ok=%v), want 4", got, ok)
	}
	if _, ok := mapping[entity.FieldNonFunctionalQty]; ok {
		t.Fatal("Non-Functional Qty got a column from a duplicated header, want unmapped")
	}
}

func TestMapSchema_UnmappedNotRequired(t *testing.T) {
	schema := entity.AssetRegistrySchema()
	mapping, unmapped := MapSchema(registryHeaders(), schema)

	for _, name := range []string{entity.FieldCategory, entity.FieldAssetName, entity.FieldQuantity, entity.FieldUnitCost} {
		if _, ok := mapping[name]; !ok {
			t.Fatalf("field %q unexpectedly unmapped", name)
		}
	}
	found := false
	for _, name := range unmapped {
		if name == entity.FieldNonFunctionalQty {
			found = true
		}
	}
	if !found {
		t.Fatalf("unmapped = %v, want it to include %q", unmapped, entity.FieldNonFunctionalQty)
	}
	if req := UnmappedRequired(schema, unmapped); len(req) != 0 {
		t.Fatalf("UnmappedRequired() = %v, want none", req)
	}
}

func TestMapSchema_ReportsMissingRequired(t *testing.T) {
	schema := entity.AssetRegistrySchema()
	_, unmapped := MapSchema([]string{"Category", "Remarks"}, schema)
	req := UnmappedRequired(schema, unmapped)
	want := []string{entity.FieldAssetName, entity.FieldQuantity, entity.FieldUnitCost}
	if !reflect.DeepEqual(req, want) {
		t.Fatalf("UnmappedRequired() = %v, want %v", req, want)
	}
}

func TestMapSchema_SubstringBothDirections(t *testing.T) {
	schema := entity.AssetRegistrySchema()
	// Keyword inside header and abbreviated header inside keyword.
	mapping, _ := MapSchema([]string{"Quantity", "Functional Quantity (nos)"}, schema)
	if got, ok := mapping[entity.FieldFunctionalQty]; !ok || got != 1 {
		t.Fatalf("Functional Qty mapped to column %d (ok=%v), want 1", got, ok)
	}

	mapping, _ = MapSchema([]string{"Quantity", "Func"}, schema)
	if got, ok := mapping[entity.FieldFunctionalQty]; !ok || got != 1 {
		t.Fatalf("Functional Qty mapped to column %d (ok=%v), want 1 via abbreviated header", got, ok)
	}

	mapping, _ = MapSchema([]string{"Subsystem"}, schema)
	if got, ok := mapping[entity.FieldAssetName]; !ok || got != 0 {
		t.Fatalf("Asset Name mapped to column %d (ok=%v), want 0 via subsystem keyword", got, ok)
	}
}

func TestMapSchema_UniqueColumns(t *testing.T) {
	mapping, _ := MapSchema(registryHeaders(), entity.AssetRegistrySchema())
	seen := make(map[int]string)
	for field, col := range mapping {
		if other, dup := seen[col]; dup {
			t.Fatalf("column %d claimed by both %q and %q", col, other, field)
		}
		seen[col] = field
	}
}

func TestMapSchema_Deterministic(t *testing.T) {
	headers := registryHeaders()
	schema := entity.AssetRegistrySchema()
	first, firstUnmapped := MapSchema(headers, schema)
	for i := 0; i < 50; i++ {
		mapping, unmapped := MapSchema(headers, schema)
		if !reflect.DeepEqual(mapping, first) || !reflect.DeepEqual(unmapped, firstUnmapped) {
			t.Fatalf("MapSchema() not deterministic on run %d: %v vs %v", i, mapping, first)
		}
	}
}
