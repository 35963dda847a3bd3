package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

const testBundle = `{
  "products": [
    {"id": "a1", "brand": "Dior", "name": "Sauvage", "raw_name": "DIOR SAUVAGE EDT 60ML", "size": "60ml", "type": "EDT", "gender": "men", "price": 98},
    {"id": "a2", "brand": "Dior", "name": "J'adore", "raw_name": "DIOR J'ADORE EDP 50ML", "size": "50ml", "type": "EDP", "gender": "women", "price": 120},
    {"id": "a3", "brand": "Chanel", "name": "No 5", "raw_name": "CHANEL N5 EDP 50ML", "size": "50ml", "type": "EDP", "gender": "women", "price": null}
  ]
}`

func TestLoadBundleDerivesBrands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(testBundle), 0o644); err != nil {
		t.Fatal(err)
	}

	repo, err := LoadBundle(path)
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}

	if repo.Len() != 3 {
		t.Fatalf("got %d products, want 3", repo.Len())
	}

	brands := repo.Brands()
	if len(brands) != 2 {
		t.Fatalf("got %d brands, want 2: %v", len(brands), brands)
	}
	if brands[0].Name != "Chanel" || brands[0].Count != 1 {
		t.Fatalf("unexpected first brand: %+v", brands[0])
	}
	if brands[1].Name != "Dior" || brands[1].Count != 2 {
		t.Fatalf("unexpected second brand: %+v", brands[1])
	}

	if p, ok := repo.Get("a3"); !ok || p.Price != nil {
		t.Fatalf("a3 should exist with no price, got %+v ok=%v", p, ok)
	}
	if _, ok := repo.Get("missing"); ok {
		t.Fatalf("lookup of unknown id succeeded")
	}
}

func TestLoadBundleErrors(t *testing.T) {
	if _, err := LoadBundle(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadBundle(path); err == nil {
		t.Fatalf("expected error for malformed bundle")
	}
}
