package cleaner

import (
	"testing"

	"github.com/chile-cleaner/internal/normalizer"
)

func TestLoadRegionsIntegrity(t *testing.T) {
	regions, err := loadRegions()
	if err != nil {
		t.Fatalf("loadRegions() failed: %v", err)
	}
	if len(regions) != 16 {
		t.Fatalf("table has %d regions, want 16", len(regions))
	}

	seen := make(map[int]bool)
	for _, r := range regions {
		if r.Code < 1 || r.Code > 16 {
			t.Errorf("region %q has code %d outside 1..16", r.OfficialName, r.Code)
		}
		if seen[r.Code] {
			t.Errorf("code %d appears more than once", r.Code)
		}
		seen[r.Code] = true
		if len(r.Variants) == 0 {
			t.Errorf("region %d (%s) has no variants", r.Code, r.OfficialName)
		}
	}
}

// The official scheme orders entries geographically, not numerically; the
// metropolitan region (13) sits between codes 5 and 6.
func TestTablePreservesOfficialOrder(t *testing.T) {
	regions, err := loadRegions()
	if err != nil {
		t.Fatalf("loadRegions() failed: %v", err)
	}

	wantOrder := []int{15, 1, 2, 3, 4, 5, 13, 6, 7, 16, 8, 9, 14, 10, 11, 12}
	if len(regions) != len(wantOrder) {
		t.Fatalf("table has %d regions, want %d", len(regions), len(wantOrder))
	}
	for i, r := range regions {
		if r.Code != wantOrder[i] {
			t.Errorf("position %d holds code %d, want %d", i, r.Code, wantOrder[i])
		}
	}
}

func TestBuildIndexNoCrossRegionCollisions(t *testing.T) {
	regions, err := loadRegions()
	if err != nil {
		t.Fatalf("loadRegions() failed: %v", err)
	}
	index, err := buildIndex(regions)
	if err != nil {
		t.Fatalf("buildIndex() failed: %v", err)
	}

	// Every official name and variant must map back to its own region.
	for _, r := range regions {
		if got := index[normalizer.NormalizeKey(r.OfficialName)]; got != r.Code {
			t.Errorf("official name %q maps to %d, want %d", r.OfficialName, got, r.Code)
		}
		for _, v := range r.Variants {
			if got := index[normalizer.NormalizeKey(v)]; got != r.Code {
				t.Errorf("variant %q maps to %d, want %d", v, got, r.Code)
			}
		}
	}
}

func TestBuildIndexRejectsCollision(t *testing.T) {
	regions := []Region{
		{Code: 1, OfficialName: "Tarapacá", Variants: []string{"norte"}},
		{Code: 2, OfficialName: "Antofagasta", Variants: []string{"Norte"}},
	}
	if _, err := buildIndex(regions); err == nil {
		t.Error("buildIndex() accepted a cross-region variant collision")
	}
}

func TestBuildIndexRejectsEmptyVariant(t *testing.T) {
	regions := []Region{
		{Code: 1, OfficialName: "Tarapacá", Variants: []string{"   "}},
	}
	if _, err := buildIndex(regions); err == nil {
		t.Error("buildIndex() accepted a variant that normalizes to empty")
	}
}
