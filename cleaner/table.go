package cleaner

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/chile-cleaner/internal/normalizer"
)

//go:embed data/regions.yaml
var regionsYAML []byte

type regionTable struct {
	Regions []Region `yaml:"regions"`
}

// loadRegions parses the embedded table, preserving its insertion order.
func loadRegions() ([]Region, error) {
	var table regionTable
	if err := yaml.Unmarshal(regionsYAML, &table); err != nil {
		return nil, fmt.Errorf("parse embedded region table: %w", err)
	}
	if len(table.Regions) == 0 {
		return nil, fmt.Errorf("embedded region table is empty")
	}

	seen := make(map[int]bool, len(table.Regions))
	for _, r := range table.Regions {
		if r.Code <= 0 {
			return nil, fmt.Errorf("region %q: code %d is not a positive integer", r.OfficialName, r.Code)
		}
		if r.OfficialName == "" {
			return nil, fmt.Errorf("region code %d: missing official name", r.Code)
		}
		if seen[r.Code] {
			return nil, fmt.Errorf("region code %d appears twice in the table", r.Code)
		}
		seen[r.Code] = true
	}
	return table.Regions, nil
}

// buildIndex builds the reverse index from normalized official names and
// variants to region codes. A key repeated within one region (an official
// name next to its own unaccented variant) is expected; the same key claimed
// by two different regions is a table bug and aborts construction.
func buildIndex(regions []Region) (map[string]int, error) {
	index := make(map[string]int)
	for _, r := range regions {
		keys := make([]string, 0, len(r.Variants)+1)
		keys = append(keys, normalizer.NormalizeKey(r.OfficialName))
		for _, v := range r.Variants {
			keys = append(keys, normalizer.NormalizeKey(v))
		}
		for _, key := range keys {
			if key == "" {
				return nil, fmt.Errorf("region code %d: variant normalizes to the empty string", r.Code)
			}
			if prev, ok := index[key]; ok && prev != r.Code {
				return nil, fmt.Errorf("variant %q is claimed by regions %d and %d", key, prev, r.Code)
			}
			index[key] = r.Code
		}
	}
	return index, nil
}
