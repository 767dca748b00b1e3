// Package cleaner normalizes free-form descriptions of Chilean regions
// ("valpo", "RM", "VIII región", 8, "8") into the official INE code and name.
//
// Lookups are case-, accent- and whitespace-insensitive. A miss is reported
// as absence, never as an error: unrecognized values are an expected, common
// case in data-cleaning pipelines.
package cleaner

import (
	"math"
	"sort"
	"sync"

	"github.com/chile-cleaner/internal/normalizer"
)

// Cleaner resolves region inputs against the fixed INE table. All state is
// read-only after construction, so a single instance may be shared by any
// number of goroutines without locking.
type Cleaner struct {
	regions []Region
	byCode  map[int]Region
	index   map[string]int
}

// New builds a Cleaner from the embedded INE table. It fails if the table is
// malformed or if two regions claim the same normalized variant.
func New() (*Cleaner, error) {
	regions, err := loadRegions()
	if err != nil {
		return nil, err
	}
	index, err := buildIndex(regions)
	if err != nil {
		return nil, err
	}

	byCode := make(map[int]Region, len(regions))
	for _, r := range regions {
		byCode[r.Code] = r
	}
	return &Cleaner{regions: regions, byCode: byCode, index: index}, nil
}

// MustNew is New, panicking on error. The table is embedded at compile time,
// so a failure here is a programmer error, not a runtime condition.
func MustNew() *Cleaner {
	c, err := New()
	if err != nil {
		panic("cleaner: " + err.Error())
	}
	return c
}

// ResolveCode resolves an exact INE code. No normalization is applied.
func (c *Cleaner) ResolveCode(code int) (Result, bool) {
	r, ok := c.byCode[code]
	if !ok {
		return Result{}, false
	}
	return Result{Code: r.Code, OfficialName: r.OfficialName}, true
}

// ResolveText normalizes a textual input (including numeric strings such as
// "13") and looks it up in the reverse index.
func (c *Cleaner) ResolveText(text string) (Result, bool) {
	code, ok := c.index[normalizer.NormalizeKey(text)]
	if !ok {
		return Result{}, false
	}
	return c.ResolveCode(code)
}

// Resolve accepts a string or any integer kind and resolves it to the
// official code and name. Whole-valued floats are treated as codes so that
// JSON numbers (which decode as float64) round-trip cleanly. nil and
// unsupported types are a miss.
func (c *Cleaner) Resolve(input any) (Result, bool) {
	switch v := input.(type) {
	case nil:
		return Result{}, false
	case string:
		return c.ResolveText(v)
	case int:
		return c.ResolveCode(v)
	case int8:
		return c.ResolveCode(int(v))
	case int16:
		return c.ResolveCode(int(v))
	case int32:
		return c.ResolveCode(int(v))
	case int64:
		return c.ResolveCode(int(v))
	case uint:
		return c.ResolveCode(int(v))
	case uint8:
		return c.ResolveCode(int(v))
	case uint16:
		return c.ResolveCode(int(v))
	case uint32:
		return c.ResolveCode(int(v))
	case uint64:
		if v > math.MaxInt {
			return Result{}, false
		}
		return c.ResolveCode(int(v))
	case float32:
		return c.resolveFloat(float64(v))
	case float64:
		return c.resolveFloat(v)
	default:
		return Result{}, false
	}
}

func (c *Cleaner) resolveFloat(v float64) (Result, bool) {
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return Result{}, false
	}
	return c.ResolveCode(int(v))
}

// Validate reports whether the input resolves to a known region.
func (c *Cleaner) Validate(input any) bool {
	_, ok := c.Resolve(input)
	return ok
}

// ListAll returns every region as code and official name, ascending by code.
func (c *Cleaner) ListAll() []Result {
	results := make([]Result, 0, len(c.regions))
	for _, r := range c.regions {
		results = append(results, Result{Code: r.Code, OfficialName: r.OfficialName})
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Code < results[j].Code })
	return results
}

// Regions returns the full table, including variants, in the official
// insertion order. The slice is a copy; the table itself never changes.
func (c *Cleaner) Regions() []Region {
	out := make([]Region, len(c.regions))
	copy(out, c.regions)
	return out
}

var (
	defaultOnce    sync.Once
	defaultCleaner *Cleaner
)

// Default returns a process-wide shared Cleaner, built on first use. It is
// safe for concurrent use because nothing mutates after construction.
func Default() *Cleaner {
	defaultOnce.Do(func() {
		defaultCleaner = MustNew()
	})
	return defaultCleaner
}

// NormalizeRegion resolves a single input against the shared default
// Cleaner. Convenience for callers that do not want to hold an instance.
func NormalizeRegion(input any) (Result, bool) {
	return Default().Resolve(input)
}
