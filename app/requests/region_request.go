package requests

// ResolveOptions tune a resolve call.
type ResolveOptions struct {
	UseCache bool `json:"use_cache,omitempty"` // Memoize textual resolutions
}

// ResolveRegionRequest resolves a single region input. Region is any JSON
// string or number; numbers are matched against INE codes, strings go
// through normalization. A null or missing region resolves to a miss, not a
// validation error.
type ResolveRegionRequest struct {
	Region  any            `json:"region"`
	Options ResolveOptions `json:"options,omitempty"`
}

// BatchResolveRequest resolves a list of region inputs in order.
type BatchResolveRequest struct {
	Regions []any          `json:"regions" binding:"required,min=1,max=20000"`
	Options ResolveOptions `json:"options,omitempty"`
}
