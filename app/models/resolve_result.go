package models

// ResolveResult is the outcome of resolving one region input. It is shared
// by the service, cache and HTTP layers. A miss carries Matched=false with
// zero code and empty name; misses are data, not errors.
type ResolveResult struct {
	Input         string `json:"input"`                    // Input echoed back as text
	NormalizedKey string `json:"normalized_key,omitempty"` // Lookup key derived from textual input
	Matched       bool   `json:"matched"`                  // Whether the input resolved to a region
	Code          int    `json:"code,omitempty"`           // Official INE code
	OfficialName  string `json:"official_name,omitempty"`  // Official INE name
}
