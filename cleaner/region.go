package cleaner

// Region is one entry of the official INE region table: a stable numeric
// code, the official name, and the free-form spellings accepted for it.
type Region struct {
	Code         int      `yaml:"code" json:"code"`
	OfficialName string   `yaml:"official_name" json:"official_name"`
	Variants     []string `yaml:"variants" json:"variants,omitempty"`
}

// Result is a successful resolution: the official code and name of a region.
type Result struct {
	Code         int    `json:"code"`
	OfficialName string `json:"official_name"`
}
