package normalizer

import "testing"

func TestNormalizeKey(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Empty", input: "", expected: ""},
		{name: "OnlyWhitespace", input: "   \t\n ", expected: ""},
		{name: "Accented", input: "Valparaíso", expected: "valparaiso"},
		{name: "Enye", input: "Ñuble", expected: "nuble"},
		{name: "MixedCase", input: "RM", expected: "rm"},
		{name: "CollapseSpaces", input: "bio   bio", expected: "bio bio"},
		{name: "TrimAndCollapse", input: "  región   del  Maule ", expected: "region del maule"},
		{name: "Apostrophe", input: "O'Higgins", expected: "o'higgins"},
		{name: "RomanNumeral", input: "VIII región", expected: "viii region"},
		{name: "NumericString", input: " 13 ", expected: "13"},
		{name: "Tabs", input: "los\trios", expected: "los rios"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeKey(tc.input)
			if got != tc.expected {
				t.Errorf("NormalizeKey(%q) = %q, want %q", tc.input, got, tc.expected)
			}
		})
	}
}

func TestNormalizeKeyIdempotent(t *testing.T) {
	inputs := []string{
		"Valparaíso",
		"  Aysén del General   Carlos Ibáñez del Campo ",
		"Ñuble",
		"RM",
		"",
		"región metropolitana",
	}

	for _, in := range inputs {
		once := NormalizeKey(in)
		twice := NormalizeKey(once)
		if once != twice {
			t.Errorf("NormalizeKey not idempotent for %q: first=%q second=%q", in, once, twice)
		}
	}
}

func TestStripDiacritics(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"Tarapacá", "Tarapaca"},
		{"Biobío", "Biobio"},
		{"Magallanes y de la Antártica Chilena", "Magallanes y de la Antartica Chilena"},
		{"sin acentos", "sin acentos"},
	}

	for _, tc := range testCases {
		if got := StripDiacritics(tc.input); got != tc.expected {
			t.Errorf("StripDiacritics(%q) = %q, want %q", tc.input, got, tc.expected)
		}
	}
}
