// Demo prints a short tour of region normalization: a batch of messy
// real-world inputs followed by the full official table.
package main

import (
	"fmt"

	"github.com/chile-cleaner/cleaner"
)

func main() {
	c := cleaner.MustNew()

	fmt.Println("=== Region Normalization Examples ===")

	examples := []any{
		"valpo",
		"RM",
		"bio bio",
		"Arica",
		"VIII región",
		"Ñuble",
		13,
		"región del maule",
		"Los Lagos",
		"region inexistente",
	}

	for _, example := range examples {
		if result, ok := c.Resolve(example); ok {
			fmt.Printf("%v -> code %d, %s\n", example, result.Code, result.OfficialName)
		} else {
			fmt.Printf("%v -> not found\n", example)
		}
	}

	fmt.Println()
	fmt.Println("=== All Regions ===")
	for _, r := range c.ListAll() {
		fmt.Printf("Code %2d: %s\n", r.Code, r.OfficialName)
	}
}
