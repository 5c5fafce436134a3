package constants

import (
	"strings"
)

type Category string

const (
	Groceries      Category = "Groceries"
	Gas            Category = "Gas"
	Meals          Category = "Meals"
	Travel         Category = "Travel"
	OfficeSupplies Category = "OfficeSupplies"
	Utilities      Category = "Utilities"
	Entertainment  Category = "Entertainment"
	Healthcare     Category = "Healthcare"
	Other          Category = "Other"
)

var allCategories = []Category{
	Groceries,
	Gas,
	Meals,
	Travel,
	OfficeSupplies,
	Utilities,
	Entertainment,
	Healthcare,
	Other,
}

func AsStringSlice() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Other, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"grocery":       Groceries,
		"supermarket":   Groceries,
		"fuel":          Gas,
		"gasoline":      Gas,
		"restaurant":    Meals,
		"dining":        Meals,
		"food":          Meals,
		"hotel":         Travel,
		"airline":       Travel,
		"taxi":          Travel,
		"uber":          Travel,
		"lyft":          Travel,
		"office":        OfficeSupplies,
		"stationery":    OfficeSupplies,
		"electricity":   Utilities,
		"internet":      Utilities,
		"phone":         Utilities,
		"movies":        Entertainment,
		"streaming":     Entertainment,
		"pharmacy":      Healthcare,
		"medical":       Healthcare,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Other, false
}
