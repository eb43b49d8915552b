// Package model defines domain types for fliptrack budgets and expenses.
package model

// ExpenseCategory identifies one renovation cost bucket. The set is closed:
// an expense keeps its category for its entire lifetime and budgets are
// allocated per bucket at project creation.
type ExpenseCategory string

const (
	CategoryStructural       ExpenseCategory = "structural"
	CategoryPlumbing         ExpenseCategory = "plumbing"
	CategoryElectrical       ExpenseCategory = "electrical"
	CategoryHVAC             ExpenseCategory = "hvac"
	CategoryFlooring         ExpenseCategory = "flooring"
	CategoryPainting         ExpenseCategory = "painting"
	CategoryKitchen          ExpenseCategory = "kitchen"
	CategoryBathrooms        ExpenseCategory = "bathrooms"
	CategoryExterior         ExpenseCategory = "exterior"
	CategoryLandscaping      ExpenseCategory = "landscaping"
	CategoryPermits          ExpenseCategory = "permits"
	CategoryLabor            ExpenseCategory = "labor"
	CategoryMaterials        ExpenseCategory = "materials"
	CategoryProfessionalFees ExpenseCategory = "professional_fees"
	CategoryHoldingCosts     ExpenseCategory = "holding_costs"
	CategoryContingency      ExpenseCategory = "contingency"
	CategoryOther            ExpenseCategory = "other"
)

// AllCategories lists every category in canonical order. Budget categories,
// alerts, and reports iterate in this order so output is deterministic.
var AllCategories = []ExpenseCategory{
	CategoryStructural,
	CategoryPlumbing,
	CategoryElectrical,
	CategoryHVAC,
	CategoryFlooring,
	CategoryPainting,
	CategoryKitchen,
	CategoryBathrooms,
	CategoryExterior,
	CategoryLandscaping,
	CategoryPermits,
	CategoryLabor,
	CategoryMaterials,
	CategoryProfessionalFees,
	CategoryHoldingCosts,
	CategoryContingency,
	CategoryOther,
}

var categoryNames = map[ExpenseCategory]string{
	CategoryStructural:       "Structural",
	CategoryPlumbing:         "Plumbing",
	CategoryElectrical:       "Electrical",
	CategoryHVAC:             "HVAC",
	CategoryFlooring:         "Flooring",
	CategoryPainting:         "Painting",
	CategoryKitchen:          "Kitchen",
	CategoryBathrooms:        "Bathrooms",
	CategoryExterior:         "Exterior",
	CategoryLandscaping:      "Landscaping",
	CategoryPermits:          "Permits",
	CategoryLabor:            "Labor",
	CategoryMaterials:        "Materials",
	CategoryProfessionalFees: "Professional Fees",
	CategoryHoldingCosts:     "Holding Costs",
	CategoryContingency:      "Contingency",
	CategoryOther:            "Other",
}

// Valid reports whether c is one of the known categories.
func (c ExpenseCategory) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// DisplayName returns the human-readable label for the category.
func (c ExpenseCategory) DisplayName() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return string(c)
}

// ParseCategory resolves a user-supplied tag to a known category.
func ParseCategory(s string) (ExpenseCategory, bool) {
	c := ExpenseCategory(s)
	return c, c.Valid()
}
