package models

// AnyValue is the sentinel meaning "no constraint" for Type and Rarity.
const AnyValue = "any"

// SearchFilters is the structured search form. Nil CMC pointers are unset.
type SearchFilters struct {
	Name   string
	Colors []string
	Type   string
	Rarity string
	Set    string
	CMC    *float64
	MinCMC *float64
	MaxCMC *float64
}
