// Package models defines client-side data models used by deckkeeper.
package models

// ImageURIs holds the rendered card image links returned by the card database.
type ImageURIs struct {
	Small  string `json:"small"`
	Normal string `json:"normal"`
	Large  string `json:"large"`
	PNG    string `json:"png"`
}

// Prices holds market prices as decimal strings; empty when unknown.
type Prices struct {
	USD     string `json:"usd,omitempty"`
	USDFoil string `json:"usd_foil,omitempty"`
}

// Card is a read-only card record fetched from the remote card database.
// Field names follow the upstream JSON.
type Card struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	ManaCost        string     `json:"mana_cost"`
	CMC             float64    `json:"cmc"`
	TypeLine        string     `json:"type_line"`
	OracleText      string     `json:"oracle_text"`
	Power           string     `json:"power,omitempty"`
	Toughness       string     `json:"toughness,omitempty"`
	Colors          []string   `json:"colors"`
	ColorIdentity   []string   `json:"color_identity"`
	Set             string     `json:"set"`
	SetName         string     `json:"set_name"`
	CollectorNumber string     `json:"collector_number"`
	Rarity          string     `json:"rarity"`
	ImageURIs       *ImageURIs `json:"image_uris,omitempty"`
	Prices          Prices     `json:"prices"`
}

// CardSet describes one printed set.
type CardSet struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	SetType    string `json:"set_type"`
	ReleasedAt string `json:"released_at,omitempty"`
	CardCount  int    `json:"card_count"`
	IconSVGURI string `json:"icon_svg_uri,omitempty"`
}

// SearchResult is one page of search hits.
type SearchResult struct {
	Items      []Card
	HasMore    bool
	TotalCount int
}
