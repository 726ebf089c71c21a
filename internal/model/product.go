package model

// Product categories available in the catalogue.
const (
	CategoryOrganic = "Organic"
	CategoryPlastic = "Plastic"
	CategoryMixed   = "Mixed"
	CategoryPaper   = "Paper"
	CategoryGlass   = "Glass"
	CategoryTextile = "Textile"
)

// Product represents a recycled-goods product in the catalogue.
// Catalogue data is immutable; products are loaded once at startup.
type Product struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	ShortDescription string            `json:"shortDescription"`
	Description      string            `json:"description"`
	Price            float64           `json:"price"`
	OriginalPrice    *float64          `json:"originalPrice,omitempty"`
	Category         string            `json:"category"`
	Rating           float64           `json:"rating"`
	ReviewCount      int               `json:"reviewCount"`
	InStock          bool              `json:"inStock"`
	IsOnSale         bool              `json:"isOnSale"`
	Features         []string          `json:"features,omitempty"`
	Specifications   map[string]string `json:"specifications,omitempty"`
}
