package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/shashinthakamunasinghe/eco-cycle-hub/internal/model"
)

// seedCatalog regenerates data/catalog.json from the seed product set.
// Run it after editing the products below:
//
//	go run scripts/seed_catalog.go
func main() {
	dataDir := "data"
	filePath := filepath.Join(dataDir, "catalog.json")

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	document := struct {
		Products []model.Product `json:"products"`
	}{Products: seedProducts()}

	file, err := os.Create(filePath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(document); err != nil {
		log.Fatalf("Failed to write %s: %v", filePath, err)
	}

	fmt.Printf("Wrote %s with %d products\n", filePath, len(document.Products))
}

func seedProducts() []model.Product {
	price := func(v float64) *float64 { return &v }

	return []model.Product{
		{
			ID:               1,
			Name:             "Organic Compost",
			ShortDescription: "Premium organic compost for gardens",
			Description:      "High-quality organic compost made from recycled organic waste. Perfect for gardens, lawns, and potted plants. Rich in nutrients and beneficial microorganisms.",
			Price:            25,
			OriginalPrice:    price(35),
			Category:         model.CategoryOrganic,
			Rating:           4.8,
			ReviewCount:      124,
			InStock:          true,
			IsOnSale:         true,
			Features:         []string{"100% Organic", "Rich in Nutrients", "Eco-Friendly", "Ready to Use"},
			Specifications: map[string]string{
				"Weight":           "25 lbs",
				"Coverage":         "Up to 50 sq ft",
				"pH Level":         "6.5-7.0",
				"Moisture Content": "40-50%",
			},
		},
		{
			ID:               2,
			Name:             "Recycled Plastic Planters",
			ShortDescription: "Durable planters from recycled plastic",
			Description:      "Beautiful and durable planters made from 100% recycled plastic waste. Weather-resistant and perfect for both indoor and outdoor use.",
			Price:            35,
			Category:         model.CategoryPlastic,
			Rating:           4.6,
			ReviewCount:      89,
			InStock:          true,
			Features:         []string{"100% Recycled", "Weather Resistant", "Multiple Sizes", "UV Protected"},
		},
		{
			ID:               3,
			Name:             "Eco-Friendly Storage Boxes",
			ShortDescription: "Storage solutions from recycled materials",
			Description:      "Versatile storage solutions crafted from recycled materials. Perfect for organizing your home while supporting sustainability.",
			Price:            45,
			Category:         model.CategoryMixed,
			Rating:           4.7,
			ReviewCount:      67,
			Features:         []string{"Recycled Materials", "Stackable Design", "Durable", "Multiple Colors"},
		},
		{
			ID:               4,
			Name:             "Recycled Paper Notebooks",
			ShortDescription: "High-quality notebooks from recycled paper",
			Description:      "Premium notebooks made from 100% recycled paper waste. Perfect for students, professionals, and eco-conscious writers.",
			Price:            15,
			OriginalPrice:    price(20),
			Category:         model.CategoryPaper,
			Rating:           4.9,
			ReviewCount:      203,
			InStock:          true,
			IsOnSale:         true,
			Features:         []string{"100% Recycled Paper", "Smooth Writing", "Durable Binding", "Various Sizes"},
		},
		{
			ID:               5,
			Name:             "Recycled Glass Vases",
			ShortDescription: "Beautiful vases from recycled glass",
			Description:      "Elegant vases handcrafted from recycled glass. Each piece is unique and adds a touch of sustainability to your home decor.",
			Price:            28,
			Category:         model.CategoryGlass,
			Rating:           4.5,
			ReviewCount:      45,
			InStock:          true,
			Features:         []string{"Handcrafted", "Unique Design", "Recycled Glass", "Home Decor"},
		},
		{
			ID:               6,
			Name:             "Eco Tote Bags",
			ShortDescription: "Reusable bags from recycled textiles",
			Description:      "Stylish and durable tote bags made from recycled textile waste. Perfect for shopping, work, or everyday use.",
			Price:            18,
			OriginalPrice:    price(25),
			Category:         model.CategoryTextile,
			Rating:           4.7,
			ReviewCount:      156,
			InStock:          true,
			IsOnSale:         true,
			Features:         []string{"Recycled Textiles", "Strong Handles", "Machine Washable", "Multiple Colors"},
		},
	}
}
