// Package catalog holds the static ElectroHub product catalog. It is
// the source of truth for search, carts and exports; products are never
// mutated at runtime.
package catalog

import "github.com/electrohub/storefront-api/models"

var products = []models.Product{
	{
		ID:          "1",
		Name:        "NitroCharge 65W GaN Charger",
		Category:    models.CategoryMobile,
		Price:       49.99,
		OldPrice:    59.99,
		Rating:      4.8,
		Reviews:     124,
		Image:       "https://picsum.photos/seed/charger1/600/600",
		Description: "High-speed 65W GaN charger with dual USB-C ports. Compact design for travel.",
		Specs:       map[string]string{"Power": "65W", "Port": "2x USB-C", "Tech": "GaN III"},
		Stock:       50,
		IsNew:       true,
		IsFeatured:  true,
	},
	{
		ID:          "2",
		Name:        "SonicWave X7 Hybrid ANC",
		Category:    models.CategoryAudio,
		Price:       129.99,
		Rating:      4.9,
		Reviews:     88,
		Image:       "https://picsum.photos/seed/audio1/600/600",
		Description: "Premium noise-cancelling headphones with 40-hour battery life.",
		Specs:       map[string]string{"Battery": "40h", "Driver": "40mm", "Weight": "250g"},
		Stock:       15,
		IsFeatured:  true,
	},
	{
		ID:          "3",
		Name:        "Titan Gaming Mouse G50",
		Category:    models.CategoryGaming,
		Price:       79.99,
		OldPrice:    99.99,
		Rating:      4.7,
		Reviews:     210,
		Image:       "https://picsum.photos/seed/gaming1/600/600",
		Description: "Ultra-lightweight gaming mouse with customizable RGB and 25k DPI sensor.",
		Specs:       map[string]string{"DPI": "25,600", "Switches": "Optical", "Weight": "63g"},
		Stock:       32,
		IsFeatured:  true,
	},
	{
		ID:          "4",
		Name:        "PixelTrack Watch S2",
		Category:    models.CategorySmart,
		Price:       199.99,
		Rating:      4.5,
		Reviews:     56,
		Image:       "https://picsum.photos/seed/smart1/600/600",
		Description: "Advanced fitness tracker with heart rate, SpO2, and GPS monitoring.",
		Specs:       map[string]string{"Display": "1.4\" AMOLED", "Battery": "10 days", "Waterproof": "5 ATM"},
		Stock:       12,
	},
	{
		ID:          "5",
		Name:        "USB-C Hybrid Hub Pro",
		Category:    models.CategoryComputer,
		Price:       64.99,
		Rating:      4.6,
		Reviews:     42,
		Image:       "https://picsum.photos/seed/hub1/600/600",
		Description: "10-in-1 USB-C hub with HDMI, Ethernet, and SD card slots.",
		Specs:       map[string]string{"Output": "HDMI 4K@60Hz", "Power Delivery": "100W"},
		Stock:       85,
	},
	{
		ID:          "6",
		Name:        "UltraCore Braided Cable 2m",
		Category:    models.CategoryMobile,
		Price:       14.99,
		OldPrice:    19.99,
		Rating:      4.8,
		Reviews:     320,
		Image:       "https://picsum.photos/seed/cable1/600/600",
		Description: "Military-grade braided USB-C cable for fast charging and data sync.",
		Specs:       map[string]string{"Length": "2m", "Max Current": "5A"},
		Stock:       150,
	},
}

// All returns the full catalog in display order. The slice is a copy so
// callers can filter and sort freely.
func All() []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	return out
}

// ByID looks a product up by its stable id.
func ByID(id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
