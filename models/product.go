package models

type Category string

const (
	CategoryMobile   Category = "Mobile Accessories"
	CategoryAudio    Category = "Audio Devices"
	CategorySmart    Category = "Smart Accessories"
	CategoryComputer Category = "Computer Accessories"
	CategoryGaming   Category = "Gaming Accessories"
	CategoryServices Category = "Repair Services"
)

// Categories lists every catalog category in display order.
func Categories() []Category {
	return []Category{
		CategoryMobile,
		CategoryAudio,
		CategorySmart,
		CategoryComputer,
		CategoryGaming,
		CategoryServices,
	}
}

type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    Category          `json:"category"`
	Price       float64           `json:"price"`
	OldPrice    float64           `json:"old_price,omitempty"`
	Rating      float64           `json:"rating"`
	Reviews     int               `json:"reviews"`
	Image       string            `json:"image"`
	Description string            `json:"description"`
	Specs       map[string]string `json:"specs"`
	Stock       int               `json:"stock"`
	IsNew       bool              `json:"is_new,omitempty"`
	IsFeatured  bool              `json:"is_featured,omitempty"`
}
