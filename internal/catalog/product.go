package catalog

import "time"

// Product is an immutable catalog entry. The cart and order flows never
// mutate it; only admin upsert/remove does.
// JSON tags follow the camelCase convention used across the API.
type Product struct {
	ID              int               `json:"productId"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Price           int               `json:"price"`
	Category        string            `json:"category"`
	Brand           string            `json:"brand"`
	ImageURL        string            `json:"imageUrl"`
	Images          []string          `json:"images,omitempty"`
	Rating          float64           `json:"rating"`
	NumReviews      int               `json:"numReviews"`
	Stock           int               `json:"stock"`
	Characteristics map[string]string `json:"characteristics,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// Clone deep-copies the product so callers cannot alias the gallery or
// characteristics of a stored entry.
func (p Product) Clone() Product {
	if p.Images != nil {
		images := make([]string, len(p.Images))
		copy(images, p.Images)
		p.Images = images
	}
	if p.Characteristics != nil {
		chars := make(map[string]string, len(p.Characteristics))
		for k, v := range p.Characteristics {
			chars[k] = v
		}
		p.Characteristics = chars
	}
	return p
}
