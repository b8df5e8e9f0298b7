// Package seed supplies the static in-memory fixtures the storefront boots
// with: catalog, demo accounts, reviews and a little order history. It is
// an external collaborator of the stores, not part of their logic.
package seed

import (
	"time"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/order"
	"storefront/internal/review"
	"storefront/internal/user"
)

// Categories and Brands back the listing filters.
var Categories = []string{"Footwear", "Electronics", "Clothing", "Accessories", "Home & Garden", "Sports"}

var Brands = []string{"Galaxy Sport", "TechWorld", "Extreme Gear", "SoundExpert", "CozyHome", "FitActive"}

// AdminEmail/AdminPassword are the seeded known credential pair; the same
// account doubles as the storefront admin.
const (
	AdminEmail    = "alex@example.com"
	AdminPassword = "password123"
)

func Products() []catalog.Product {
	return []catalog.Product{
		{
			ID:          1,
			Name:        "Cosmos Futuristic Sneakers",
			Description: "Innovative sneakers with an adaptive sole and neon inserts. Perfect for urban explorers.",
			Price:       12999,
			Category:    "Footwear",
			Brand:       "Galaxy Sport",
			ImageURL:    "https://cdn.example.com/products/cosmos-sneakers.jpg",
			Images: []string{
				"https://cdn.example.com/products/cosmos-sneakers.jpg",
				"https://cdn.example.com/products/cosmos-sneakers-side.jpg",
				"https://cdn.example.com/products/cosmos-sneakers-top.jpg",
			},
			Rating:     4.5,
			NumReviews: 120,
			Stock:      50,
			Characteristics: map[string]string{
				"Upper material": "Textile/Synthetic",
				"Sole":           "Boost foam",
				"Season":         "All-season",
			},
			CreatedAt: time.Date(2023, 8, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          2,
			Name:        "Orion Smart Watch",
			Description: "Multifunctional smart watch with an AMOLED display, GPS and health monitoring. Your personal assistant on the wrist.",
			Price:       19990,
			Category:    "Electronics",
			Brand:       "TechWorld",
			ImageURL:    "https://cdn.example.com/products/orion-watch.jpg",
			Images: []string{
				"https://cdn.example.com/products/orion-watch.jpg",
				"https://cdn.example.com/products/orion-watch-band.jpg",
			},
			Rating:     4.8,
			NumReviews: 250,
			Stock:      30,
			Characteristics: map[string]string{
				"Display":    "1.4\" AMOLED",
				"Battery":    "300 mAh",
				"Protection": "IP68",
			},
			CreatedAt: time.Date(2023, 8, 15, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          3,
			Name:        "Polar Star Jacket",
			Description: "Insulated jacket for extreme conditions. Waterproof and windproof, keeps you warm down to -30°C.",
			Price:       25000,
			Category:    "Clothing",
			Brand:       "Extreme Gear",
			ImageURL:    "https://cdn.example.com/products/polar-star-jacket.jpg",
			Rating:      4.9,
			NumReviews:  95,
			Stock:       20,
			Characteristics: map[string]string{
				"Insulation":  "Goose down 90/10",
				"Membrane":    "Gore-Tex Pro",
				"Temperature": "down to -30°C",
			},
			CreatedAt: time.Date(2023, 9, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			ID:          4,
			Name:        "Aura Wireless Headphones",
			Description: "Headphones with active noise cancellation and crystal-clear sound. Up to 30 hours of battery life.",
			Price:       15500,
			Category:    "Electronics",
			Brand:       "SoundExpert",
			ImageURL:    "https://cdn.example.com/products/aura-headphones.jpg",
			Rating:      4.7,
			NumReviews:  180,
			Stock:       60,
			Characteristics: map[string]string{
				"Type":               "Over-ear, closed",
				"Noise cancellation": "Active (ANC)",
				"Playtime":           "30 h",
			},
			CreatedAt: time.Date(2023, 9, 20, 9, 0, 0, 0, time.UTC),
		},
	}
}

func Users() []user.User {
	return []user.User{
		{
			ID:       1,
			Email:    AdminEmail,
			Password: AdminPassword, // hashed by the user service on create
			FullName: "Alex Ivanov",
			Phone:    "+79001234567",
			Role:     user.RoleAdmin,
			Address: &user.Address{
				Street:  "10 Pushkin St, apt 5",
				City:    "Moscow",
				Zip:     "101000",
				Country: "Russia",
			},
		},
	}
}

func Reviews() []review.Review {
	return []review.Review{
		{
			ID:        "a7c0b1f4-8f2e-4f0c-9a64-0d6a1f2b3c4d",
			ProductID: 1,
			UserID:    2,
			UserName:  "Ivan",
			Rating:    5,
			Comment:   "Great sneakers, very comfortable and stylish!",
			CreatedAt: time.Date(2023, 10, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:        "5b9d2e71-3c44-4d85-b1e9-7f8a6c5d4e3f",
			ProductID: 1,
			UserID:    3,
			UserName:  "Elena",
			Rating:    4,
			Comment:   "Run a little small, but happy overall.",
			CreatedAt: time.Date(2023, 10, 5, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:        "0e1f2a3b-4c5d-6e7f-8a9b-0c1d2e3f4a5b",
			ProductID: 2,
			UserID:    4,
			UserName:  "Sergey",
			Rating:    5,
			Comment:   "The watch is superb, the feature set is excellent.",
			CreatedAt: time.Date(2023, 9, 15, 12, 0, 0, 0, time.UTC),
		},
	}
}

// Orders builds the demo order history for the seeded account from the
// seeded catalog.
func Orders(products []catalog.Product) []order.Order {
	byID := make(map[int]catalog.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	admin := Users()[0]

	first := order.Order{
		ID:     1,
		UserID: admin.ID,
		Items: []cart.Line{
			{Product: byID[1], Quantity: 1},
			{Product: byID[2], Quantity: 1},
		},
		TotalAmount:     byID[1].Price + byID[2].Price,
		Status:          order.StatusDelivered,
		ShippingAddress: *admin.Address,
		CreatedAt:       time.Date(2023, 9, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2023, 9, 6, 10, 0, 0, 0, time.UTC),
	}

	second := order.Order{
		ID:     2,
		UserID: admin.ID,
		Items: []cart.Line{
			{Product: byID[3], Quantity: 1},
		},
		TotalAmount:     byID[3].Price,
		Status:          order.StatusShipped,
		ShippingAddress: *admin.Address,
		CreatedAt:       time.Date(2023, 10, 10, 10, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2023, 10, 11, 10, 0, 0, 0, time.UTC),
	}

	return []order.Order{first, second}
}
