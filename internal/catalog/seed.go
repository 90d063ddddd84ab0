package catalog

import "github.com/shopspring/decimal"

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func oldPrice(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// Seed returns the fixed UrbanStep collection. Order matters: it is the
// default display order of the shop view.
func Seed() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Urban Glide X",
			Price:       price(129),
			Category:    CategorySneakers,
			Gender:      GenderMen,
			Description: "The ultimate urban explorer. Lightweight breathable mesh meets a high-rebound sole for all-day comfort.",
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=800&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1605348532760-6753d2c43329?auto=format&fit=crop&w=800&q=80",
			},
			Sizes:  []float64{7, 8, 9, 10, 11, 12},
			Rating: 4.8,
			IsNew:  true,
		},
		{
			ID:          "2",
			Name:        "Summit Pro Runner",
			Price:       price(159),
			Category:    CategorySports,
			Gender:      GenderMen,
			Description: "Engineered for peak performance. The Summit Pro features advanced cushioning and a carbon-fiber plate for maximum energy return.",
			Image:       "https://images.unsplash.com/photo-1551107644-79bc00366c84?auto=format&fit=crop&w=800&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1551107644-79bc00366c84?auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1560769629-975ec94e6a86?auto=format&fit=crop&w=800&q=80",
			},
			Sizes:  []float64{8, 9, 10, 11},
			Rating: 4.9,
		},
		{
			ID:          "3",
			Name:        "City Walker Classic",
			Price:       price(89),
			Category:    CategoryCasual,
			Gender:      GenderUnisex,
			Description: "Elegance in every step. This classic leather walker is designed for the modern professional who values both style and durability.",
			Image:       "https://images.unsplash.com/photo-1560343090-f0409e92791a?auto=format&fit=crop&w=800&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1560343090-f0409e92791a?auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1449247709967-d4461a6a6103?auto=format&fit=crop&w=800&q=80",
			},
			Sizes:  []float64{7, 7.5, 8, 8.5, 9, 10, 11},
			Rating: 4.5,
		},
		{
			ID:          "4",
			Name:        "Neon Flash Racer",
			Price:       price(110),
			OldPrice:    oldPrice(140),
			Category:    CategorySneakers,
			Gender:      GenderWomen,
			Description: "Make a statement. The Neon Flash uses high-visibility materials and a futuristic silhouette to keep you standing out in the dark.",
			Image:       "https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?auto=format&fit=crop&w=800&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1595950653106-6c9ebd614d3a?auto=format&fit=crop&w=800&q=80",
				"https://images.unsplash.com/photo-1584735175315-9d5df23860e6?auto=format&fit=crop&w=800&q=80",
			},
			Sizes:  []float64{6, 7, 8, 9, 10},
			Rating: 4.7,
			IsSale: true,
		},
		{
			ID:          "5",
			Name:        "Volt Impact Sport",
			Price:       price(145),
			Category:    CategorySports,
			Gender:      GenderMen,
			Description: "Explosive power and control. Optimized for indoor court sports with non-marking soles and lateral stability supports.",
			Image:       "https://images.unsplash.com/photo-1539185441755-769473a23570?auto=format&fit=crop&w=800&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1539185441755-769473a23570?auto=format&fit=crop&w=800&q=80",
			},
			Sizes:  []float64{8, 9, 10, 11, 12, 13},
			Rating: 4.6,
		},
		{
			ID:          "6",
			Name:        "Breeze Slip-on",
			Price:       price(55),
			OldPrice:    oldPrice(75),
			Category:    CategoryCasual,
			Gender:      GenderWomen,
			Description: "Effortless cool. The Breeze is your go-to for weekend brunch or beach strolls. Easy on, easy off, always comfortable.",
			Image:       "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?auto=format&fit=crop&w=800&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77?auto=format&fit=crop&w=800&q=80",
			},
			Sizes:  []float64{5, 6, 7, 8, 9},
			Rating: 4.4,
			IsSale: true,
		},
		{
			ID:          "7",
			Name:        "AeroLift Elite",
			Price:       price(199),
			Category:    CategorySports,
			Gender:      GenderMen,
			Description: "Reach new heights. Our flagship performance shoe, featuring patented AeroLift technology for unmatched vertical response.",
			Image:       "https://images.unsplash.com/photo-1608231387042-66d1773070a5?auto=format&fit=crop&w=800&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1608231387042-66d1773070a5?auto=format&fit=crop&w=800&q=80",
			},
			Sizes:  []float64{9, 10, 11, 12},
			Rating: 5.0,
			IsNew:  true,
		},
		{
			ID:          "8",
			Name:        "Cloud Step Pink",
			Price:       price(95),
			Category:    CategoryCasual,
			Gender:      GenderWomen,
			Description: "Like walking on air. This casual everyday shoe pairs perfectly with leggings or jeans for a relaxed yet refined look.",
			Image:       "https://images.unsplash.com/photo-1460353581641-37baddab0fa2?auto=format&fit=crop&w=800&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1460353581641-37baddab0fa2?auto=format&fit=crop&w=800&q=80",
			},
			Sizes:  []float64{5, 6, 7, 8},
			Rating: 4.3,
			IsNew:  true,
		},
		{
			ID:          "9",
			Name:        "Nova Glow Sneakers",
			Price:       price(135),
			Category:    CategorySneakers,
			Gender:      GenderWomen,
			Description: "Radiate confidence with the Nova Glow. Features reflective accents and a comfort-first interior for nighttime visibility.",
			Image:       "https://images.unsplash.com/photo-1512374382149-4332c6c021f1?auto=format&fit=crop&w=800&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1512374382149-4332c6c021f1?auto=format&fit=crop&w=800&q=80",
			},
			Sizes:  []float64{5, 6, 7, 8},
			Rating: 4.9,
			IsNew:  true,
		},
		{
			ID:          "10",
			Name:        "Terrain X Trail",
			Price:       price(120),
			OldPrice:    oldPrice(150),
			Category:    CategorySports,
			Gender:      GenderMen,
			Description: "Dominate any trail. With aggressive tread and waterproof lining, the Terrain X is your best companion for the outdoors.",
			Image:       "https://images.unsplash.com/photo-1536440136628-849c177e76a1?auto=format&fit=crop&w=800&q=80",
			Images: []string{
				"https://images.unsplash.com/photo-1536440136628-849c177e76a1?auto=format&fit=crop&w=800&q=80",
			},
			Sizes:  []float64{8, 9, 10, 11, 12},
			Rating: 4.7,
			IsSale: true,
		},
	}
}
