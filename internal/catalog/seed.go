package catalog

import (
	"context"

	"github.com/lib/pq"

	"github.com/kanzcollective/storefront-backend/pkg/db/models"
)

// FilterTags is the canonical list of filterable tags shown in the shop UI.
var FilterTags = []string{
	"ridas",
	"bridal ridas",
	"exclusive ridas",
	"bukhoor",
	"festival ridas",
	"night suits",
	"ladies wear",
	"gifts",
	"masallah",
	"sujni",
	"daily rida",
	"ohbat rida",
}

// SeedProducts is the canonical Kanz Collective catalog. Prices are whole
// INR units; position preserves merchandising order for the featured sort.
func SeedProducts() []models.Product {
	return []models.Product{
		{
			ID:               "kc001",
			Name:             "Classic Rida - Pearl White",
			Tags:             pq.StringArray{"ridas", "daily rida"},
			Price:            2499,
			Currency:         "INR",
			Stock:            12,
			Image:            "/images/pearl-rida.jpg",
			ShortDescription: "Comfortable daily rida in breathable fabric.",
			LongDescription:  "Experience elegance in everyday wear with our Classic Pearl White Rida. Made from premium breathable cotton blends, it ensures comfort throughout the day while maintaining a crisp, dignified look. Perfect for daily ohbat and errands.",
			Position:         1,
		},
		{
			ID:               "kc002",
			Name:             "Bridal Rida - Ivory Embroidery",
			Tags:             pq.StringArray{"bridal ridas", "exclusive ridas"},
			Price:            14999,
			Currency:         "INR",
			Stock:            3,
			Image:            "/images/bridal-ivory.jpg",
			ShortDescription: "Hand-embroidered bridal rida with intricate detailing.",
			LongDescription:  "A masterpiece for your special day. This Ivory Bridal Rida features hand-stitched zari work and delicate pearls. Crafted on pure silk, it offers a regal silhouette that celebrates tradition and modernity.",
			Position:         2,
		},
		{
			ID:               "kc003",
			Name:             "Bukhoor - Oud Tradisi",
			Tags:             pq.StringArray{"bukhoor", "gifts"},
			Price:            1200,
			Currency:         "INR",
			Stock:            50,
			Image:            "/images/bukhoor-oud.jpg",
			ShortDescription: "Rich, woody scent for a welcoming home.",
			LongDescription:  "Fill your home with the spiritual aroma of Oud Tradisi. A slow-burning bukhoor chip blend that releases deep, woody notes with hints of sweet amber. Comes in a decorative jar, making it a perfect gift.",
			Position:         3,
		},
		{
			ID:               "kc004",
			Name:             "Festival Rida - Ruby Red",
			Tags:             pq.StringArray{"festival ridas", "ridas"},
			Price:            4500,
			Currency:         "INR",
			Stock:            8,
			Image:            "/images/ruby-rida.jpg",
			ShortDescription: "Vibrant red rida with gold paneling.",
			LongDescription:  "Stand out during festivities with this Ruby Red Rida. The bold color is accented by subtle gold paneling and floral motifs. Lightweight yet structured, ideal for long celebratory events.",
			Position:         4,
		},
		{
			ID:               "kc005",
			Name:             "Silk Night Suit - Floral",
			Tags:             pq.StringArray{"night suits", "ladies wear"},
			Price:            1899,
			Currency:         "INR",
			Stock:            20,
			Image:            "/images/silk-nightsuit.jpg",
			ShortDescription: "Soft satin silk night suit set.",
			LongDescription:  "Indulge in luxury sleepwear. This 2-piece floral night suit is crafted from butter-soft satin silk. Features a relaxed fit button-down shirt and elasticated trousers for maximum comfort.",
			Position:         5,
		},
		{
			ID:               "kc006",
			Name:             "Velvet Masallah - Royal Blue",
			Tags:             pq.StringArray{"masallah", "gifts"},
			Price:            850,
			Currency:         "INR",
			Stock:            15,
			Image:            "/images/velvet-masallah.jpg",
			ShortDescription: "Plush velvet prayer mat.",
			LongDescription:  "Pray with comfort on our Royal Blue Velvet Masallah. Thick padding provides knee support, while the intricate Islamic geometric borders add a touch of reverence to your prayer space.",
			Position:         6,
		},
		{
			ID:               "kc007",
			Name:             "Hand-painted Sujni",
			Tags:             pq.StringArray{"sujni", "exclusive ridas"},
			Price:            3200,
			Currency:         "INR",
			Stock:            5,
			Image:            "/images/sujni-art.jpg",
			ShortDescription: "Traditional quilted sujni with art work.",
			LongDescription:  "A piece of heritage art. This hand-painted Sujni serves as a beautiful throw or a traditional wrap. The quilting is done by hand, ensuring durability and a unique texture.",
			Position:         7,
		},
		{
			ID:               "kc008",
			Name:             "Ohbat Rida - Light Blue",
			Tags:             pq.StringArray{"ohbat rida", "daily rida"},
			Price:            2100,
			Currency:         "INR",
			Stock:            10,
			Image:            "/images/blue-ohbat.jpg",
			ShortDescription: "Simple, elegant rida for religious gatherings.",
			LongDescription:  "Designed specifically for Majlis and Ohbat. The soothing light blue shade represents tranquility. Easy to wash and iron, making it a practical choice for regular use.",
			Position:         8,
		},
		{
			ID:               "kc009",
			Name:             "Embroidered Clutch Bag",
			Tags:             pq.StringArray{"gifts", "ladies wear"},
			Price:            950,
			Currency:         "INR",
			Stock:            25,
			Image:            "/images/clutch-bag.jpg",
			ShortDescription: "Ethnic clutch to match your Rida.",
			LongDescription:  "Complete your ensemble with this embroidered clutch. Spacious enough for a phone and misbah, yet compact and stylish. Available in multiple thread-work colors.",
			Position:         9,
		},
		{
			ID:               "kc010",
			Name:             "Gift Set - Rida & Masallah",
			Tags:             pq.StringArray{"gifts", "exclusive ridas", "masallah"},
			Price:            5500,
			Currency:         "INR",
			Stock:            4,
			Image:            "/images/gift-set.jpg",
			ShortDescription: "A perfect wedding or housewarming gift.",
			LongDescription:  "The ultimate gesture of care. This curated box contains a matching Rida and Masallah set, beautifully packed with a small vial of attar. Ready to gift.",
			Position:         10,
		},
	}
}

// SeedIfEmpty inserts the canonical catalog when the table has no rows.
func SeedIfEmpty(ctx context.Context, repo *Repository) (bool, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if err := repo.Seed(ctx, SeedProducts()); err != nil {
		return false, err
	}
	return true, nil
}
