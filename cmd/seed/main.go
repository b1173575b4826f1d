// Command seed wipes and repopulates the experiences and promo codes
// collections with the launch catalog.
package main

import (
	"log"

	"github.com/sHubh-blip/hd-booking/config"
	"github.com/sHubh-blip/hd-booking/database"
	experienceRepoPkg "github.com/sHubh-blip/hd-booking/database/repository/experience"
	promoRepoPkg "github.com/sHubh-blip/hd-booking/database/repository/promo"
	"github.com/sHubh-blip/hd-booking/models"

	"github.com/google/uuid"
)

var experiences = []models.Experience{
	{
		Title:       "Kayaking",
		Location:    "Udupi",
		Description: "Curated small-group experience. Certified guide. Safety first with gear included. Helmet and Life jackets along with an expert will accompany in kayaking.",
		Price:       999,
		Image:       "https://images.unsplash.com/photo-1544551763-46a013bb70d5?w=800&h=600&fit=crop",
		Slots: []models.Slot{
			{Date: "2025-10-22", Time: "07:00 am", Available: 4},
			{Date: "2025-10-22", Time: "9:00 am", Available: 2},
			{Date: "2025-10-22", Time: "11:00 am", Available: 5},
			{Date: "2025-10-22", Time: "1:00 pm", Available: 0, SoldOut: true},
			{Date: "2025-10-23", Time: "07:00 am", Available: 6},
			{Date: "2025-10-23", Time: "9:00 am", Available: 3},
			{Date: "2025-10-24", Time: "07:00 am", Available: 5},
			{Date: "2025-10-24", Time: "9:00 am", Available: 4},
			{Date: "2025-10-25", Time: "07:00 am", Available: 7},
			{Date: "2025-10-26", Time: "07:00 am", Available: 5},
		},
	},
	{
		Title:       "Nandi Hills Sunrise",
		Location:    "Bangalore",
		Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
		Price:       899,
		Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop",
		Slots: []models.Slot{
			{Date: "2025-10-22", Time: "05:00 am", Available: 8},
			{Date: "2025-10-23", Time: "05:00 am", Available: 6},
			{Date: "2025-10-24", Time: "05:00 am", Available: 5},
			{Date: "2025-10-25", Time: "05:00 am", Available: 7},
			{Date: "2025-10-26", Time: "05:00 am", Available: 4},
		},
	},
	{
		Title:       "Coffee Trail",
		Location:    "Coorg",
		Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
		Price:       1299,
		Image:       "https://images.unsplash.com/photo-1447933601403-0c6688de566e?w=800&h=600&fit=crop",
		Slots: []models.Slot{
			{Date: "2025-10-22", Time: "08:00 am", Available: 5},
			{Date: "2025-10-23", Time: "08:00 am", Available: 4},
			{Date: "2025-10-24", Time: "08:00 am", Available: 6},
			{Date: "2025-10-25", Time: "08:00 am", Available: 3},
			{Date: "2025-10-26", Time: "08:00 am", Available: 5},
		},
	},
	{
		Title:       "Boat Cruise",
		Location:    "Sunderban",
		Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
		Price:       999,
		Image:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800&h=600&fit=crop",
		Slots: []models.Slot{
			{Date: "2025-10-22", Time: "10:00 am", Available: 10},
			{Date: "2025-10-23", Time: "10:00 am", Available: 8},
			{Date: "2025-10-24", Time: "10:00 am", Available: 9},
			{Date: "2025-10-25", Time: "10:00 am", Available: 7},
			{Date: "2025-10-26", Time: "10:00 am", Available: 6},
		},
	},
	{
		Title:       "Bunjee Jumping",
		Location:    "Manali",
		Description: "Curated small-group experience. Certified guide. Safety first with gear included.",
		Price:       999,
		Image:       "https://images.unsplash.com/photo-1551524164-6cf77f8e1f48?w=800&h=600&fit=crop",
		Slots: []models.Slot{
			{Date: "2025-10-22", Time: "09:00 am", Available: 3},
			{Date: "2025-10-23", Time: "09:00 am", Available: 2},
			{Date: "2025-10-24", Time: "09:00 am", Available: 4},
			{Date: "2025-10-25", Time: "09:00 am", Available: 5},
			{Date: "2025-10-26", Time: "09:00 am", Available: 3},
		},
	},
}

var promoCodes = []models.PromoCode{
	{Code: "SAVE10", Discount: 10, DiscountType: models.DiscountTypePercentage, Valid: true},
	{Code: "FLAT100", Discount: 100, DiscountType: models.DiscountTypeFixed, Valid: true},
	{Code: "WELCOME20", Discount: 20, DiscountType: models.DiscountTypePercentage, Valid: true},
}

func main() {
	config.LoadConfig()
	database.InitDB()

	experienceRepo := experienceRepoPkg.NewMongoExperienceRepo()
	promoRepo := promoRepoPkg.NewMongoPromoRepo()

	// Clear existing data.
	if err := experienceRepo.DeleteAll(); err != nil {
		log.Fatalf("failed to clear experiences: %v", err)
	}
	if err := promoRepo.DeleteAll(); err != nil {
		log.Fatalf("failed to clear promo codes: %v", err)
	}

	for i := range experiences {
		experiences[i].ID = uuid.New().String()
		if err := experienceRepo.Insert(&experiences[i]); err != nil {
			log.Fatalf("failed to insert experience %q: %v", experiences[i].Title, err)
		}
	}
	log.Printf("Inserted %d experiences", len(experiences))

	for i := range promoCodes {
		promoCodes[i].ID = uuid.New().String()
		if err := promoRepo.Insert(&promoCodes[i]); err != nil {
			log.Fatalf("failed to insert promo code %q: %v", promoCodes[i].Code, err)
		}
	}
	log.Printf("Inserted %d promo codes", len(promoCodes))

	log.Println("Database seeded successfully!")
}
