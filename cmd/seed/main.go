package main

import (
	"context"
	"flag"
	"log"

	"go.mongodb.org/mongo-driver/bson"

	"estatia/internal/adapter/repository"
	"estatia/internal/domain/entity"
	"estatia/internal/infrastructure/mongodb"
	"estatia/pkg/config"
	"estatia/pkg/logger"
)

var users = []*entity.User{
	{Name: "Akshar Madan", Email: "aksharmadan@gmail.com", Role: entity.RoleAgent, Phone: "9876543210"},
	{Name: "John Agent", Email: "agent@example.com", Role: entity.RoleAgent, Phone: "9876543211"},
	{Name: "Buyer One", Email: "buyer@example.com", Role: entity.RoleBuyer, Phone: "9876543212"},
}

var properties = []*entity.Property{
	{
		Title:        "Luxury 3BHK Apartment in Mumbai",
		Description:  "Spacious 3BHK apartment with stunning sea views, modern amenities, and prime location.",
		Price:        12500000,
		Address:      entity.Address{Street: "123 Marine Drive", City: "Mumbai", State: "Maharashtra", ZipCode: "400001", Country: "India"},
		PropertyType: "apartment",
		ListingType:  "sale",
		Bedrooms:     3,
		Bathrooms:    2,
		Area:         1800,
		Amenities:    []string{"parking", "gym", "pool", "security", "24x7 water", "power backup"},
		Featured:     true,
		Status:       entity.PropertyStatusAvailable,
	},
	{
		Title:        "Beautiful Villa in Gurgaon",
		Description:  "Independent villa with garden, perfect for families. Modern architecture with all amenities.",
		Price:        25000000,
		Address:      entity.Address{Street: "456 Golf Course Road", City: "Gurgaon", State: "Haryana", ZipCode: "122001", Country: "India"},
		PropertyType: "villa",
		ListingType:  "sale",
		Bedrooms:     4,
		Bathrooms:    3,
		Area:         3000,
		Amenities:    []string{"parking", "garden", "security", "clubhouse", "power backup"},
		Featured:     true,
		Status:       entity.PropertyStatusAvailable,
	},
	{
		Title:        "Modern 2BHK Apartment for Rent",
		Description:  "Well-maintained 2BHK apartment in prime location, close to IT parks and shopping centers.",
		Price:        35000,
		Address:      entity.Address{Street: "789 Whitefield", City: "Bangalore", State: "Karnataka", ZipCode: "560066", Country: "India"},
		PropertyType: "apartment",
		ListingType:  "rent",
		Bedrooms:     2,
		Bathrooms:    2,
		Area:         1200,
		Amenities:    []string{"parking", "gym", "security", "power backup"},
		Status:       entity.PropertyStatusAvailable,
	},
	{
		Title:        "Commercial Office Space in Delhi",
		Description:  "Premium office space in corporate hub, ideal for IT companies and startups.",
		Price:        8500000,
		Address:      entity.Address{Street: "101 Connaught Place", City: "Delhi", State: "Delhi", ZipCode: "110001", Country: "India"},
		PropertyType: "commercial",
		ListingType:  "sale",
		Bathrooms:    2,
		Area:         2500,
		Amenities:    []string{"parking", "elevator", "24x7 security", "power backup", "cafeteria"},
		Featured:     true,
		Status:       entity.PropertyStatusAvailable,
	},
	{
		Title:        "Cozy 1BHK Apartment Near Metro",
		Description:  "Affordable 1BHK apartment with excellent connectivity to metro and public transport.",
		Price:        18000,
		Address:      entity.Address{Street: "234 Sector 18", City: "Noida", State: "Uttar Pradesh", ZipCode: "201301", Country: "India"},
		PropertyType: "apartment",
		ListingType:  "rent",
		Bedrooms:     1,
		Bathrooms:    1,
		Area:         650,
		Amenities:    []string{"parking", "security", "power backup"},
		Status:       entity.PropertyStatusAvailable,
	},
}

func main() {
	destroy := flag.Bool("d", false, "wipe the users and properties collections and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Setup(cfg.Environment)

	ctx := context.Background()

	db, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Client().Disconnect(ctx)

	for _, name := range []string{"users", "properties", "reviews", "inquiries"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s: %v", name, err)
		}
	}

	if *destroy {
		logger.Info("Data destroyed")
		return
	}

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	userRepo := repository.NewMongoUserRepository(db)
	propertyRepo := repository.NewMongoPropertyRepository(db)

	for _, u := range users {
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatalf("Failed to seed user %s: %v", u.Email, err)
		}
	}

	// All sample listings belong to the first agent.
	owner := users[0].ID
	for _, p := range properties {
		p.Owner = owner
		if err := propertyRepo.Create(ctx, p); err != nil {
			log.Fatalf("Failed to seed property %q: %v", p.Title, err)
		}
	}

	logger.Info("Seeded %d users and %d properties", len(users), len(properties))
}
