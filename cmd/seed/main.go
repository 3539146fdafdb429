// Command seed fills a development database with a fake restaurant catalog
// and a fleet of delivery partners, then prints bearer tokens for one user of
// each role so the API can be exercised immediately.
package main

import (
	"context"
	"fmt"
	"os"

	httpin "delivr/internal/adapters/in/http"
	pgadapter "delivr/internal/adapters/out/postgres"
	"delivr/internal/core/domain/model/kernel"
	"delivr/internal/core/domain/model/partner"
	"delivr/internal/core/domain/model/restaurant"
	"delivr/internal/core/ports"

	"github.com/jaswdr/faker"
	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	restaurantCount   = 5
	menuItemsPerPlace = 6
	partnerCount      = 8
)

var fake = faker.New()

// Bangalore-ish bounding box so seeded locations cluster in one city.
const (
	latMin = 12.90
	latMax = 13.05
	lngMin = 77.50
	lngMax = 77.70
)

var vehicleTypes = []partner.VehicleType{
	partner.VehicleBike,
	partner.VehicleScooter,
	partner.VehicleBicycle,
	partner.VehicleCar,
}

var menuCategories = []string{"Starters", "Mains", "Breads", "Desserts", "Beverages"}

var dishNames = []string{
	"Masala Dosa", "Veg Biryani", "Paneer Tikka", "Butter Naan", "Gulab Jamun",
	"Sweet Lassi", "Chicken Biryani", "Dal Makhani", "Idli Sambar", "Filter Coffee",
	"Chole Bhature", "Rava Kesari", "Mysore Pak", "Tandoori Roti", "Mango Lassi",
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, reading environment directly")
	}

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		envOrDefault("DB_HOST", "localhost"),
		envOrDefault("DB_PORT", "5432"),
		envOrDefault("DB_USER", "postgres"),
		envOrDefault("DB_PASSWORD", "postgres"),
		envOrDefault("DB_NAME", "delivr"),
		envOrDefault("DB_SSLMODE", "disable"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	ctx := context.Background()
	uow := pgadapter.NewGormUnitOfWorkFactory(db).Create()

	if err := uow.Begin(ctx); err != nil {
		log.Fatalf("Error starting transaction: %v", err)
	}
	defer uow.Rollback(ctx)

	if err := seedRestaurants(ctx, uow); err != nil {
		log.Fatalf("Error seeding restaurants: %v", err)
	}

	partnerUserID, err := seedPartners(ctx, uow)
	if err != nil {
		log.Fatalf("Error seeding partners: %v", err)
	}

	if err := uow.Commit(ctx); err != nil {
		log.Fatalf("Error committing seed data: %v", err)
	}

	printTokens(partnerUserID)
}

func seedRestaurants(ctx context.Context, uow ports.UnitOfWork) error {
	repo := uow.RestaurantRepository()

	for i := 0; i < restaurantCount; i++ {
		location, err := kernel.NewGeoPoint(
			fake.Float64(4, int(latMin*100), int(latMax*100))/100,
			fake.Float64(4, int(lngMin*100), int(lngMax*100))/100,
		)
		if err != nil {
			return err
		}

		place, err := restaurant.NewRestaurant(
			kernel.NewUUID(),
			fake.Company().Name(),
			fake.Lorem().Word(),
			fake.Address().StreetAddress(),
			location,
			float64(fake.IntBetween(30, 50))/10,
			true,
		)
		if err != nil {
			return err
		}
		if err := repo.Add(ctx, place); err != nil {
			return err
		}

		for j := 0; j < menuItemsPerPlace; j++ {
			item, err := restaurant.NewMenuItem(
				kernel.NewUUID(),
				place.ID(),
				dishNames[(i*menuItemsPerPlace+j)%len(dishNames)],
				fake.Lorem().Sentence(6),
				int64(fake.IntBetween(80, 450)),
				menuCategories[j%len(menuCategories)],
				fake.Bool(),
				true,
			)
			if err != nil {
				return err
			}
			if err := repo.AddMenuItem(ctx, item); err != nil {
				return err
			}
		}

		fmt.Printf("restaurant %s (%s)\n", place.Name(), place.ID())
	}

	return nil
}

func seedPartners(ctx context.Context, uow ports.UnitOfWork) (kernel.UUID, error) {
	repo := uow.PartnerRepository()

	var firstUserID kernel.UUID
	for i := 0; i < partnerCount; i++ {
		userID := kernel.NewUUID()
		if i == 0 {
			firstUserID = userID
		}

		p, err := partner.NewDeliveryPartner(
			kernel.NewUUID(),
			userID,
			vehicleTypes[i%len(vehicleTypes)],
			fmt.Sprintf("KA%02d%s%d", fake.IntBetween(1, 60), "AB", fake.IntBetween(1000, 9999)),
			fmt.Sprintf("DL-%d", fake.IntBetween(100000, 999999)),
		)
		if err != nil {
			return kernel.UUID{}, err
		}
		if err := repo.Add(ctx, p); err != nil {
			return kernel.UUID{}, err
		}

		fmt.Printf("partner %s user=%s vehicle=%s\n", p.ID(), userID, p.VehicleType())
	}

	return firstUserID, nil
}

func printTokens(partnerUserID kernel.UUID) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		fmt.Println("JWT_SECRET not set, skipping token generation")
		return
	}

	auth := httpin.NewAuthenticator(secret)

	for _, entry := range []struct {
		role   kernel.Role
		userID kernel.UUID
	}{
		{kernel.RoleCustomer, kernel.NewUUID()},
		{kernel.RoleDeliveryPartner, partnerUserID},
		{kernel.RoleAdmin, kernel.NewUUID()},
	} {
		token, err := auth.IssueToken(entry.userID, entry.role)
		if err != nil {
			log.Fatalf("Error issuing token: %v", err)
		}
		fmt.Printf("%s token (user %s):\n%s\n\n", entry.role, entry.userID, token)
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
