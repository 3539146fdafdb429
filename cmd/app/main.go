package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"delivr/cmd"
	httpin "delivr/internal/adapters/in/http"
	"delivr/internal/adapters/out/postgres/orderrepo"
	"delivr/internal/adapters/out/postgres/partnerrepo"
	"delivr/internal/adapters/out/postgres/restaurantrepo"
	"delivr/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, db)

	settler, err := app.CreateDeliverySettler()
	if err != nil {
		log.Fatalf("Error building delivery settler: %v", err)
	}

	server := httpin.NewServer(
		httpin.NewAuthenticator(configs.JWTSecret),
		configs.DefaultDeliveryFee,
		configs.DefaultTaxes,
		app.CreateCreateOrderCommandHandler(),
		app.CreateClaimOrderCommandHandler(),
		app.CreateAdvanceOrderStatusCommandHandler(settler),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateUpdatePartnerLocationCommandHandler(),
		app.CreateUpdatePartnerStatusCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersQueryHandler(),
		app.CreateGetClaimableOrdersQueryHandler(),
		app.CreateGetAssignedOrdersQueryHandler(),
		app.CreateGetPartnerProfileQueryHandler(),
		app.CreateListPartnersQueryHandler(),
		app.CreateGetDashboardQueryHandler(),
		app.CreateGetAnalyticsQueryHandler(),
	)

	jobManager := jobs.NewJobManager(
		app.CreateResetPartnerEarningsCommandHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(server, configs.HTTPPort)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&restaurantrepo.RestaurantDTO{},
		&restaurantrepo.MenuItemDTO{},
		&partnerrepo.PartnerDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded, reading environment directly")
	}

	return cmd.Config{
		HTTPPort:   envOrDefault("HTTP_PORT", "8080"),
		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     envOrDefault("DB_USER", "postgres"),
		DBPassword: envOrDefault("DB_PASSWORD", "postgres"),
		DBName:     envOrDefault("DB_NAME", "delivr"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),

		JWTSecret: mustEnv("JWT_SECRET"),

		DefaultDeliveryFee: envInt64("DEFAULT_DELIVERY_FEE", 40),
		DefaultTaxes:       envInt64("DEFAULT_TAXES", 0),
		EarningsRate:       envFloat("EARNINGS_RATE", 0.10),
		EarningsBaseFee:    envInt64("EARNINGS_BASE_FEE", 50),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Missing required environment variable %s", key)
	}
	return value
}

func envInt64(key string, fallback int64) int64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func envFloat(key string, fallback float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func startWebServer(server *httpin.Server, port string) {
	e := echo.New()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
