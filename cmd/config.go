package cmd

import "fmt"

// Config carries everything the process reads from the environment: the HTTP
// listener, the database connection, the token secret and the pricing knobs.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret string

	DefaultDeliveryFee int64
	DefaultTaxes       int64
	EarningsRate       float64
	EarningsBaseFee    int64
}

// DSN renders the postgres connection string for gorm.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
