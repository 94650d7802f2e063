package cmd

// Config carries every environment-driven setting of the application.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr string

	JWTSecret   string
	JWTTTLHours int

	// DefaultDistanceKm prices shipments between cities with no registered
	// route. Keeps the calculator usable while the route catalog grows.
	DefaultDistanceKm float64
}
