package config

import (
	"os"
)

type Config struct {
	Port            string
	MongoURI        string
	DBName          string
	BooksServiceURL string
	GoogleBooksURL  string
}

// Load reads configuration from the environment. defaultPort differs per
// service: the books service listens on 5001 by default, the loans service
// on 5002. GoogleBooksURL is empty in production (the client falls back to
// the real API) and is overridden in tests.
func Load(defaultPort string) (*Config, error) {
	return &Config{
		Port:            getEnv("PORT", defaultPort),
		MongoURI:        getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:          getEnv("MONGODB_DB", "library_db"),
		BooksServiceURL: getEnv("BOOKS_SERVICE_URL", "http://localhost:5001"),
		GoogleBooksURL:  getEnv("GOOGLE_BOOKS_URL", ""),
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
