package config

import "os"

type Config struct {
	Addr        string
	JWTSecret   string
	SessionFile string
}

func Load() Config {
	addr := os.Getenv("STOREFRONT_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}

	sessionFile := os.Getenv("SESSION_FILE")
	if sessionFile == "" {
		sessionFile = "./session.json"
	}

	return Config{
		Addr:        addr,
		JWTSecret:   secret,
		SessionFile: sessionFile,
	}
}
