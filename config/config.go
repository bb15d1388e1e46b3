package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port        string
	MongoURI    string
	TokenSecret string
	Env         string // "production" hardens the session cookie flags
	CORSOrigins []string
}

var defaultOrigins = []string{
	"http://localhost:5173",
	"https://query-nest.web.app",
	"https://query-nest.firebaseapp.com",
}

// Load reads the environment into a Config. The signing secret is the only
// hard requirement; without it no session can ever be issued or verified.
func Load() (*Config, error) {
	secret := os.Getenv("ACCESS_TOKEN_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("ACCESS_TOKEN_SECRET is not set")
	}

	cfg := &Config{
		Port:        os.Getenv("PORT"),
		MongoURI:    os.Getenv("MONGODB_URI"),
		TokenSecret: secret,
		Env:         os.Getenv("APP_ENV"),
		CORSOrigins: defaultOrigins,
	}

	if cfg.Port == "" {
		cfg.Port = "5000"
	}

	// Assemble the Atlas URI from credentials when no full URI is given.
	if cfg.MongoURI == "" {
		user := os.Getenv("DB_USER")
		pass := os.Getenv("DB_PASS")
		cfg.MongoURI = fmt.Sprintf(
			"mongodb+srv://%s:%s@cluster0.sgvl42h.mongodb.net/?retryWrites=true&w=majority&appName=Cluster0",
			user, pass,
		)
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		var list []string
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				list = append(list, o)
			}
		}
		if len(list) > 0 {
			cfg.CORSOrigins = list
		}
	}

	return cfg, nil
}

// IsProduction reports whether cookies should carry production flags.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
