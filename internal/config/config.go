package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all environment-sourced settings.
type Config struct {
	Addr          string `envconfig:"ADDR" default:":8080"`
	DBPath        string `envconfig:"DB_PATH" default:"lostfound.sqlite3"`
	ImagesDir     string `envconfig:"IMAGES_DIR" default:"images"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" default:"admin123"`
	LogPath       string `envconfig:"LOG_PATH"`
}

// InsecureDefaultPassword is the admin password used when ADMIN_PASSWORD is
// unset. Deployments must override it.
const InsecureDefaultPassword = "admin123"

// Load reads configuration from the environment.
func Load() (*Config, error) {
	c := new(Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}
	return c, nil
}
