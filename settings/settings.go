// Package settings holds the database configuration and its override
// chain: defaults, then a dotenv file, then command line flags.
package settings

import (
	"log/slog"
	"net"
	"net/url"
	"os"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	Database string
	User     string
	Password string
}

func DatabaseDefaults() DatabaseConfig {
	return DatabaseConfig{
		Host:     "localhost",
		Port:     "5432",
		Database: "building_3d_db",
		User:     "postgres",
		Password: "postgres",
	}
}

// LoadEnvFile overlays DB_* values from a dotenv file onto the config.
// A missing file is not an error, the current values stay in effect.
func (c DatabaseConfig) LoadEnvFile(path string) (DatabaseConfig, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("no env file found, using default database settings", "path", path)
			return c, nil
		}
		return c, err
	}

	overlay := map[string]*string{
		"DB_HOST":     &c.Host,
		"DB_PORT":     &c.Port,
		"DB_NAME":     &c.Database,
		"DB_USER":     &c.User,
		"DB_PASSWORD": &c.Password,
	}
	for key, field := range overlay {
		if v, ok := values[key]; ok && v != "" {
			*field = v
		}
	}
	return c, nil
}

// ConnString renders a pgx connection string.
func (c DatabaseConfig) ConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     c.Database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
