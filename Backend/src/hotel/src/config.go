package main

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pborman/getopt/v2"
)

type SaveMode string

const (
	// SaveAppend inserts a new row per room on every save; load keeps the last row.
	SaveAppend SaveMode = "append"
	// SaveReplace deletes every row before inserting, inside the same transaction.
	SaveReplace SaveMode = "replace"
)

type Config struct {
	DBPath          string
	DBDriver        string
	SaveMode        SaveMode
	LogLevel        string
	SearchCacheSize int
	RabbitURL       string
	EventsExchange  string
	ListOnly        bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v, err := strconv.Atoi(getenv(key, "")); err == nil {
		return v
	}
	return def
}

// LoadConfig lee las flags, el .env opcional y luego el entorno.
// Las flags tienen prioridad sobre las variables de entorno.
func LoadConfig(args []string) (Config, error) {
	set := getopt.New()
	dbPath := set.StringLong("db", 'd', "", "Path to the SQLite database file")
	envFile := set.StringLong("env-file", 'e', ".env", "Optional dotenv file")
	listOnly := set.BoolLong("list", 'l', "Print all rooms and exit")
	if err := set.Getopt(args, nil); err != nil {
		return Config{}, err
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, err
	}

	cfg := Config{
		DBPath:          getenv("HOTEL_DB_PATH", "hotel.db"),
		DBDriver:        getenv("HOTEL_DB_DRIVER", driverModernc),
		SaveMode:        SaveMode(strings.ToLower(getenv("HOTEL_SAVE_MODE", string(SaveAppend)))),
		LogLevel:        getenv("HOTEL_LOG_LEVEL", "info"),
		SearchCacheSize: getenvInt("HOTEL_SEARCH_CACHE", defaultSearchCacheSize),
		RabbitURL:       getenv("RABBITMQ_URL", ""),
		EventsExchange:  getenv("HOTEL_EVENTS_EXCHANGE", "hotel.events"),
		ListOnly:        *listOnly,
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}

	switch cfg.SaveMode {
	case SaveAppend, SaveReplace:
	default:
		return Config{}, errors.New("HOTEL_SAVE_MODE must be append or replace")
	}
	switch cfg.DBDriver {
	case driverModernc, driverMattn:
	default:
		return Config{}, errors.New("HOTEL_DB_DRIVER must be sqlite or sqlite3")
	}
	return cfg, nil
}
