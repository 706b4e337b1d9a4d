package config // package config loads application configuration from environment variables

import (
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "strings"

    "github.com/joho/godotenv" // optional .env file support
)

// Defaults applied when a variable is unset or invalid.
const (
    DefaultTicketPriceCents  = 1000
    DefaultMaxTicketsPerSale = 50
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every variable is optional; invalid values fall
// back to the defaults so a bare terminal session always starts.
type Config struct {
    Env               string // application environment (e.g. "dev", "prod")
    TicketPriceCents  int64  // starting ticket price in cents
    MaxTicketsPerSale int    // upper bound for tickets in a single sale
    Seed              uint64 // seed for the number draw; 0 means random
    LogLevel          string // logrus level name
    LogFormat         string // "text" or "json"
}

// Load reads an optional .env file from the working directory and then
// builds a Config from the environment.  Variables already present in the
// environment take precedence over the file.
func Load() Config {
    _ = godotenv.Load() // missing .env is not an error
    return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
    cfg := Config{
        Env:               envStr("APP_ENV", "dev"),
        TicketPriceCents:  int64(envInt("RAFFLE_TICKET_PRICE_CENTS", DefaultTicketPriceCents)),
        MaxTicketsPerSale: envInt("RAFFLE_MAX_TICKETS_PER_SALE", DefaultMaxTicketsPerSale),
        Seed:              envUint("RAFFLE_SEED", 0),
        LogLevel:          strings.ToLower(envStr("LOG_LEVEL", "warn")),
        LogFormat:         strings.ToLower(envStr("LOG_FORMAT", "text")),
    }
    if cfg.TicketPriceCents <= 0 { cfg.TicketPriceCents = DefaultTicketPriceCents }
    if cfg.MaxTicketsPerSale < 1 { cfg.MaxTicketsPerSale = DefaultMaxTicketsPerSale }
    return cfg
}

func envStr(k, d string) string { if v := strings.TrimSpace(os.Getenv(k)); v != "" { return v }; return d }
func envInt(k string, d int) int {
    v := strings.TrimSpace(os.Getenv(k)); if v == "" { return d }
    if n, err := strconv.Atoi(v); err == nil { return n }
    return d
}
func envUint(k string, d uint64) uint64 {
    v := strings.TrimSpace(os.Getenv(k)); if v == "" { return d }
    if n, err := strconv.ParseUint(v, 10, 64); err == nil { return n }
    return d
}
