package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string
	BaseURL      string
	CORSOrigins  []string
	DisplayPoll  time.Duration // caixa, cozinha, entrega
	MonitorPoll  time.Duration
	SoundEnabled bool
	SeedDemoData bool
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getdur(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func Load() Config {
	_ = godotenv.Load() // load .env if it exists
	cfg := Config{
		Addr:         getenv("POS_ADDR", ":8080"),
		BaseURL:      getenv("POS_BASE_URL", "http://localhost:8080"),
		CORSOrigins:  []string{getenv("POS_CORS_ORIGIN", "*")},
		DisplayPoll:  getdur("POS_DISPLAY_POLL", 5*time.Second),
		MonitorPoll:  getdur("POS_MONITOR_POLL", 3*time.Second),
		SoundEnabled: getbool("POS_SOUND_ENABLED", true),
		SeedDemoData: getbool("POS_SEED_DEMO_DATA", false),
	}
	log.Printf("[config] POS_ADDR=%s", cfg.Addr)
	log.Printf("[config] POS_DISPLAY_POLL=%s POS_MONITOR_POLL=%s", cfg.DisplayPoll, cfg.MonitorPoll)
	return cfg
}
