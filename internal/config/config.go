package config

import (
	"log"
	"os"
)

type Config struct {
	Addr     string
	DBDSN    string
	FilesDir string
	LogFile  string
}

func Load() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "membergate.db" // sqlite file in project root
	}
	files := os.Getenv("FILES_DIR")
	if files == "" {
		files = "./web/static/files"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Addr: addr, DBDSN: dsn, FilesDir: files, LogFile: logFile}
	log.Printf("[config] ADDR=%s DB_DSN=%s FILES_DIR=%s LOG_FILE=%s", cfg.Addr, cfg.DBDSN, cfg.FilesDir, cfg.LogFile)
	return cfg
}
