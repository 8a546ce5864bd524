package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/sharansub/screensaway/internal/config"
	"github.com/sharansub/screensaway/internal/db"
)

func main() {
	var (
		command = flag.String("command", "up", "Migration command: up, down, version")
		path    = flag.String("path", "migrations", "Path to migration files")
	)
	flag.Parse()

	cfg := config.Load()
	database := db.MustLoad(cfg)
	defer database.Close()

	driver, err := migratepg.WithInstance(database, &migratepg.Config{})
	if err != nil {
		log.Fatalf("failed to create migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+*path, cfg.Database.DBName, driver)
	if err != nil {
		log.Fatalf("failed to create migrator: %v", err)
	}

	switch *command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("migration up failed: %v", err)
		}
		log.Println("migrations applied")
	case "down":
		if err := m.Steps(-1); err != nil {
			log.Fatalf("migration down failed: %v", err)
		}
		log.Println("rolled back one migration")
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("failed to read version: %v", err)
		}
		fmt.Printf("version: %d, dirty: %v\n", version, dirty)
	default:
		log.Fatalf("unknown command: %s", *command)
	}
}
