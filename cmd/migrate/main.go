package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"

	"loginsvc/internal/adapters/postgres"
	"loginsvc/internal/adapters/sqlite"
	"loginsvc/internal/config"
	"loginsvc/internal/logger"
)

func main() {
	cfg := config.Load()

	cmd := flag.String("op", "", "operation: up, down, version, force")
	steps := flag.Int("steps", 0, "number of steps for up/down (0 = all)")
	driver := flag.String("driver", cfg.StoreDriver, "database driver: postgres, sqlite")
	dsn := flag.String("dsn", "", "postgres url or sqlite path (defaults to DATABASE_URL / SQLITE_PATH)")
	flag.Parse()

	if *cmd == "" {
		fmt.Println("Usage: go run ./cmd/migrate -driver=[postgres|sqlite] -op=[up|down|version|force] -steps=[n] -dsn=[url|path]")
		os.Exit(1)
	}

	m, err := newMigrate(cfg, *driver, *dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	switch *cmd {
	case "up":
		if *steps > 0 {
			err = m.Steps(*steps)
		} else {
			err = m.Up()
		}
	case "down":
		if *steps > 0 {
			err = m.Steps(-(*steps))
		} else {
			err = m.Down()
		}
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Version: %d, Dirty: %v\n", v, dirty)
		return
	case "force":
		if *steps == 0 {
			log.Fatal("please specify version to force")
		}
		err = m.Force(*steps)
	default:
		log.Fatal("unknown command")
	}

	if err != nil {
		if err == migrate.ErrNoChange {
			fmt.Println("No changes detected.")
		} else {
			log.Fatalf("Migration failed: %v", err)
		}
	} else {
		fmt.Println("Migration success!")
	}
}

func newMigrate(cfg *config.Config, driver, dsn string) (*migrate.Migrate, error) {
	switch driver {
	case config.DriverPostgres:
		if dsn == "" {
			dsn = cfg.DatabaseURL
		}
		return postgres.NewMigrate(dsn)
	case config.DriverSqlite:
		if dsn == "" {
			dsn = cfg.SqlitePath
		}
		db, err := sqlite.NewSqliteDB(dsn, logger.Nop())
		if err != nil {
			return nil, err
		}
		return sqlite.NewMigrate(db)
	default:
		return nil, fmt.Errorf("driver %q has no migrations", driver)
	}
}
