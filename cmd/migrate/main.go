// Command migrate applies or reverts the SQL migrations in db/migrations against Postgres.
//
//	migrate [-migrations dir] [-seeds dir] up|down|version|seed
package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"dipadubank/internal/config"
	"dipadubank/internal/database"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/lib/pq"
)

func main() {
	migrationsDir := flag.String("migrations", "db/migrations", "directory holding the SQL migrations")
	seedsDir := flag.String("seeds", "db/seeds", "directory holding the seed files")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: migrate [-migrations dir] [-seeds dir] up|down|version|seed")
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *migrationsDir, *seedsDir); err != nil {
		slog.Error("migrate failed", "command", flag.Arg(0), "error", err)
		os.Exit(1)
	}
}

func run(command, migrationsDir, seedsDir string) error {
	cfg := config.Load()
	if cfg.Database.Driver != "postgres" {
		return fmt.Errorf("SQL migrations target postgres, DB_DRIVER is %q", cfg.Database.Driver)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db).WithPaths(migrationsDir, seedsDir)
	if err := runner.WaitForDatabase(); err != nil {
		return err
	}

	switch command {
	case "up":
		return runner.RunMigrations()
	case "down":
		return runner.RollbackMigration()
	case "seed":
		return runner.LoadSeeds()
	case "version":
		version, dirty, err := runner.GetMigrationStatus()
		if errors.Is(err, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
