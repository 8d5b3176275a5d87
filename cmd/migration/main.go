package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fadedpez/onexrace/pkg/db/migrations"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	// Define command-line flags
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)

	migrateDB := migrateCmd.String("db", "data/onexrace.db", "Path to SQLite database")
	versionDB := versionCmd.String("db", "data/onexrace.db", "Path to SQLite database")

	// Show usage if no arguments provided
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Parse command
	switch os.Args[1] {
	case "migrate":
		migrateCmd.Parse(os.Args[2:])
		applyMigrations(*migrateDB)

	case "version":
		versionCmd.Parse(os.Args[2:])
		printVersion(*versionDB)

	case "help":
		printUsage()

	default:
		fmt.Printf("Error: Unknown command '%s'\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  go run cmd/migration/main.go migrate [-db PATH]  - Apply pending migrations")
	fmt.Println("  go run cmd/migration/main.go version [-db PATH]  - Show the schema version")
	fmt.Println("  go run cmd/migration/main.go help                - Show this help")
}

func openDB(dbPath string) *sql.DB {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		log.Fatalf("Error creating database directory: %v", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	return db
}

func applyMigrations(dbPath string) {
	db := openDB(dbPath)
	defer db.Close()

	migrator := migrations.NewMigrator(db)
	if err := migrator.MigrateUp(); err != nil {
		log.Fatalf("Error applying migrations: %v", err)
	}

	version, err := migrator.Version()
	if err != nil {
		log.Fatalf("Error reading schema version: %v", err)
	}
	fmt.Printf("Database %s is at schema version %d\n", dbPath, version)
}

func printVersion(dbPath string) {
	db := openDB(dbPath)
	defer db.Close()

	version, err := migrations.NewMigrator(db).Version()
	if err != nil {
		log.Fatalf("Error reading schema version: %v", err)
	}
	fmt.Printf("Database %s is at schema version %d\n", dbPath, version)
}
