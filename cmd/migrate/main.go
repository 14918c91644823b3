package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	analyticsconfig "copytrade-analytics/internal/analytics/config"
	pkgconfig "copytrade-analytics/pkg/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"
)

var (
	configPath     string
	migrationsPath string
)

func databaseURL(dbConfig pkgconfig.Database) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		dbConfig.User,
		dbConfig.Password,
		dbConfig.Host,
		dbConfig.Port,
		dbConfig.DBName,
		dbConfig.SSLMode)
}

func newMigrator() *migrate.Migrate {
	cfg, err := analyticsconfig.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	m, err := migrate.New("file://"+migrationsPath, databaseURL(cfg.Database))
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}
	return m
}

func finish(m *migrate.Migrate, err error, success string) {
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("Migration failed: %v", err)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("No pending migrations.")
	} else {
		fmt.Println(success)
	}

	srcErr, dbErr := m.Close()
	if srcErr != nil {
		log.Printf("Migration source error on close: %v\n", srcErr)
	}
	if dbErr != nil {
		log.Printf("Migration database error on close: %v\n", dbErr)
	}
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all available database migrations",
	Run: func(cmd *cobra.Command, args []string) {
		m := newMigrator()
		finish(m, m.Up(), "Applied migrations successfully.")
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the last database migration",
	Run: func(cmd *cobra.Command, args []string) {
		m := newMigrator()
		finish(m, m.Steps(-1), "Reverted last migration successfully.")
	},
}

func main() {
	rootCmd := &cobra.Command{Use: "migrate"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-analytics.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().StringVarP(&migrationsPath, "migrations", "m", "migrations", "Path to the migrations directory")

	rootCmd.AddCommand(upCmd, downCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing migrate CLI: %s\n", err)
		os.Exit(1)
	}
}
