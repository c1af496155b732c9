package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/mtn-stock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/mtn-stock-api/pkg/config"
	"github.com/jhoicas/mtn-stock-api/pkg/logger"
)

var (
	dsnFlag   string
	stepsFlag int
)

var rootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Migraciones del esquema PostgreSQL",
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Aplica todas las migraciones pendientes",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(mg *postgres.Migrator) error { return mg.Up() })
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Revierte migraciones (por defecto una)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(mg *postgres.Migrator) error { return mg.Down(stepsFlag) })
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la versión actual del esquema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(mg *postgres.Migrator) error {
			v, dirty, err := mg.Version()
			if err != nil {
				return err
			}
			cmd.Printf("version=%d dirty=%t\n", v, dirty)
			return nil
		})
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "connection string (por defecto DATABASE_URL / DB_*)")
	downCmd.Flags().IntVarP(&stepsFlag, "steps", "n", 1, "cantidad de migraciones a revertir")
	rootCmd.AddCommand(upCmd, downCmd, versionCmd)
}

func withMigrator(fn func(mg *postgres.Migrator) error) error {
	dsn := dsnFlag
	if dsn == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		dsn = cfg.DB.ConnectionString()
	}
	mg, err := postgres.NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer mg.Close()
	return fn(mg)
}

func main() {
	log := logger.New(logger.Config{Env: os.Getenv("APP_ENV"), Level: "info"}).Named("migrate")
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("migración fallida")
		os.Exit(1)
	}
}
