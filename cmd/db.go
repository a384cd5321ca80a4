package main

import (
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/royalcat/osmbuildings/buildings"
	"github.com/royalcat/osmbuildings/pgdb"
	"github.com/royalcat/osmbuildings/settings"
)

func dbFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "db-host", Usage: "database host"},
		&cli.StringFlag{Name: "db-port", Usage: "database port"},
		&cli.StringFlag{Name: "db-name", Usage: "database name"},
		&cli.StringFlag{Name: "db-user", Usage: "database user"},
		&cli.StringFlag{Name: "db-password", Usage: "database password"},
		&cli.StringFlag{
			Name:      "env",
			Value:     ".env",
			TakesFile: true,
			Usage:     "dotenv file with DB_* overrides",
		},
		&cli.BoolFlag{
			Name:  "init-schema",
			Usage: "create the buildings table if it does not exist",
		},
	}
}

// databaseConfig builds the effective configuration: defaults, then the
// dotenv file, then explicit flags on top.
func databaseConfig(ctx *cli.Context) (settings.DatabaseConfig, error) {
	config, err := settings.DatabaseDefaults().LoadEnvFile(ctx.String("env"))
	if err != nil {
		return config, err
	}

	overlay := map[string]*string{
		"db-host":     &config.Host,
		"db-port":     &config.Port,
		"db-name":     &config.Database,
		"db-user":     &config.User,
		"db-password": &config.Password,
	}
	for flag, field := range overlay {
		if v := ctx.String(flag); v != "" {
			*field = v
		}
	}
	return config, nil
}

func loadRecords(ctx *cli.Context, config settings.DatabaseConfig, records []buildings.Record) error {
	sink, err := pgdb.Connect(ctx.Context, config)
	if err != nil {
		return err
	}
	defer sink.Close()

	if ctx.Bool("init-schema") {
		if err := sink.EnsureSchema(ctx.Context); err != nil {
			return err
		}
	}

	report, err := sink.Load(ctx.Context, records)
	if err != nil {
		return err
	}

	slog.Info("buildings loaded into database",
		"inserted", report.Inserted, "failed", len(report.Failed))
	return nil
}
