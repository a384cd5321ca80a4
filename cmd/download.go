package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/royalcat/osmbuildings/bbox"
	"github.com/royalcat/osmbuildings/buildings"
	"github.com/royalcat/osmbuildings/overpass"
)

func downloadCommand() *cli.Command {
	return &cli.Command{
		Name:  "download",
		Usage: "download buildings from the Overpass API and load them into the database",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "bbox",
				Aliases: []string{"b"},
				Value:   bbox.Makkah.String(),
				Usage:   "region as min-lat,min-lon,max-lat,max-lon",
			},
			&cli.IntFlag{
				Name:  "timeout",
				Value: 120,
				Usage: "overpass request timeout in seconds",
			},
		}, dbFlags()...),
		Action: download,
	}
}

func download(ctx *cli.Context) error {
	log := slog.Default()

	box, err := bbox.Parse(ctx.String("bbox"))
	if err != nil {
		return err
	}
	config, err := databaseConfig(ctx)
	if err != nil {
		return err
	}

	log.Info("querying the Overpass API", "bbox", box.String())
	client := overpass.NewClient(time.Duration(ctx.Int("timeout")) * time.Second)
	elements, err := client.Query(ctx.Context, overpass.BuildingsQuery(box))
	if err != nil {
		return fmt.Errorf("downloading OSM data: %w", err)
	}
	log.Info("downloaded elements", "count", len(elements))

	records, report := buildings.Assemble(log, elements)
	log.Info("assembled building records",
		"assembled", report.Assembled, "skipped", len(report.Skipped))

	return loadRecords(ctx, config, records)
}
