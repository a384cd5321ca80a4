package main

import (
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/paulmach/orb/geojson"
	"github.com/urfave/cli/v3"

	"github.com/royalcat/osmbuildings/bbox"
	"github.com/royalcat/osmbuildings/buildings"
	"github.com/royalcat/osmbuildings/geofabrik"
	"github.com/royalcat/osmbuildings/osmium"
)

func extractCommand() *cli.Command {
	return &cli.Command{
		Name:  "extract",
		Usage: "extract buildings from a downloaded .osm.pbf with osmium and load them into the database",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "bbox",
				Aliases: []string{"b"},
				Value:   bbox.Makkah.String(),
				Usage:   "region as min-lat,min-lon,max-lat,max-lon",
			},
			&cli.StringFlag{
				Name:  "data-dir",
				Value: "data/makkah",
				Usage: "working directory for downloads and intermediate files",
			},
			&cli.StringFlag{
				Name:  "pbf-url",
				Value: geofabrik.SaudiArabiaURL,
				Usage: "country extract to download",
			},
			&cli.BoolFlag{
				Name:  "skip-download",
				Usage: "use an already downloaded country extract",
			},
		}, dbFlags()...),
		Action: extract,
	}
}

func extract(ctx *cli.Context) error {
	log := slog.Default()

	box, err := bbox.Parse(ctx.String("bbox"))
	if err != nil {
		return err
	}
	config, err := databaseConfig(ctx)
	if err != nil {
		return err
	}
	if err := osmium.Check(ctx.Context); err != nil {
		return err
	}

	dataDir := ctx.String("data-dir")
	pbfURL := ctx.String("pbf-url")
	countryFile := filepath.Join(dataDir, path.Base(pbfURL))

	if ctx.Bool("skip-download") {
		if _, err := os.Stat(countryFile); err != nil {
			return fmt.Errorf("pbf file not found: %s, run without --skip-download to fetch it", countryFile)
		}
	} else if err := geofabrik.Download(ctx.Context, pbfURL, countryFile); err != nil {
		return err
	}

	regionFile := filepath.Join(dataDir, "region-extract.osm.pbf")
	log.Info("extracting region", "bbox", box.String())
	if err := osmium.Extract(ctx.Context, box, countryFile, regionFile); err != nil {
		return err
	}

	configFile := filepath.Join(dataDir, "osmium-config.json")
	if err := osmium.WriteExportConfig(configFile, box); err != nil {
		return err
	}

	featureFile := filepath.Join(dataDir, "buildings.json")
	log.Info("exporting buildings", "output", featureFile)
	if err := osmium.Export(ctx.Context, configFile, regionFile, featureFile); err != nil {
		return err
	}

	raw, err := os.ReadFile(featureFile)
	if err != nil {
		return err
	}
	fc, err := geojson.UnmarshalFeatureCollection(raw)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", featureFile, err)
	}

	records, report := buildings.FromFeatures(log, fc)
	log.Info("assembled building records",
		"assembled", report.Assembled, "skipped", len(report.Skipped))

	return loadRecords(ctx, config, records)
}
