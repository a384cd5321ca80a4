package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/royalcat/osmbuildings/internal/logging"

	_ "github.com/KimMachineGun/automemlimit"
	_ "go.uber.org/automaxprocs"
)

func main() {
	app := &cli.App{
		Name:        "osmbuildings",
		Description: "Loads OpenStreetMap building footprints with estimated heights into a PostGIS table",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
			},
		},
		Before: func(ctx *cli.Context) error {
			logging.Setup(ctx.Bool("verbose"))
			return nil
		},
		Commands: []*cli.Command{
			downloadCommand(),
			extractCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
