package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"semtint/cmd/build"
	"semtint/cmd/resolve"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the config file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:    "build",
				Aliases: []string{"b"},
				Usage:   "Embed the reference vocabulary and write the reference store",
				Action:  build.Build,
			},
			{
				Name:      "resolve",
				Aliases:   []string{"r"},
				Usage:     "Resolve a text to its nearest reference color",
				ArgsUsage: "<text>",
				Action:    resolve.Resolve,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
