package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/okra-platform/crudkit/internal/commands"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	short := commit
	if len(commit) > 7 {
		short = commit[:7]
	}

	return fmt.Sprintf("%s (%s) %s", version, short, date)
}

// descriptorFlag returns a fresh --yml flag; flags hold parse state and
// cannot be shared between commands
func descriptorFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "yml",
		Usage: "path to the resource description (default: <descriptors>/<name>.yml)",
	}
}

func main() {
	ctrl := &commands.Controller{
		Flags: &commands.Flags{},
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx := context.Background()

	if err := newApp(ctrl).Run(ctx, os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run crudkit")
	}
}

// newApp builds the command tree around ctrl
func newApp(ctrl *commands.Controller) *cli.Command {
	return &cli.Command{
		Name:    "crudkit",
		Usage:   "Generate Laravel CRUD scaffolding from YAML resource descriptions",
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error, fatal, panic)",
				Sources: cli.EnvVars("CRUDKIT_LOG_LEVEL"),
				Value:   "warn",
			},
			&cli.StringFlag{
				Name:  "project",
				Usage: "Laravel project directory (crudkit.json is searched from here upwards)",
				Value: ".",
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := zerolog.ParseLevel(c.String("log-level"))
			if err != nil {
				return ctx, fmt.Errorf("failed to parse log level: %w", err)
			}

			log.Logger = log.Level(level)
			ctrl.Flags.LogLevel = c.String("log-level")
			ctrl.Flags.Project = c.String("project")

			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:      "make:crud",
				Aliases:   []string{"generate"},
				Usage:     "Generate model, migrations, request, controller, views and route for a resource",
				ArgsUsage: "<name>",
				Flags: []cli.Flag{
					descriptorFlag(),
					&cli.BoolFlag{
						Name:  "replace-route",
						Usage: "replace an existing route registration instead of appending another",
					},
					&cli.BoolFlag{
						Name:  "dry-run",
						Usage: "list the artifacts without writing them",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.MakeCrud(ctx, commands.CrudOptions{
						Name:         c.Args().First(),
						Descriptor:   c.String("yml"),
						ReplaceRoute: c.Bool("replace-route"),
						DryRun:       c.Bool("dry-run"),
					})
				},
			},
			{
				Name:      "make:yaml",
				Aliases:   []string{"init"},
				Usage:     "Create a starter YAML description for a resource",
				ArgsUsage: "[name]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "title",
						Usage: "display name of the resource",
					},
					&cli.BoolFlag{
						Name:  "force",
						Usage: "overwrite an existing description",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.MakeYaml(ctx, commands.YamlOptions{
						Name:  c.Args().First(),
						Title: c.String("title"),
						Force: c.Bool("force"),
					})
				},
			},
			{
				Name:      "watch",
				Usage:     "Regenerate a resource whenever its description changes",
				ArgsUsage: "<name>",
				Flags:     []cli.Flag{descriptorFlag()},
				Action: func(ctx context.Context, c *cli.Command) error {
					return ctrl.Watch(ctx, commands.CrudOptions{
						Name:       c.Args().First(),
						Descriptor: c.String("yml"),
					})
				},
			},
		},
	}
}
