// Package commands contains the CLI commands for the application
package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

type Flags struct {
	LogLevel string
	Project  string
}

type Controller struct {
	Flags *Flags
}

// projectDir returns the absolute directory to search for crudkit.json
func (c *Controller) projectDir() (string, error) {
	dir := "."
	if c.Flags != nil && c.Flags.Project != "" {
		dir = c.Flags.Project
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project directory: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return "", fmt.Errorf("project directory %s: %w", dir, err)
	}
	return abs, nil
}

// MakeCrud generates the CRUD artifact set of one resource
func (c *Controller) MakeCrud(ctx context.Context, opts CrudOptions) error {
	dir, err := c.projectDir()
	if err != nil {
		return err
	}
	return NewCrudCommand(dir, log.Logger).Execute(ctx, opts)
}

// MakeYaml writes a starter description for a resource
func (c *Controller) MakeYaml(ctx context.Context, opts YamlOptions) error {
	dir, err := c.projectDir()
	if err != nil {
		return err
	}
	return NewYamlCommand(dir).Run(ctx, opts)
}

// Watch regenerates a resource whenever its description changes
func (c *Controller) Watch(ctx context.Context, opts CrudOptions) error {
	dir, err := c.projectDir()
	if err != nil {
		return err
	}
	return NewWatchCommand(dir, log.Logger).Execute(ctx, opts)
}
