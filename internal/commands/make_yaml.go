package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/okra-platform/crudkit/internal/descriptor"
	"github.com/okra-platform/crudkit/internal/naming"
)

// YamlOptions are the arguments of make:yaml
type YamlOptions struct {
	Name  string
	Title string
	Force bool
}

type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	MkdirAll(path string, perm os.FileMode) error
	WriteFile(name string, data []byte, perm os.FileMode) error
}

type osFileSystem struct{}

func (fs *osFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

func (fs *osFileSystem) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

func (fs *osFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

type YamlCommand struct {
	dir          string
	configLoader ConfigLoader
	filesystem   FileSystem
	output       Output
	// For testing: if set, skip prompting
	testOptions *YamlOptions
}

func NewYamlCommand(dir string) *YamlCommand {
	return &YamlCommand{
		dir:          dir,
		configLoader: defaultConfigLoader{},
		filesystem:   &osFileSystem{},
		output:       &defaultOutput{w: os.Stdout},
	}
}

func (yc *YamlCommand) Run(ctx context.Context, opts YamlOptions) error {
	return yc.RunWithOptions(ctx, opts)
}

// RunWithOptions prompts for the resource name when opts has none, then
// writes the starter description
func (yc *YamlCommand) RunWithOptions(ctx context.Context, opts YamlOptions, programOpts ...tea.ProgramOption) error {
	cfg, projectRoot, err := yc.configLoader.Load(yc.dir)
	if err != nil {
		return fmt.Errorf("failed to load project config: %w", err)
	}
	dir := filepath.Join(projectRoot, cfg.Descriptors)

	// For testing: use provided options instead of prompting
	if yc.testOptions != nil {
		opts = *yc.testOptions
	} else if opts.Name == "" {
		prompted, err := yc.promptYamlOptions(dir, programOpts...)
		if err != nil {
			return fmt.Errorf("failed to get resource options: %w", err)
		}
		prompted.Force = opts.Force
		opts = *prompted
	}

	if opts.Name == "" {
		return fmt.Errorf("resource name is required")
	}
	if opts.Title == "" {
		opts.Title = naming.NewDeriver(nil).Derive(opts.Name).Title
	}

	path := filepath.Join(dir, DescriptorFileName(opts.Name))
	if _, err := yc.filesystem.Stat(path); err == nil && !opts.Force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	data, err := descriptor.Marshal(descriptor.Starter(opts.Name, opts.Title))
	if err != nil {
		return err
	}

	if err := yc.filesystem.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := yc.filesystem.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	yc.output.Printf("%s YAML file created at: %s\n", okMark, path)
	return nil
}

func (yc *YamlCommand) promptYamlOptions(dir string, opts ...tea.ProgramOption) (*YamlOptions, error) {
	var name, title string

	form := yc.createYamlForm(dir, &name, &title)

	if len(opts) > 0 {
		// For testing: run with provided options
		program := tea.NewProgram(form, opts...)
		if _, err := program.Run(); err != nil {
			return nil, err
		}
	} else {
		if err := form.Run(); err != nil {
			return nil, err
		}
	}

	return &YamlOptions{
		Name:  name,
		Title: title,
	}, nil
}

func (yc *YamlCommand) createYamlForm(dir string, name, title *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Resource name").
				Description("Singular name of the resource, e.g. Post").
				Value(name).
				Validate(func(s string) error {
					return yc.validateName(dir, s)
				}),

			huh.NewInput().
				Title("Title").
				Description("Display name used by the views (optional)").
				Value(title),
		),
	)
}

func (yc *YamlCommand) validateName(dir, name string) error {
	if name == "" {
		return fmt.Errorf("resource name cannot be empty")
	}
	path := filepath.Join(dir, DescriptorFileName(name))
	if _, err := yc.filesystem.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	return nil
}
