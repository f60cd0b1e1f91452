package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/okra-platform/crudkit/internal/codegen"
	"github.com/okra-platform/crudkit/internal/config"
)

// Output receives user-facing status lines
type Output interface {
	Printf(format string, args ...any)
	Println(args ...any)
}

type defaultOutput struct {
	w io.Writer
}

func (o *defaultOutput) Printf(format string, args ...any) {
	fmt.Fprintf(o.w, format, args...)
}

func (o *defaultOutput) Println(args ...any) {
	fmt.Fprintln(o.w, args...)
}

// SignalNotifier abstracts os/signal for tests
type SignalNotifier interface {
	Notify(c chan<- os.Signal, sig ...os.Signal)
	Stop(c chan<- os.Signal)
}

type defaultSignalNotifier struct{}

func (defaultSignalNotifier) Notify(c chan<- os.Signal, sig ...os.Signal) {
	signal.Notify(c, sig...)
}

func (defaultSignalNotifier) Stop(c chan<- os.Signal) {
	signal.Stop(c)
}

// ConfigLoader loads the project configuration starting at a directory
type ConfigLoader interface {
	Load(dir string) (*config.Config, string, error)
}

type defaultConfigLoader struct{}

func (defaultConfigLoader) Load(dir string) (*config.Config, string, error) {
	return config.Load(dir)
}

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
	planMark = color.New(color.FgCyan).Sprint("•")
)

// artifactLabels name artifact kinds in status lines
var artifactLabels = map[string]string{
	"model":       "Model",
	"migration":   "Migration",
	"translation": "Translation",
	"request":     "Request",
	"controller":  "Controller",
	"views":       "View",
	"routes":      "Route",
}

func artifactLabel(kind string) string {
	if label, ok := artifactLabels[kind]; ok || kind == "" {
		return label
	}
	return strings.ToUpper(kind[:1]) + kind[1:]
}

// reportArtifact prints one status line per written artifact
func reportArtifact(out Output, a codegen.Artifact) {
	verb := "created"
	if a.Mode == codegen.ModeAppend {
		verb = "appended"
	}
	out.Printf("%s %s %s successfully at: %s\n", okMark, artifactLabel(a.Kind), verb, a.Path)
}
