package codegen

import (
	"time"

	"github.com/okra-platform/crudkit/internal/classify"
	"github.com/okra-platform/crudkit/internal/descriptor"
	"github.com/okra-platform/crudkit/internal/naming"
)

// Synthesizer is the interface that every artifact synthesizer must implement
type Synthesizer interface {
	// Name identifies the artifact kind (e.g., "model", "migration")
	Name() string

	// Synthesize renders the artifacts for one resource. It returns no
	// artifacts when the synthesizer does not apply to the resource.
	Synthesize(in *Input) ([]Artifact, error)
}

// Input is the read-only state shared by all synthesizers of one generation run
type Input struct {
	Resource *descriptor.Resource
	Names    naming.Names
	Fields   *classify.Classification
	Deriver  *naming.Deriver
	Options  Options
}

// Localized reports whether the localization-aware variants are produced
func (in *Input) Localized() bool {
	return in.Fields.HasLocalized()
}

// Options contains project-level settings for code generation
type Options struct {
	// Paths are relative to the project root
	ModelsDir      string
	MigrationsDir  string
	RequestsDir    string
	ControllersDir string
	ViewsDir       string
	RoutesFile     string

	ModelNamespace      string
	RequestNamespace    string
	ControllerNamespace string

	// FileCast is the fully qualified class file columns are cast to
	FileCast string

	// TranslationsTrait is the fully qualified trait that stores per-locale request values
	TranslationsTrait string

	// DataTable is the fully qualified list-view table builder used by controllers
	DataTable string

	// Locales are the tabs of the multilingual form; the first is active by default
	Locales []string

	// Timestamp prefixes migration file names
	Timestamp time.Time
}

// Mode tells the writer how to apply an artifact
type Mode int

const (
	// ModeCreate creates the file or overwrites it
	ModeCreate Mode = iota
	// ModeAppend appends the content to the end of an existing file
	ModeAppend
)

func (m Mode) String() string {
	switch m {
	case ModeAppend:
		return "append"
	default:
		return "create"
	}
}

// Artifact is one piece of generated output
type Artifact struct {
	// Kind is the producing synthesizer's name
	Kind string

	// Path is relative to the project root
	Path string

	Content []byte
	Mode    Mode

	// Key identifies earlier versions of the artifact for a replacing
	// writer. For appended artifacts it is a substring of the lines that
	// register the same thing, which are dropped. For created artifacts it is
	// a glob matching the file name of an earlier version in the same
	// directory, whose path is reused.
	Key string
}
