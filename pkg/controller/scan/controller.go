// Package scan implements the deprecated Kubernetes API scan.
// The scan is one linear pass: enumerate manifest files, match them against
// the manifest rule table, optionally run an external detector, enumerate Go
// source files, match import and usage rules, check go.mod, and print a
// summary. Nothing is persisted between runs.
package scan

import (
	"context"
	"io"

	"github.com/kubedep/kubedep/pkg/config"
	"github.com/spf13/afero"
)

const (
	FormatText  = "text"
	FormatSARIF = "sarif"
)

type Controller struct {
	fs        afero.Fs
	param     *ParamScan
	detector  Detector
	cfg       *config.Config
	cfgFinder ConfigFinder
	cfgReader ConfigReader
	reporter  *Reporter
}

type ParamScan struct {
	// RootDir is the scan root, normally the working directory.
	RootDir        string
	ConfigFilePath string
	// Format is FormatText or FormatSARIF. SARIF suppresses the text report.
	Format  string
	Precise bool
	Stdout  io.Writer
	Version string
}

// Detector is an optional external deprecation-detection tool. Detect runs
// it against the root and returns its raw output; a non-nil error with
// findings=true means the tool exited non-zero because it found issues.
type Detector interface {
	Detect(ctx context.Context, root string) ([]byte, error)
}

type ConfigFinder interface {
	Find(configFilePath string) (string, error)
}

type ConfigReader interface {
	Read(cfg *config.Config, configFilePath string) error
}

func New(fs afero.Fs, detector Detector, cfgFinder ConfigFinder, cfgReader ConfigReader, param *ParamScan) *Controller {
	out := param.Stdout
	if param.Format == FormatSARIF {
		// The SARIF document is the only stdout output in this mode.
		out = io.Discard
	}
	return &Controller{
		fs:        fs,
		param:     param,
		detector:  detector,
		cfg:       &config.Config{},
		cfgFinder: cfgFinder,
		cfgReader: cfgReader,
		reporter:  NewReporter(out),
	}
}
