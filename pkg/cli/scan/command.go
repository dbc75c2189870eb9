// Package scan implements the 'kubedep scan' command.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kubedep/kubedep/pkg/cli/flag"
	"github.com/kubedep/kubedep/pkg/config"
	"github.com/kubedep/kubedep/pkg/controller/scan"
	"github.com/kubedep/kubedep/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

// Flags holds the command-line flags for the scan command.
type Flags struct {
	Format  string
	Precise bool
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, version string, stdout io.Writer) *cli.Command {
	r := &runner{
		logE:    logE,
		version: version,
		stdout:  stdout,
	}
	return r.Command(globalFlags)
}

type runner struct {
	logE    *logrus.Entry
	version string
	stdout  io.Writer
}

func (r *runner) Command(globalFlags *flag.GlobalFlags) *cli.Command {
	flags := &Flags{}
	return &cli.Command{
		Name:  "scan",
		Usage: "Scan the working directory for deprecated Kubernetes APIs",
		Description: `Scan the working directory for deprecated Kubernetes APIs.

$ kubedep scan

The scan walks manifest files (.yaml, .yml, .json) and Go source files,
matches them against the built-in deprecation rule tables, checks go.mod,
and exits with status 1 if anything was found.
`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return r.action(ctx, globalFlags, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text or sarif)",
				Value:       scan.FormatText,
				Destination: &flags.Format,
			},
			&cli.BoolFlag{
				Name:        "precise",
				Usage:       "match apiVersion and kind within the same YAML document instead of over the whole file",
				Destination: &flags.Precise,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, globalFlags *flag.GlobalFlags, flags *Flags) error {
	log.SetLevel(globalFlags.LogLevel, r.logE)
	if flags.Format != scan.FormatText && flags.Format != scan.FormatSARIF {
		return errors.New("format must be text or sarif")
	}
	pwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get the current directory: %w", err)
	}
	fs := afero.NewOsFs()
	param := &scan.ParamScan{
		RootDir:        pwd,
		ConfigFilePath: globalFlags.Config,
		Format:         flags.Format,
		Precise:        flags.Precise,
		Stdout:         r.stdout,
		Version:        r.version,
	}
	var detector scan.Detector
	if d := scan.NewExecDetector(); d != nil {
		detector = d
	}
	ctrl := scan.New(fs, detector, config.NewFinder(fs), config.NewReader(fs), param)
	return ctrl.Scan(ctx, r.logE) //nolint:wrapcheck
}
