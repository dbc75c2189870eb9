package cli

import (
	"context"
	"io"

	"github.com/kubedep/kubedep/pkg/cli/flag"
	"github.com/kubedep/kubedep/pkg/cli/initcmd"
	"github.com/kubedep/kubedep/pkg/cli/rules"
	"github.com/kubedep/kubedep/pkg/cli/scan"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

type Runner struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
	LDFlags *LDFlags
	LogE    *logrus.Entry
}

type LDFlags struct {
	Version string
	Commit  string
	Date    string
}

func (r *Runner) Run(ctx context.Context, args ...string) error {
	globalFlags := &flag.GlobalFlags{}
	cmd := &cli.Command{
		Name:    "kubedep",
		Usage:   "Scan for deprecated Kubernetes APIs. https://github.com/kubedep/kubedep",
		Version: r.LDFlags.Version + " (" + r.LDFlags.Commit + ")",
		Flags:   globalFlags.Flags(),
		// A bare invocation scans the working directory.
		DefaultCommand:        "scan",
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			scan.New(r.LogE, globalFlags, r.LDFlags.Version, r.Stdout),
			rules.New(r.Stdout),
			initcmd.New(r.LogE, globalFlags),
			r.newVersionCommand(),
		},
	}

	return cmd.Run(ctx, args) //nolint:wrapcheck
}
