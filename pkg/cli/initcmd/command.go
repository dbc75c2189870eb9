// Package initcmd implements the 'kubedep init' command, which writes a
// starter .kubedep.yaml so users can set up ignores and extra exclusions.
package initcmd

import (
	"context"

	"github.com/kubedep/kubedep/pkg/cli/flag"
	"github.com/kubedep/kubedep/pkg/controller/initcmd"
	"github.com/kubedep/kubedep/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
)

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{logE: logE}
	return r.Command(globalFlags)
}

type runner struct {
	logE *logrus.Entry
}

func (r *runner) Command(globalFlags *flag.GlobalFlags) *cli.Command {
	var args []string
	return &cli.Command{
		Name:  "init",
		Usage: "Create .kubedep.yaml if it doesn't exist",
		Description: `Create .kubedep.yaml if it doesn't exist

$ kubedep init

You can also pass a configuration file path.

e.g.

$ kubedep init .github/kubedep.yaml
`,
		Action: func(ctx context.Context, c *cli.Command) error {
			return r.action(ctx, globalFlags, args)
		},
		Arguments: []cli.Argument{
			&cli.StringArgs{
				Name:        "path",
				Max:         1,
				Destination: &args,
			},
		},
	}
}

func (r *runner) action(_ context.Context, globalFlags *flag.GlobalFlags, args []string) error {
	log.SetLevel(globalFlags.LogLevel, r.logE)
	configFilePath := ""
	if len(args) != 0 {
		configFilePath = args[0]
	}
	if configFilePath == "" {
		configFilePath = globalFlags.Config
	}
	if configFilePath == "" {
		configFilePath = ".kubedep.yaml"
	}
	return initcmd.New(afero.NewOsFs()).Init(configFilePath) //nolint:wrapcheck
}
