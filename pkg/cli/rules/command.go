// Package rules implements the 'kubedep rules' command.
package rules

import (
	"context"
	"io"

	"github.com/kubedep/kubedep/pkg/controller/rules"
	"github.com/urfave/cli/v3"
)

func New(stdout io.Writer) *cli.Command {
	r := &runner{stdout: stdout}
	return r.Command()
}

type runner struct {
	stdout io.Writer
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "List the built-in deprecation rules",
		Description: `List the built-in deprecation rules in their application order.

$ kubedep rules
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, _ *cli.Command) error {
	return rules.New(r.stdout).List() //nolint:wrapcheck
}
