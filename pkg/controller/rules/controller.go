// Package rules implements the 'kubedep rules' command, which prints the
// built-in rule tables in their application order.
package rules

import "io"

type Controller struct {
	stdout io.Writer
}

func New(stdout io.Writer) *Controller {
	return &Controller{stdout: stdout}
}
