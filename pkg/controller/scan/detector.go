package scan

import (
	"context"
	"os/exec"
)

// detectorBinary is FairwindsOps pluto, the external deprecation detector
// the scan upgrades to when it is installed.
const detectorBinary = "pluto"

type ExecDetector struct {
	binary string
}

// NewExecDetector returns a detector backed by the pluto binary, or nil if
// it is not on PATH. A nil detector downgrades the scan to the built-in
// heuristics with a printed notice.
func NewExecDetector() *ExecDetector {
	p, err := exec.LookPath(detectorBinary)
	if err != nil {
		return nil
	}
	return &ExecDetector{binary: p}
}

// Detect runs the detector against the root and returns its combined
// output. The error is the subprocess exit error; a non-zero exit means the
// tool found deprecated APIs.
func (d *ExecDetector) Detect(ctx context.Context, root string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, d.binary, "detect-files", "-d", root)
	return cmd.CombinedOutput() //nolint:wrapcheck
}
