package scan

import (
	"regexp"
	"strings"

	version "github.com/hashicorp/go-version"
	"github.com/kubedep/kubedep/pkg/finding"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

const goModFile = "go.mod"

// Modules whose version encodes the supported Kubernetes release line.
var staleCheckedModules = map[string]struct{}{
	"k8s.io/api":          {},
	"k8s.io/apimachinery": {},
	"k8s.io/client-go":    {},
}

var k8sRequireLine = regexp.MustCompile(`(k8s\.io/[^\s]+)\s+v([^\s]+)`)

// minSupportedMinor is the oldest k8s.io 0.x minor that is not flagged.
const minSupportedMinor = 18

// scanGoMod echoes the k8s.io dependency lines of go.mod and emits one
// ERROR finding when any checked module is pinned older than the supported
// line. The finding is file-level: line number 0.
func (c *Controller) scanGoMod(logE *logrus.Entry, result *finding.Result) {
	c.reporter.Section("Dependencies (go.mod)")
	p := c.absPath(goModFile)
	ok, err := afero.Exists(c.fs, p)
	if err != nil || !ok {
		c.reporter.Notice("no go.mod found, skipping the dependency check")
		return
	}
	lines, err := c.readLines(goModFile)
	if err != nil {
		logerr.WithError(logE, err).Warn("read go.mod")
		return
	}

	stale := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") || !strings.Contains(trimmed, "k8s.io/") {
			continue
		}
		c.reporter.Echo(trimmed)
		m := k8sRequireLine.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		if _, checked := staleCheckedModules[m[1]]; !checked {
			continue
		}
		if isStaleVersion(logE, m[2]) {
			stale = true
		}
	}
	if !stale {
		return
	}
	c.report(result, finding.Finding{
		RuleID:   "gomod-stale-k8s-dependencies",
		File:     goModFile,
		Line:     0,
		Severity: finding.SeverityError,
		Message:  "k8s.io dependencies are older than the 0.18 line; update to a supported release",
	})
}

// isStaleVersion reports whether a k8s.io module version predates the
// supported line. Both tagging schemes are handled: the current 0.x scheme
// (v0.17.0 is 1.17) and the pre-0.x client-go scheme (v11.0.0+incompatible).
func isStaleVersion(logE *logrus.Entry, raw string) bool {
	v, err := version.NewVersion(raw)
	if err != nil {
		logE.WithField("version", raw).WithError(err).Debug("parse a module version")
		return false
	}
	segments := v.Segments()
	if len(segments) < 2 {
		return false
	}
	if segments[0] >= 1 {
		return true
	}
	return segments[1] < minSupportedMinor
}
