package scan

import (
	"fmt"
	"strings"

	"github.com/kubedep/kubedep/pkg/finding"
	"github.com/kubedep/kubedep/pkg/rule"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

func (c *Controller) scanSources(logE *logrus.Entry, result *finding.Result) {
	c.reporter.Section("Go source files")
	for _, path := range c.searchSourceFiles() {
		logE := logE.WithField("source_file", path)
		if err := c.scanSource(path, result); err != nil {
			logerr.WithError(logE, err).Warn("scan a source file")
		}
	}
}

func (c *Controller) scanSource(path string, result *finding.Result) error {
	lines, err := c.readLines(path)
	if err != nil {
		return err
	}
	for _, r := range rule.ImportRules() {
		if c.cfg.IgnoresRule(r.ID) {
			continue
		}
		c.matchImportRule(r, path, lines, result)
	}
	for _, r := range rule.UsageRules() {
		if c.cfg.IgnoresRule(r.ID) {
			continue
		}
		c.matchUsageRule(r, path, lines, result)
	}
	return nil
}

// matchImportRule searches for the deprecated import path as a literal
// substring and reports the first matching line.
func (c *Controller) matchImportRule(r *rule.ImportRule, path string, lines []string, result *finding.Result) {
	for i, line := range lines {
		if !strings.Contains(line, r.Path) {
			continue
		}
		c.report(result, finding.Finding{
			RuleID:   r.ID,
			File:     path,
			Line:     i + 1,
			Severity: finding.SeverityWarning,
			Message:  fmt.Sprintf("deprecated import %s; %s", r.Path, r.Replacement),
		})
		return
	}
}

// matchUsageRule reports the first line matching a deprecated call pattern.
// Each usage rule matches independently of the others.
func (c *Controller) matchUsageRule(r *rule.UsageRule, path string, lines []string, result *finding.Result) {
	for i, line := range lines {
		m := r.Pattern.FindString(line)
		if m == "" {
			continue
		}
		c.report(result, finding.Finding{
			RuleID:   r.ID,
			File:     path,
			Line:     i + 1,
			Severity: finding.SeverityWarning,
			Message:  fmt.Sprintf("deprecated usage %s; %s", m, r.Replacement),
		})
		return
	}
}
