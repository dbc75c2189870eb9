package scan

import (
	"context"
	"errors"
	"fmt"

	"github.com/kubedep/kubedep/pkg/config"
	"github.com/kubedep/kubedep/pkg/finding"
	"github.com/sirupsen/logrus"
)

// ErrDeprecatedAPIs is returned when the scan produced at least one finding.
// main maps it to exit code 1 without an error log.
var ErrDeprecatedAPIs = errors.New("deprecated Kubernetes APIs were found")

// Scan runs the whole pipeline and prints the report. It returns
// ErrDeprecatedAPIs if any finding was produced, nil if the tree is clean.
func (c *Controller) Scan(ctx context.Context, logE *logrus.Entry) error {
	if err := c.readConfig(); err != nil {
		return err
	}

	result := &finding.Result{}

	c.reporter.Header()
	c.scanManifests(logE, result)
	c.runAdvancedScan(ctx, logE, result)
	c.scanSources(logE, result)
	c.scanGoMod(logE, result)

	if c.param.Format == FormatSARIF {
		if err := c.outputSARIF(result); err != nil {
			return err
		}
	} else {
		c.reporter.Summary(result)
	}

	if result.Count() > 0 {
		return ErrDeprecatedAPIs
	}
	return nil
}

func (c *Controller) readConfig() error {
	p, err := c.cfgFinder.Find(c.param.ConfigFilePath)
	if err != nil {
		return fmt.Errorf("find a configuration file: %w", err)
	}
	c.param.ConfigFilePath = p
	cfg := &config.Config{}
	if err := c.cfgReader.Read(cfg, c.param.ConfigFilePath); err != nil {
		return fmt.Errorf("read a configuration file: %w", err)
	}
	c.cfg = cfg
	return nil
}

// runAdvancedScan invokes the external detector if one is available.
// The tool's output is surfaced verbatim. A non-zero exit adds exactly one
// finding no matter how many issues the tool itself reported.
func (c *Controller) runAdvancedScan(ctx context.Context, logE *logrus.Entry, result *finding.Result) {
	c.reporter.Section("Advanced scan")
	if c.detector == nil {
		c.reporter.Notice("no external detector found in PATH, skipping the advanced scan")
		return
	}
	out, err := c.detector.Detect(ctx, c.param.RootDir)
	c.reporter.Raw(out)
	if err == nil {
		return
	}
	logE.WithError(err).Debug("external detector exited non-zero")
	result.Add(finding.Finding{
		RuleID:   "advanced-scan",
		File:     c.param.RootDir,
		Line:     0,
		Severity: finding.SeverityError,
		Message:  "the external detector reported deprecated APIs",
	})
}

func (c *Controller) report(result *finding.Result, f finding.Finding) {
	result.Add(f)
	c.reporter.Finding(f)
}
