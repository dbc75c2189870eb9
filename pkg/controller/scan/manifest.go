package scan

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/goccy/go-yaml"
	"github.com/kubedep/kubedep/pkg/finding"
	"github.com/kubedep/kubedep/pkg/rule"
	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
)

// The value is extracted from a YAML line ("apiVersion: apps/v1") or a JSON
// line ("apiVersion": "apps/v1",), with optional quoting.
var (
	apiVersionLine = regexp.MustCompile(`^\s*"?apiVersion"?\s*:\s*["']?([A-Za-z0-9./-]+)`)
	kindLine       = regexp.MustCompile(`^\s*"?kind"?\s*:\s*["']?([A-Za-z0-9]+)`)
)

func (c *Controller) scanManifests(logE *logrus.Entry, result *finding.Result) {
	c.reporter.Section("Manifest files")
	for _, path := range c.searchManifestFiles() {
		logE := logE.WithField("manifest_file", path)
		if err := c.scanManifest(path, result); err != nil {
			logerr.WithError(logE, err).Warn("scan a manifest file")
		}
	}
}

func (c *Controller) scanManifest(path string, result *finding.Result) error {
	lines, err := c.readLines(path)
	if err != nil {
		return err
	}
	for _, r := range rule.ManifestRules() {
		if c.cfg.IgnoresRule(r.ID) {
			continue
		}
		if c.param.Precise {
			c.matchManifestRulePrecise(r, path, lines, result)
			continue
		}
		c.matchManifestRule(r, path, lines, result)
	}
	return nil
}

// matchManifestRule applies the default whole-file semantic: the apiVersion
// and kind conditions are tested independently over all lines, with no
// document-boundary awareness. A multi-document file can therefore match a
// rule across unrelated resources. The finding cites the first matching
// apiVersion line.
func (c *Controller) matchManifestRule(r *rule.ManifestRule, path string, lines []string, result *finding.Result) {
	apiVersionLineNum := 0
	apiVersionValue := ""
	kindMatched := false
	for i, line := range lines {
		if apiVersionLineNum == 0 {
			if m := apiVersionLine.FindStringSubmatch(line); m != nil && r.APIVersion.MatchString(m[1]) {
				apiVersionLineNum = i + 1
				apiVersionValue = m[1]
			}
		}
		if !kindMatched {
			if m := kindLine.FindStringSubmatch(line); m != nil && r.Kind.MatchString(m[1]) {
				kindMatched = true
			}
		}
		if apiVersionLineNum != 0 && kindMatched {
			break
		}
	}
	if apiVersionLineNum == 0 || !kindMatched {
		return
	}
	c.report(result, finding.Finding{
		RuleID:   r.ID,
		File:     path,
		Line:     apiVersionLineNum,
		Severity: finding.SeverityError,
		Message:  fmt.Sprintf("deprecated apiVersion %s; %s", apiVersionValue, r.Replacement),
	})
}

type manifestDoc struct {
	APIVersion string `yaml:"apiVersion"`
	Kind       string `yaml:"kind"`
}

// matchManifestRulePrecise parses the file as a multi-document YAML stream
// and requires apiVersion and kind to match within the same document.
func (c *Controller) matchManifestRulePrecise(r *rule.ManifestRule, path string, lines []string, result *finding.Result) {
	content := []byte(joinLines(lines))
	dec := yaml.NewDecoder(bytes.NewReader(content))
	for {
		doc := &manifestDoc{}
		if err := dec.Decode(doc); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			// Unparsable documents are skipped; the default mode still
			// covers them when precise mode is off.
			return
		}
		if !r.APIVersion.MatchString(doc.APIVersion) || !r.Kind.MatchString(doc.Kind) {
			continue
		}
		c.report(result, finding.Finding{
			RuleID:   r.ID,
			File:     path,
			Line:     findAPIVersionLine(lines, doc.APIVersion),
			Severity: finding.SeverityError,
			Message:  fmt.Sprintf("deprecated apiVersion %s; %s", doc.APIVersion, r.Replacement),
		})
		return
	}
}

func findAPIVersionLine(lines []string, value string) int {
	for i, line := range lines {
		if m := apiVersionLine.FindStringSubmatch(line); m != nil && m[1] == value {
			return i + 1
		}
	}
	return 0
}

func joinLines(lines []string) string {
	var b bytes.Buffer
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Controller) readLines(path string) ([]string, error) {
	f, err := c.fs.Open(c.absPath(path))
	if err != nil {
		return nil, fmt.Errorf("open a file: %w", err)
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	lines := []string{}
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan a file: %w", err)
	}
	return lines, nil
}
