package scan

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kubedep/kubedep/pkg/finding"
	"github.com/kubedep/kubedep/pkg/rule"
	"github.com/kubedep/kubedep/pkg/sarif"
)

// outputSARIF writes the findings as a SARIF 2.1.0 document to stdout.
func (c *Controller) outputSARIF(result *finding.Result) error {
	log := sarif.NewLog(sarif.Driver{
		Name:           "kubedep",
		InformationURI: "https://github.com/kubedep/kubedep",
		Version:        c.param.Version,
		Rules:          sarifRules(),
	}, sarifResults(result))

	encoder := json.NewEncoder(c.param.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func sarifRules() []sarif.Rule {
	rules := []sarif.Rule{
		{
			ID:               "advanced-scan",
			ShortDescription: sarif.Message{Text: "External detector reported deprecated APIs"},
		},
		{
			ID:               "gomod-stale-k8s-dependencies",
			ShortDescription: sarif.Message{Text: "k8s.io dependencies predate the supported release line"},
		},
	}
	for _, r := range rule.ManifestRules() {
		rules = append(rules, sarif.Rule{
			ID:               r.ID,
			ShortDescription: sarif.Message{Text: "Deprecated manifest apiVersion/kind; " + r.Replacement},
		})
	}
	for _, r := range rule.ImportRules() {
		rules = append(rules, sarif.Rule{
			ID:               r.ID,
			ShortDescription: sarif.Message{Text: "Deprecated import " + r.Path},
		})
	}
	for _, r := range rule.UsageRules() {
		rules = append(rules, sarif.Rule{
			ID:               r.ID,
			ShortDescription: sarif.Message{Text: "Deprecated usage pattern; " + r.Replacement},
		})
	}
	return rules
}

func sarifResults(result *finding.Result) []sarif.Result {
	results := make([]sarif.Result, 0, result.Count())
	for _, f := range result.Findings {
		line := f.Line
		if line == 0 {
			// SARIF regions are 1-based; file-level findings point at the top.
			line = 1
		}
		results = append(results, sarif.Result{
			RuleID:  f.RuleID,
			Level:   strings.ToLower(string(f.Severity)),
			Message: sarif.Message{Text: f.Message},
			Locations: []sarif.Location{
				{
					PhysicalLocation: sarif.PhysicalLocation{
						ArtifactLocation: sarif.ArtifactLocation{URI: f.File},
						Region:           sarif.Region{StartLine: line},
					},
				},
			},
		})
	}
	return results
}
