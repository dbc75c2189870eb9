package rules

import (
	"fmt"
	"text/tabwriter"

	"github.com/kubedep/kubedep/pkg/finding"
	"github.com/kubedep/kubedep/pkg/rule"
)

// List prints one line per rule: ID, severity, and the replacement advice.
func (c *Controller) List() error {
	w := tabwriter.NewWriter(c.stdout, 0, 0, 2, ' ', 0)
	for _, r := range rule.ManifestRules() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, finding.SeverityError, r.Replacement)
	}
	for _, r := range rule.ImportRules() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, finding.SeverityWarning, r.Replacement)
	}
	for _, r := range rule.UsageRules() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.ID, finding.SeverityWarning, r.Replacement)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush the rule table: %w", err)
	}
	return nil
}
