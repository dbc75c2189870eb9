package scan

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/kubedep/kubedep/pkg/finding"
	"github.com/kubedep/kubedep/pkg/sarif"
	"github.com/spf13/afero"
)

func TestController_outputSARIF(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	ctrl := New(afero.NewMemMapFs(), nil, nil, nil, &ParamScan{
		RootDir: "/repo",
		Format:  FormatSARIF,
		Stdout:  buf,
		Version: "1.0.0",
	})
	result := &finding.Result{}
	result.Add(finding.Finding{
		RuleID:   "extensions-v1beta1-workload",
		File:     "deploy/app.yaml",
		Line:     3,
		Severity: finding.SeverityError,
		Message:  "deprecated apiVersion extensions/v1beta1; use apps/v1",
	})
	result.Add(finding.Finding{
		RuleID:   "gomod-stale-k8s-dependencies",
		File:     "go.mod",
		Line:     0,
		Severity: finding.SeverityError,
		Message:  "k8s.io dependencies are older than the 0.18 line; update to a supported release",
	})
	result.Add(finding.Finding{
		RuleID:   "import-apps-v1beta1",
		File:     "main.go",
		Line:     7,
		Severity: finding.SeverityWarning,
		Message:  "deprecated import k8s.io/api/apps/v1beta1; use k8s.io/api/apps/v1",
	})

	if err := ctrl.outputSARIF(result); err != nil {
		t.Fatal(err)
	}

	log := &sarif.Log{}
	if err := json.Unmarshal(buf.Bytes(), log); err != nil {
		t.Fatalf("the SARIF output must be valid JSON: %v", err)
	}
	if len(log.Runs) != 1 {
		t.Fatalf("wanted 1 run, got %d", len(log.Runs))
	}
	run := log.Runs[0]
	if run.Tool.Driver.Name != "kubedep" {
		t.Errorf("unexpected driver name %s", run.Tool.Driver.Name)
	}
	if len(run.Results) != 3 {
		t.Fatalf("wanted 3 results, got %d", len(run.Results))
	}
	if lv := run.Results[0].Level; lv != "error" {
		t.Errorf("wanted level error, got %s", lv)
	}
	if lv := run.Results[2].Level; lv != "warning" {
		t.Errorf("wanted level warning, got %s", lv)
	}
	// File-level findings (line 0) are clamped to the first line in SARIF.
	if l := run.Results[1].Locations[0].PhysicalLocation.Region.StartLine; l != 1 {
		t.Errorf("wanted startLine 1 for a file-level finding, got %d", l)
	}
	if l := run.Results[0].Locations[0].PhysicalLocation.Region.StartLine; l != 3 {
		t.Errorf("wanted startLine 3, got %d", l)
	}
}
