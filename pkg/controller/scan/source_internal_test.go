package scan

import (
	"testing"

	"github.com/kubedep/kubedep/pkg/finding"
	"github.com/spf13/afero"
)

func TestController_scanSource(t *testing.T) { //nolint:funlen
	t.Parallel()
	data := []struct {
		name    string
		content string
		want    []finding.Finding
	}{
		{
			name: "deprecated import",
			content: `package main

import (
	appsv1beta1 "k8s.io/api/apps/v1beta1"
)
`,
			want: []finding.Finding{
				{
					RuleID:   "import-apps-v1beta1",
					File:     "main.go",
					Line:     4,
					Severity: finding.SeverityWarning,
					Message:  "deprecated import k8s.io/api/apps/v1beta1; use k8s.io/api/apps/v1",
				},
			},
		},
		{
			name: "import cited once at its first occurrence",
			content: `package main

import (
	_ "k8s.io/api/extensions/v1beta1"
)

// k8s.io/api/extensions/v1beta1 is mentioned again here.
`,
			want: []finding.Finding{
				{
					RuleID:   "import-extensions-v1beta1",
					File:     "main.go",
					Line:     4,
					Severity: finding.SeverityWarning,
					Message:  "deprecated import k8s.io/api/extensions/v1beta1; use k8s.io/api/apps/v1 or k8s.io/api/networking/v1",
				},
			},
		},
		{
			name: "deprecated scheme registration",
			content: `package main

func register() {
	utilruntime.Must(v1beta1.AddToScheme(scheme))
}
`,
			want: []finding.Finding{
				{
					RuleID:   "usage-beta-scheme-registration",
					File:     "main.go",
					Line:     4,
					Severity: finding.SeverityWarning,
					Message:  "deprecated usage v1beta1.AddToScheme; register the current group version with the scheme",
				},
			},
		},
		{
			name: "deprecated client accessor",
			content: `package main

func deployments() {
	clientset.ExtensionsV1beta1().Deployments("default")
}
`,
			want: []finding.Finding{
				{
					RuleID:   "usage-beta-client-accessor",
					File:     "main.go",
					Line:     4,
					Severity: finding.SeverityWarning,
					Message:  "deprecated usage ExtensionsV1beta1(); use the v1 typed client accessor (e.g. AppsV1(), NetworkingV1())",
				},
			},
		},
		{
			name: "clean source",
			content: `package main

import (
	appsv1 "k8s.io/api/apps/v1"
)
`,
			want: []finding.Finding{},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if err := afero.WriteFile(fs, "/repo/main.go", []byte(d.content), 0o644); err != nil {
				t.Fatal(err)
			}
			ctrl, _ := newTestController(fs, nil, &ParamScan{RootDir: "/repo"})
			result := &finding.Result{}
			if err := ctrl.scanSource("main.go", result); err != nil {
				t.Fatal(err)
			}
			assertFindings(t, d.want, result.Findings)
		})
	}
}
