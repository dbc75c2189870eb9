package scan

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/kubedep/kubedep/pkg/config"
	"github.com/kubedep/kubedep/pkg/finding"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

func assertFindings(t *testing.T, want, got []finding.Finding) {
	t.Helper()
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("unexpected findings (-want +got):\n%s", diff)
	}
}

func testLogE() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func newTestController(fs afero.Fs, detector Detector, param *ParamScan) (*Controller, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	param.Stdout = buf
	if param.Format == "" {
		param.Format = FormatText
	}
	ctrl := New(fs, detector, config.NewFinder(fs), config.NewReader(fs), param)
	return ctrl, buf
}

type fakeDetector struct {
	out []byte
	err error
}

func (d *fakeDetector) Detect(_ context.Context, _ string) ([]byte, error) {
	return d.out, d.err
}

func TestController_Scan_emptyTree(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/repo", 0o755); err != nil {
		t.Fatal(err)
	}
	ctrl, buf := newTestController(fs, nil, &ParamScan{RootDir: "/repo"})
	if err := ctrl.Scan(t.Context(), testLogE()); err != nil {
		t.Fatalf("a clean tree must not return an error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "No deprecated APIs found!") {
		t.Errorf("missing success message in output:\n%s", out)
	}
}

func TestController_Scan_endToEnd(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/repo/deploy/app.yaml": `apiVersion: apps/v1beta1
kind: Deployment
metadata:
  name: app
`,
		"/repo/main.go": `package main

import (
	_ "k8s.io/api/extensions/v1beta1"
)
`,
	}
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	ctrl, buf := newTestController(fs, nil, &ParamScan{RootDir: "/repo"})
	err := ctrl.Scan(t.Context(), testLogE())
	if !errors.Is(err, ErrDeprecatedAPIs) {
		t.Fatalf("wanted ErrDeprecatedAPIs, got %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Found 2 potential issue(s)") {
		t.Errorf("missing summary count in output:\n%s", out)
	}
	if got := strings.Count(out, "ERROR"); got != 1 {
		t.Errorf("wanted 1 ERROR marker, got %d:\n%s", got, out)
	}
	if got := strings.Count(out, "WARNING"); got != 1 {
		t.Errorf("wanted 1 WARNING marker, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "deploy/app.yaml:1") {
		t.Errorf("the ERROR must cite the apiVersion line:\n%s", out)
	}
}

func TestController_Scan_idempotent(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/repo/app.yaml", []byte("apiVersion: extensions/v1beta1\nkind: Ingress\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	run := func() string {
		ctrl, buf := newTestController(fs, nil, &ParamScan{RootDir: "/repo"})
		if err := ctrl.Scan(t.Context(), testLogE()); !errors.Is(err, ErrDeprecatedAPIs) {
			t.Fatalf("wanted ErrDeprecatedAPIs, got %v", err)
		}
		return buf.String()
	}
	first := run()
	second := run()
	if first != second {
		t.Errorf("two runs over an unchanged tree must print identical reports:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestController_Scan_excludedDirsNeverContribute(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"/repo/vendor/app.yaml":      "apiVersion: extensions/v1beta1\nkind: Deployment\n",
		"/repo/node_modules/app.yml": "apiVersion: extensions/v1beta1\nkind: Deployment\n",
		"/repo/testdata/app.yaml":    "apiVersion: extensions/v1beta1\nkind: Deployment\n",
		"/repo/.git/app.yaml":        "apiVersion: extensions/v1beta1\nkind: Deployment\n",
		"/repo/vendor/pkg/client.go": `import _ "k8s.io/api/apps/v1beta1"`,
		"/repo/.git/hooks/sample.go": `import _ "k8s.io/api/apps/v1beta1"`,
	}
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	ctrl, buf := newTestController(fs, nil, &ParamScan{RootDir: "/repo"})
	if err := ctrl.Scan(t.Context(), testLogE()); err != nil {
		t.Fatalf("excluded directories must not contribute findings: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "No deprecated APIs found!") {
		t.Errorf("missing success message:\n%s", out)
	}
}

func TestController_Scan_detectorAddsExactlyOneFinding(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		det     *fakeDetector
		wantErr bool
	}{
		{
			name: "non-zero exit counts once regardless of tool findings",
			det: &fakeDetector{
				out: []byte("apps/v1beta1 Deployment x\napps/v1beta1 Deployment y\nextensions/v1beta1 Ingress z\n"),
				err: errors.New("exit status 3"),
			},
			wantErr: true,
		},
		{
			name: "zero exit adds nothing",
			det: &fakeDetector{
				out: []byte("No deprecated apiVersions found\n"),
			},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			fs := afero.NewMemMapFs()
			if err := fs.MkdirAll("/repo", 0o755); err != nil {
				t.Fatal(err)
			}
			ctrl, buf := newTestController(fs, d.det, &ParamScan{RootDir: "/repo"})
			err := ctrl.Scan(t.Context(), testLogE())
			out := buf.String()
			if !strings.Contains(out, strings.TrimSuffix(string(d.det.out), "\n")) {
				t.Errorf("the detector output must be surfaced verbatim:\n%s", out)
			}
			if !d.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrDeprecatedAPIs) {
				t.Fatalf("wanted ErrDeprecatedAPIs, got %v", err)
			}
			if !strings.Contains(out, "Found 1 potential issue(s)") {
				t.Errorf("a failing detector must count exactly one finding:\n%s", out)
			}
		})
	}
}

func TestController_Scan_missingDetectorPrintsNotice(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/repo", 0o755); err != nil {
		t.Fatal(err)
	}
	ctrl, buf := newTestController(fs, nil, &ParamScan{RootDir: "/repo"})
	if err := ctrl.Scan(t.Context(), testLogE()); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "skipping the advanced scan") {
		t.Errorf("missing downgrade notice:\n%s", out)
	}
}

func TestController_Scan_ignoreRulesFromConfig(t *testing.T) {
	t.Parallel()
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/repo/app.yaml", []byte("apiVersion: batch/v1beta1\nkind: CronJob\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "/repo/kubedep.yaml", []byte("ignore_rules:\n- batch-v1beta1-cronjob\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ctrl, _ := newTestController(fs, nil, &ParamScan{
		RootDir:        "/repo",
		ConfigFilePath: "/repo/kubedep.yaml",
	})
	if err := ctrl.Scan(t.Context(), testLogE()); err != nil {
		t.Fatalf("an ignored rule must not produce findings: %v", err)
	}
}
