package scan

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/kubedep/kubedep/pkg/finding"
)

type colorFunc func(a ...interface{}) string

// Reporter renders the human-readable report. All output goes to one
// writer; there is no side channel.
type Reporter struct {
	stdout io.Writer
	red    colorFunc
	yellow colorFunc
	green  colorFunc
}

func NewReporter(stdout io.Writer) *Reporter {
	return &Reporter{
		stdout: stdout,
		red:    color.New(color.FgRed).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		green:  color.New(color.FgGreen).SprintFunc(),
	}
}

func (r *Reporter) Header() {
	fmt.Fprintln(r.stdout, "Scanning for deprecated Kubernetes APIs...")
}

func (r *Reporter) Section(name string) {
	fmt.Fprintf(r.stdout, "\n=== %s ===\n", name)
}

func (r *Reporter) Notice(message string) {
	fmt.Fprintln(r.stdout, message)
}

// Echo prints a line lifted verbatim from a scanned file.
func (r *Reporter) Echo(line string) {
	fmt.Fprintf(r.stdout, "  %s\n", line)
}

// Raw surfaces an external tool's output without reformatting.
func (r *Reporter) Raw(b []byte) {
	if len(b) == 0 {
		return
	}
	r.stdout.Write(b) //nolint:errcheck
	if b[len(b)-1] != '\n' {
		fmt.Fprintln(r.stdout)
	}
}

func (r *Reporter) Finding(f finding.Finding) {
	marker := r.yellow(string(finding.SeverityWarning))
	if f.Severity == finding.SeverityError {
		marker = r.red(string(finding.SeverityError))
	}
	fmt.Fprintf(r.stdout, "%s %s %s\n", marker, f.Location(), f.Message)
}

var (
	recommendations = []string{
		"Migrate manifests to the replacement API versions listed above",
		"Update k8s.io/* modules in go.mod to a supported release",
		"Regenerate clients and informers after bumping dependencies",
		"Re-run the scan before upgrading the cluster",
	}
	references = []string{
		"https://kubernetes.io/docs/reference/using-api/deprecation-guide/",
		"https://kubernetes.io/docs/reference/using-api/deprecation-policy/",
		"https://github.com/FairwindsOps/pluto",
	}
)

func (r *Reporter) Summary(result *finding.Result) {
	fmt.Fprintln(r.stdout)
	if result.Count() == 0 {
		fmt.Fprintln(r.stdout, r.green("No deprecated APIs found!"))
		return
	}
	fmt.Fprintf(r.stdout, "%s\n", r.red(fmt.Sprintf("Found %d potential issue(s)", result.Count())))
	fmt.Fprintln(r.stdout, "\nRecommendations:")
	for i, rec := range recommendations {
		fmt.Fprintf(r.stdout, "  %d. %s\n", i+1, rec)
	}
	fmt.Fprintln(r.stdout, "\nReferences:")
	for _, ref := range references {
		fmt.Fprintf(r.stdout, "  - %s\n", ref)
	}
}
