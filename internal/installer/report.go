package installer

import (
	"fmt"
	"io"
	"strings"

	"github.com/nerdboi-ui/nerdboi-ui/internal/ui"
)

// Result is the outcome for one requested component.
type Result struct {
	Name      string
	Installed []string // components installed for this request, dependencies first
	Written   []string // files written for this request
	Err       error
}

// OK reports whether the component was added successfully.
func (r Result) OK() bool {
	return r.Err == nil
}

// Report collects one Result per requested component, in request order.
type Report struct {
	Results []Result
	DryRun  bool
}

// Failed returns the results that carry an error.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// OK reports whether every requested component succeeded.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

// Err returns nil when every component succeeded, and otherwise an error
// naming the failed components.
func (r *Report) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	names := make([]string, len(failed))
	for i, f := range failed {
		names[i] = f.Name
	}
	return fmt.Errorf("%d of %d component(s) failed: %s", len(failed), len(r.Results), strings.Join(names, ", "))
}

// PrintSummary prints the final status line(s) for the report.
func PrintSummary(w io.Writer, r *Report) {
	fmt.Fprintln(w)
	if err := r.Err(); err != nil {
		ui.Fail(w, "%v", err)
		for _, f := range r.Failed() {
			ui.Error(w, "%s: %v", f.Name, f.Err)
		}
		fmt.Fprintln(w)
		return
	}
	if r.DryRun {
		ui.Success(w, "Dry run complete. No files were written.")
	} else {
		ui.Success(w, "All components installed successfully!")
	}
	fmt.Fprintln(w)
}
