package installer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nerdboi-ui/nerdboi-ui/internal/manifest"
	"github.com/nerdboi-ui/nerdboi-ui/internal/project"
	"github.com/nerdboi-ui/nerdboi-ui/internal/registry"
)

// fakeSource serves manifests from memory and counts fetches per name.
type fakeSource struct {
	comps   map[string]*manifest.Component
	fetches map[string]int
}

func newFakeSource(comps ...*manifest.Component) *fakeSource {
	s := &fakeSource{comps: make(map[string]*manifest.Component), fetches: make(map[string]int)}
	for _, c := range comps {
		s.comps[c.Name] = c
	}
	return s
}

func (s *fakeSource) Fetch(_ context.Context, name string) (*manifest.Component, error) {
	s.fetches[name]++
	c, ok := s.comps[name]
	if !ok {
		return nil, &registry.FetchError{Name: name, NotFound: true}
	}
	return c, nil
}

// fakePackages records every Install call and fails for listed deps.
type fakePackages struct {
	calls [][]string
	fail  map[string]bool
}

func (p *fakePackages) Install(_ context.Context, deps []string) error {
	p.calls = append(p.calls, deps)
	for _, d := range deps {
		if p.fail[d] {
			return errors.New("install " + d + " failed")
		}
	}
	return nil
}

func comp(name string, regDeps []string, deps ...string) *manifest.Component {
	return &manifest.Component{
		Name:                 name,
		Files:                []manifest.File{{Name: "ui/" + name + ".tsx", Content: "// " + name + "\n"}},
		Dependencies:         deps,
		RegistryDependencies: regDeps,
	}
}

func newInstaller(t *testing.T, src registry.Source, pkgs PackageInstaller) (*Installer, string) {
	t.Helper()
	root := t.TempDir()
	cfg := project.Default()
	return &Installer{
		Root:     root,
		Config:   cfg,
		Source:   src,
		Packages: pkgs,
		Out:      &bytes.Buffer{},
	}, root
}

func fileExists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	return err == nil
}

func TestAdd_SingleComponent(t *testing.T) {
	src := newFakeSource(comp("button", nil, "@radix-ui/react-slot"))
	pkgs := &fakePackages{}
	in, root := newInstaller(t, src, pkgs)

	report := in.Add(context.Background(), []string{"button"})
	if !report.OK() {
		t.Fatalf("unexpected failure: %v", report.Err())
	}

	path := filepath.Join(root, "src", "components", "ui", "button.tsx")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}
	if string(data) != "// button\n" {
		t.Errorf("content = %q", data)
	}
	if diff := cmp.Diff([][]string{{"@radix-ui/react-slot"}}, pkgs.calls); diff != "" {
		t.Errorf("install calls mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{path}, report.Results[0].Written); diff != "" {
		t.Errorf("written mismatch (-want +got):\n%s", diff)
	}
}

func TestAdd_NoDependenciesSkipsPackageManager(t *testing.T) {
	pkgs := &fakePackages{}
	in, _ := newInstaller(t, newFakeSource(comp("label", nil)), pkgs)

	if r := in.Add(context.Background(), []string{"label"}); !r.OK() {
		t.Fatalf("unexpected failure: %v", r.Err())
	}
	if len(pkgs.calls) != 0 {
		t.Errorf("package manager invoked %d times, want 0", len(pkgs.calls))
	}
}

func TestAdd_DependenciesFirst(t *testing.T) {
	src := newFakeSource(
		comp("dialog", []string{"button"}, "@radix-ui/react-dialog"),
		comp("button", nil, "@radix-ui/react-slot"),
	)
	pkgs := &fakePackages{}
	in, _ := newInstaller(t, src, pkgs)

	report := in.Add(context.Background(), []string{"dialog"})
	if !report.OK() {
		t.Fatalf("unexpected failure: %v", report.Err())
	}

	want := [][]string{{"@radix-ui/react-slot"}, {"@radix-ui/react-dialog"}}
	if diff := cmp.Diff(want, pkgs.calls); diff != "" {
		t.Errorf("install order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"button", "dialog"}, report.Results[0].Installed); diff != "" {
		t.Errorf("installed mismatch (-want +got):\n%s", diff)
	}
}

func TestAdd_SharedDependencyInstalledOnce(t *testing.T) {
	src := newFakeSource(
		comp("dialog", []string{"button"}),
		comp("alert-dialog", []string{"button"}),
		comp("button", nil, "@radix-ui/react-slot"),
	)
	pkgs := &fakePackages{}
	in, _ := newInstaller(t, src, pkgs)

	report := in.Add(context.Background(), []string{"dialog", "alert-dialog", "button"})
	if !report.OK() {
		t.Fatalf("unexpected failure: %v", report.Err())
	}

	if src.fetches["button"] != 1 {
		t.Errorf("button fetched %d times, want 1", src.fetches["button"])
	}
	if len(pkgs.calls) != 1 {
		t.Errorf("package manager invoked %d times, want 1", len(pkgs.calls))
	}
	if len(report.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(report.Results))
	}
	if diff := cmp.Diff([]string{"alert-dialog"}, report.Results[1].Installed); diff != "" {
		t.Errorf("second request should only install itself (-want +got):\n%s", diff)
	}
	if len(report.Results[2].Installed) != 0 {
		t.Errorf("button already installed, got %v", report.Results[2].Installed)
	}
}

func TestAdd_FailureIsolatedPerComponent(t *testing.T) {
	src := newFakeSource(comp("button", nil), comp("card", nil))
	in, root := newInstaller(t, src, &fakePackages{})

	report := in.Add(context.Background(), []string{"button", "missing", "card"})

	if report.OK() {
		t.Fatal("expected the report to carry a failure")
	}
	failed := report.Failed()
	if len(failed) != 1 || failed[0].Name != "missing" {
		t.Fatalf("failed = %+v", failed)
	}
	var fe *registry.FetchError
	if !errors.As(failed[0].Err, &fe) || !fe.NotFound {
		t.Errorf("expected not-found fetch error, got %v", failed[0].Err)
	}

	for _, name := range []string{"button", "card"} {
		if !fileExists(t, filepath.Join(root, "src", "components", "ui", name+".tsx")) {
			t.Errorf("%s should have been written", name)
		}
	}
	if got := report.Err().Error(); got != "1 of 3 component(s) failed: missing" {
		t.Errorf("report error = %q", got)
	}
}

func TestAdd_MissingRegistryDependencyWritesNothing(t *testing.T) {
	src := newFakeSource(comp("dialog", []string{"ghost"}))
	in, root := newInstaller(t, src, &fakePackages{})

	report := in.Add(context.Background(), []string{"dialog"})
	if report.OK() {
		t.Fatal("expected failure")
	}
	if fileExists(t, filepath.Join(root, "src", "components", "ui", "dialog.tsx")) {
		t.Error("dialog must not be written when its dependency cannot be resolved")
	}
}

func TestAdd_CycleFails(t *testing.T) {
	src := newFakeSource(comp("a", []string{"b"}), comp("b", []string{"a"}))
	in, _ := newInstaller(t, src, &fakePackages{})

	report := in.Add(context.Background(), []string{"a"})

	var ce *registry.CycleError
	if !errors.As(report.Results[0].Err, &ce) {
		t.Fatalf("expected *CycleError, got %v", report.Results[0].Err)
	}
}

func TestAdd_DependencyInstallFailure(t *testing.T) {
	src := newFakeSource(
		comp("dialog", []string{"button"}),
		comp("card", []string{"button"}),
		comp("button", nil, "broken-pkg"),
	)
	pkgs := &fakePackages{fail: map[string]bool{"broken-pkg": true}}
	in, root := newInstaller(t, src, pkgs)

	report := in.Add(context.Background(), []string{"dialog", "card"})

	if len(report.Failed()) != 2 {
		t.Fatalf("expected both components to fail, got %+v", report.Results)
	}
	for _, res := range report.Results {
		var de *DependencyError
		if !errors.As(res.Err, &de) || de.Dependency != "button" {
			t.Errorf("%s: expected dependency error on button, got %v", res.Name, res.Err)
		}
	}
	if len(pkgs.calls) != 1 {
		t.Errorf("failed dependency should not be retried, got %d install calls", len(pkgs.calls))
	}
	if fileExists(t, filepath.Join(root, "src", "components", "ui", "dialog.tsx")) {
		t.Error("dialog must not be written after its dependency failed")
	}
}

func TestAdd_DryRunHasNoSideEffects(t *testing.T) {
	src := newFakeSource(comp("dialog", []string{"button"}, "@radix-ui/react-dialog"), comp("button", nil))
	pkgs := &fakePackages{}
	in, root := newInstaller(t, src, pkgs)
	in.DryRun = true
	out := &bytes.Buffer{}
	in.Out = out

	report := in.Add(context.Background(), []string{"dialog"})
	if !report.OK() {
		t.Fatalf("unexpected failure: %v", report.Err())
	}
	if len(pkgs.calls) != 0 {
		t.Errorf("dry run invoked the package manager")
	}
	if _, err := os.Stat(filepath.Join(root, "src")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("dry run created files: %v", err)
	}
	for _, want := range []string{"dialog", "└── button", "would write", "would install"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestAdd_CancelledContext(t *testing.T) {
	src := newFakeSource(comp("button", nil))
	in, _ := newInstaller(t, src, &fakePackages{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := in.Add(ctx, []string{"button"})
	if !errors.Is(report.Results[0].Err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", report.Results[0].Err)
	}
	if src.fetches["button"] != 0 {
		t.Error("cancelled run should not fetch")
	}
}

func TestPrintSummary(t *testing.T) {
	var ok bytes.Buffer
	PrintSummary(&ok, &Report{Results: []Result{{Name: "button"}}})
	if !strings.Contains(ok.String(), "All components installed successfully!") {
		t.Errorf("success summary = %q", ok.String())
	}

	var bad bytes.Buffer
	PrintSummary(&bad, &Report{Results: []Result{{Name: "button"}, {Name: "card", Err: errors.New("boom")}}})
	for _, want := range []string{"1 of 2 component(s) failed: card", "card: boom"} {
		if !strings.Contains(bad.String(), want) {
			t.Errorf("failure summary missing %q:\n%s", want, bad.String())
		}
	}
}

func TestPrintSummary_DryRun(t *testing.T) {
	var out bytes.Buffer
	PrintSummary(&out, &Report{DryRun: true, Results: []Result{{Name: "button"}}})
	if !strings.Contains(out.String(), "Dry run complete") {
		t.Errorf("dry run summary = %q", out.String())
	}
	if strings.Contains(out.String(), "installed successfully") {
		t.Error("dry run must not claim an install")
	}
}
