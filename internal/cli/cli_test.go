package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/mdnorm/internal/cli"
)

func testInfo() cli.BuildInfo {
	return cli.BuildInfo{Version: "test", Commit: "test", Date: "test"}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	if cmd == nil {
		t.Fatal("NewRootCommand returned nil")
	}
	if cmd.Use != "mdnorm" {
		t.Errorf("expected Use to be 'mdnorm', got %q", cmd.Use)
	}
	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}
	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, name := range []string{"fix", "fixes", "version"} {
		subCmd, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected subcommand %q to exist, got error: %v", name, err)
			continue
		}
		if subCmd.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, subCmd.Name())
		}
	}
}

func TestFixCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	fixCmd, _, err := cmd.Find([]string{"fix"})
	if err != nil {
		t.Fatalf("fix command not found: %v", err)
	}

	for _, flagName := range []string{
		"dry-run", "fix", "jobs", "line-length", "ignore", "pattern",
	} {
		if fixCmd.Flags().Lookup(flagName) == nil {
			t.Errorf("expected flag %q to exist on fix command", flagName)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())

	for _, flagName := range []string{"verbose", "config", "color"} {
		if cmd.PersistentFlags().Lookup(flagName) == nil {
			t.Errorf("expected global flag %q to exist", flagName)
		}
	}
}

func TestFixCommandRejectsUnknownFix(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"fix", "--fix", "bogus", "."})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected an error for unknown fix name")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name the bad fix, got: %v", err)
	}
}

func TestFixCommandDryRunIntegration(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	original := "# Title\n\ntrailing   \n"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := cli.NewRootCommand(testInfo())
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"fix", "--dry-run", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("fix --dry-run failed: %v", err)
	}

	if !strings.Contains(out.String(), "[dry run]") {
		t.Errorf("expected dry-run summary, got:\n%s", out.String())
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != original {
		t.Error("dry run must not modify the file")
	}
}

func TestFixCommandWritesFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte("# Title\n\ntrailing   \n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"fix", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("fix failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "# Title\n\ntrailing\n" {
		t.Errorf("unexpected content after fix: %q", string(got))
	}
}

func TestFixesCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"fixes"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("fixes command failed: %v", err)
	}
}

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	if got := cli.ExitCodeFromError(nil); got != cli.ExitSuccess {
		t.Errorf("nil error should map to success, got %d", got)
	}
	if got := cli.ExitCodeFromError(cli.ErrFilesFailed); got != cli.ExitFilesFailed {
		t.Errorf("ErrFilesFailed should map to %d, got %d", cli.ExitFilesFailed, got)
	}
}
