package cmd

import (
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// installExtension writes an executable shell script named ksm-<name> in a
// temporary directory put in front of the PATH.
func installExtension(t *testing.T, name, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ksm-"+name), []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("Failed to write extension: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return dir
}

func TestExtensionMechanism(t *testing.T) {
	dir := installExtension(t, "hello", `
out="$1"
echo "KSM_DATA_FILE=$KSM_DATA_FILE" > "$out"
echo "KSM_LOG_LEVEL=$KSM_LOG_LEVEL" >> "$out"
echo "KSM_NOTIFY=$KSM_NOTIFY" >> "$out"
`)
	dataPath := useInventory(t, "Rice,10,5\n")
	old := *logLevel
	*logLevel = "debug"
	t.Cleanup(func() { *logLevel = old })

	out := filepath.Join(dir, "env.txt")
	found, code := RunExtension("hello", []string{out})
	if !found {
		t.Fatal("RunExtension() did not find ksm-hello")
	}
	if code != 0 {
		t.Fatalf("RunExtension() exit code = %d, want 0", code)
	}

	got := readFile(t, out)
	for _, want := range []string{
		"KSM_DATA_FILE=" + dataPath,
		"KSM_LOG_LEVEL=debug",
		"KSM_NOTIFY=none",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected extension environment to contain %q, but got:\n%s", want, got)
		}
	}
}

func TestExtensionExitCode(t *testing.T) {
	installExtension(t, "broken", "exit 3\n")
	found, code := RunExtension("broken", nil)
	if !found || code != 3 {
		t.Errorf("RunExtension() = (%v, %d), want (true, 3)", found, code)
	}
}

func TestExtensionNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, _ := RunExtension("missing", nil); found {
		t.Error("RunExtension() found a ksm-missing extension")
	}
}

func TestRegistered(t *testing.T) {
	c := subcommands.NewCommander(flag.NewFlagSet("ksm", flag.ContinueOnError), "ksm")
	Register(c)
	for _, name := range []string{"view", "sell", "add", "threshold", "alerts", "menu", "fmt", "topic"} {
		if !Registered(c, name) {
			t.Errorf("Registered(%q) = false, want true", name)
		}
	}
	if Registered(c, "hello") {
		t.Error(`Registered("hello") = true, want false`)
	}
}
