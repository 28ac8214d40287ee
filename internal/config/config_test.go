package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	content := `
scan_paths = ["src/main/java", "src/test/java"]

[exclude]
dirs = ["generated"]
files = ["*Test.java"]

[output]
tsv = "names.tsv"

[metrics]
addr = ":9090"
`
	path := filepath.Join(t.TempDir(), "jname.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.ScanPaths) != 2 || cfg.ScanPaths[0] != "src/main/java" {
		t.Errorf("unexpected scan paths: %v", cfg.ScanPaths)
	}
	if len(cfg.Exclude.Dirs) != 1 || cfg.Exclude.Dirs[0] != "generated" {
		t.Errorf("unexpected exclude dirs: %v", cfg.Exclude.Dirs)
	}
	if len(cfg.Exclude.Files) != 1 || cfg.Exclude.Files[0] != "*Test.java" {
		t.Errorf("unexpected exclude files: %v", cfg.Exclude.Files)
	}
	if cfg.Output.TSV != "names.tsv" {
		t.Errorf("output.tsv = %q", cfg.Output.TSV)
	}
	if cfg.Metrics.Addr != ":9090" {
		t.Errorf("metrics.addr = %q", cfg.Metrics.Addr)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	if len(cfg.ScanPaths) != 1 || cfg.ScanPaths[0] != "." {
		t.Errorf("default scan paths = %v", cfg.ScanPaths)
	}
	if len(cfg.Exclude.Dirs) == 0 {
		t.Error("expected default exclude dirs")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jname.toml")
	if err := os.WriteFile(path, []byte("[output]\ntsv = \"out.tsv\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.ScanPaths) != 1 || cfg.ScanPaths[0] != "." {
		t.Errorf("scan paths not defaulted: %v", cfg.ScanPaths)
	}
	if cfg.Output.TSV != "out.tsv" {
		t.Errorf("output.tsv = %q", cfg.Output.TSV)
	}
}
