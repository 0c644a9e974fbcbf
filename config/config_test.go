package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "opts.yaml", "enableSnapshots: true\nenableTransactions: true\nsnapshotLimit: 5\n")

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !opts.EnableSnapshots || !opts.EnableTransactions || opts.SnapshotLimit != 5 {
		t.Errorf("opts = %+v", opts)
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "opts.toml", "enableSnapshots = true\nsnapshotLimit = 3\n")

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !opts.EnableSnapshots || opts.EnableTransactions || opts.SnapshotLimit != 3 {
		t.Errorf("opts = %+v", opts)
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "opts.json", `{"enableTransactions": true}`)

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if opts.EnableSnapshots || !opts.EnableTransactions {
		t.Errorf("opts = %+v", opts)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "opts.ini", "x=1")
	if _, err := Load(path); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("err = %v, want ErrUnsupportedFormat", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", "enableSnapshots: [unclosed")
	if _, err := Load(path); err == nil {
		t.Error("Load of malformed YAML succeeded")
	}
}

func TestApplyEnv_OverridesFileValues(t *testing.T) {
	t.Setenv("TRACKED_ENABLE_SNAPSHOTS", "false")
	t.Setenv("TRACKED_SNAPSHOT_LIMIT", "9")

	opts := Options{EnableSnapshots: true, SnapshotLimit: 2}.ApplyEnv(DefaultEnvPrefix)
	if opts.EnableSnapshots {
		t.Error("env override did not disable snapshots")
	}
	if opts.SnapshotLimit != 9 {
		t.Errorf("SnapshotLimit = %d, want 9", opts.SnapshotLimit)
	}
}

func TestApplyEnv_IgnoresUnparsableValues(t *testing.T) {
	t.Setenv("TRACKED_SNAPSHOT_LIMIT", "many")

	opts := Options{SnapshotLimit: 4}.ApplyEnv(DefaultEnvPrefix)
	if opts.SnapshotLimit != 4 {
		t.Errorf("SnapshotLimit = %d, want the original 4", opts.SnapshotLimit)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("TRACKED_ENABLE_TRANSACTIONS", "true")

	opts := FromEnv(DefaultEnvPrefix)
	if !opts.EnableTransactions {
		t.Error("FromEnv missed the transactions flag")
	}
}

func TestCollectionOptions(t *testing.T) {
	opts := Options{EnableSnapshots: true, EnableTransactions: true, SnapshotLimit: 7}
	if got := len(opts.CollectionOptions()); got != 3 {
		t.Errorf("CollectionOptions returned %d options, want 3", got)
	}
	if got := len((Options{}).CollectionOptions()); got != 0 {
		t.Errorf("zero Options produced %d options, want 0", got)
	}
}
