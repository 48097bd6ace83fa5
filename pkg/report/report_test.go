package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"puzzle71scan/pkg/types"
)

func sampleRecord() types.FoundRecord {
	return types.FoundRecord{
		PrivateKeyHex: "400000000000000000",
		Target:        types.Target{Address: "1PWo3JeB9jrGwfHDNpdGK54CRas7fsVzXU"},
		Hash160Hex:    "f6f5431d25bbf7b12e8add9af5e3475c44a0a5b8",
		Found:         time.Date(2024, 1, 2, 15, 4, 5, 0, time.UTC),
		TotalChecked:  42,
	}
}

func TestFormat(t *testing.T) {
	got := Format(sampleRecord())
	want := "PUZZLE #71 SOLUTION\n" +
		"Private Key: 0x400000000000000000\n" +
		"Target: 1PWo3JeB9jrGwfHDNpdGK54CRas7fsVzXU\n" +
		"Hash160: f6f5431d25bbf7b12e8add9af5e3475c44a0a5b8\n" +
		"Found: Tue Jan  2 15:04:05 2024\n" +
		"Total keys checked: 42\n"
	if got != want {
		t.Fatalf("Format() =\n%q\nwant\n%q", got, want)
	}
}

func TestWritePrimarySucceeds(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "found.txt")

	if err := Write(path, nil, sampleRecord()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(body), "PUZZLE #71 SOLUTION") {
		t.Fatalf("written file missing expected header: %q", body)
	}
}

func TestWriteFallsBackToBackup(t *testing.T) {
	dir := t.TempDir()
	// A directory can never be opened O_WRONLY, forcing the primary
	// write to fail so the backup path gets exercised.
	badPrimary := dir
	backup := filepath.Join(dir, "backup.txt")

	if err := Write(badPrimary, []string{backup}, sampleRecord()); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if _, err := os.Stat(backup); err != nil {
		t.Fatalf("expected backup file to exist: %v", err)
	}
}
