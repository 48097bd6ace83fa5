// Package report formats and durably writes the found-key record, the
// scanner's terminal output: the record the operator actually cares
// about, so it is written with an explicit fsync to the primary path
// and to every configured backup path.
package report

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"puzzle71scan/pkg/types"
)

const refTimeLayout = "Mon Jan  2 15:04:05 2006"

// Format renders a FoundRecord in the six-line layout the original
// scanner wrote to its found-key file.
func Format(rec types.FoundRecord) string {
	return fmt.Sprintf(
		"PUZZLE #71 SOLUTION\nPrivate Key: 0x%s\nTarget: %s\nHash160: %s\nFound: %s\nTotal keys checked: %d\n",
		rec.PrivateKeyHex,
		rec.Target.Address,
		rec.Hash160Hex,
		rec.Found.Format(refTimeLayout),
		rec.TotalChecked,
	)
}

// Write renders rec and writes it to path and then to each of backups
// in order. It returns the primary write's error only if every path
// failed.
func Write(path string, backups []string, rec types.FoundRecord) error {
	body := Format(rec)

	firstErr := writeDurably(path, body)
	anyOK := firstErr == nil

	for _, backup := range backups {
		if err := writeDurably(backup, body); err == nil {
			anyOK = true
		}
	}
	if anyOK {
		return nil
	}
	return firstErr
}

func writeDurably(path, body string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.WriteString(f, body); err != nil {
		return err
	}
	return f.Sync()
}

// Hex is a small convenience the report caller uses to turn a private
// key's raw bytes into the hex string FoundRecord.PrivateKeyHex wants.
func Hex(b []byte) string {
	return hex.EncodeToString(b)
}
