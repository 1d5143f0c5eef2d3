// SPDX-License-Identifier: MIT

package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteConnectors prints the "Connectors:" header, one address per line and
// a trailing blank line.
func WriteConnectors(w io.Writer, connectors []string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Connectors:")
	for _, c := range connectors {
		fmt.Fprintln(bw, c)
	}
	fmt.Fprintln(bw)

	return bw.Flush()
}

// SaveConnectors writes one address per line to path, replacing any
// existing file.
func SaveConnectors(path string, connectors []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("console: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("console: close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	for _, c := range connectors {
		if _, err := fmt.Fprintln(bw, c); err != nil {
			return fmt.Errorf("console: write %s: %w", path, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("console: write %s: %w", path, err)
	}

	return nil
}
