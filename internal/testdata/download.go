//go:build ignore

// Fetches the UCD property files the table generator works from.
// Run from the internal/testdata directory:
//
//	go run download.go
//
// The checked-in copies were extracted from ICU 73.1 and correspond to the
// Unicode 15.0.0 release; keep the version in the URL in sync with the
// module's Version constant when refreshing.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

const ucdBase = "https://www.unicode.org/Public/15.0.0/ucd/"

var files = map[string]string{
	"auxiliary/GraphemeBreakProperty.txt": "GraphemeBreakProperty.txt",
	"emoji/emoji-data.txt":                "emoji-data.txt",
}

func main() {
	for remote, local := range files {
		if err := download(ucdBase+remote, filepath.Join("ucd", local)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to download %v: %v\n", remote, err)
			os.Exit(1)
		}
	}
}

func download(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET status %s", resp.Status)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}
	if _, err = io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return f.Close()
}
