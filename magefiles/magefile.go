//go:build mage

// Package main contains Mage build targets for alcu-explorer developer tooling.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

const (
	binDir  = "bin"
	binName = "alcu-explorer"
	cmdPkg  = "./cmd/alcu-explorer"

	// pdfDir is the default output directory the explorer downloads into.
	pdfDir = "pdfs"
)

// Init creates the working directories the explorer expects.
func Init() error {
	if err := os.MkdirAll(pdfDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", pdfDir, err)
	}
	fmt.Println("  ", pdfDir)
	fmt.Println("Project directories initialized.")
	return nil
}

// Build compiles the explorer binary into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	out := filepath.Join(binDir, binName)
	cmd := exec.Command("go", "build", "-o", out, cmdPkg)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the full test suite.
func Test() error {
	cmd := exec.Command("go", "test", "./...")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("go test: %w", err)
	}
	return nil
}

// Clean removes build artifacts and downloaded PDFs.
func Clean() error {
	for _, dir := range []string{binDir, pdfDir} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing %s: %w", dir, err)
		}
	}
	fmt.Println("Cleaned.")
	return nil
}
