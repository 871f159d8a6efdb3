// Package snapshot_test provides golden snapshot tests for all codewriter
// targets.
//
// For each module description in testdata/in/, the test renders through
// every target and compares output to golden files stored in
// testdata/golden/<target>/. Single-stream output is stored as
// <name><ext> for targets that can nest sub-modules in one file; multi-file
// output is stored under tree/ with one golden per generated file.
//
// To regenerate golden files after intentional changes:
//
//	UPDATE_GOLDEN=1 go test ./snapshot/...
package snapshot_test

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/gogpu/codewriter"
	"github.com/gogpu/codewriter/internal/manifest"
	"github.com/gogpu/codewriter/ir"
)

// ---------------------------------------------------------------------------
// Test Runner
// ---------------------------------------------------------------------------

// inputFile represents a module description loaded from disk.
type inputFile struct {
	name   string // base name without extension (e.g., "address")
	module ir.Module
}

// singleStream lists the targets whose single-stream output is compared.
// Thrift cannot nest a sub-module inside its parent's file.
var singleStream = map[string]bool{
	"rust": true,
}

// TestSnapshots is the main golden snapshot test. It loads all inputs,
// renders each through all targets, and compares with golden files.
func TestSnapshots(t *testing.T) {
	inputs := loadInputs(t, "testdata/in")
	if len(inputs) == 0 {
		t.Fatal("no inputs found in testdata/in/")
	}

	for i := range inputs {
		input := &inputs[i]
		t.Run(input.name, func(t *testing.T) {
			for _, target := range codewriter.Targets() {
				t.Run(target.Name, func(t *testing.T) {
					dir := filepath.Join("testdata", "golden", target.Name)

					if singleStream[target.Name] {
						source, err := codewriter.Compile(input.module, target.Name)
						if err != nil {
							t.Fatalf("[%s] compile failed: %v", input.name, err)
						}
						compareGolden(t, filepath.Join(dir, input.name+target.Extension), source)
					}

					files := renderTree(t, target, input.module)
					for _, name := range sortedKeys(files) {
						compareGolden(t, filepath.Join(dir, "tree", filepath.FromSlash(name)), files[name])
					}
				})
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Input Loading
// ---------------------------------------------------------------------------

// loadInputs reads all .yaml and .json files from the given directory.
func loadInputs(t *testing.T, dir string) []inputFile {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read input directory %q: %v", dir, err)
	}

	var inputs []inputFile
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".json") {
			continue
		}
		module, loadErr := manifest.Load(filepath.Join(dir, entry.Name()))
		if loadErr != nil {
			t.Fatalf("load input %q: %v", entry.Name(), loadErr)
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		inputs = append(inputs, inputFile{name: name, module: module})
	}

	// Sort for deterministic test order
	sort.Slice(inputs, func(i, j int) bool {
		return inputs[i].name < inputs[j].name
	})

	return inputs
}

// ---------------------------------------------------------------------------
// Rendering Helpers
// ---------------------------------------------------------------------------

// memFile collects one generated file in memory.
type memFile struct {
	bytes.Buffer
	files    map[string]string
	location string
}

func (f *memFile) Close() error {
	f.files[f.location] = f.String()
	return nil
}

// renderTree renders module in multi-file mode and returns the generated
// files keyed by slash-separated path relative to the output root.
func renderTree(t *testing.T, target codewriter.Target, module ir.Module) map[string]string {
	t.Helper()

	files := make(map[string]string)
	tree := target.Tree("")
	tree.Create = func(location string) (io.WriteCloser, error) {
		name := filepath.ToSlash(location)
		if _, dup := files[name]; dup {
			return nil, fmt.Errorf("%s generated twice", name)
		}
		return &memFile{files: files, location: name}, nil
	}
	if err := tree.Render(module); err != nil {
		t.Fatalf("[%s] render failed: %v", target.Name, err)
	}
	return files
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ---------------------------------------------------------------------------
// Golden File Comparison
// ---------------------------------------------------------------------------

// compareGolden compares actual output with the golden file at path.
// If UPDATE_GOLDEN is set, writes actual output as the new golden file.
func compareGolden(t *testing.T, path, actual string) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDEN") != "" {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			t.Fatalf("create golden dir: %v", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(actual), 0o644); wErr != nil {
			t.Fatalf("write golden file: %v", wErr)
		}
		t.Logf("updated golden file: %s", path)
		return
	}

	expected, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		t.Fatalf("golden file missing: %s\nRun with UPDATE_GOLDEN=1 to create.\n\nActual output:\n%s", path, truncate(actual, 500))
	}
	if err != nil {
		t.Fatalf("read golden file %s: %v", path, err)
	}

	// Normalize line endings for cross-platform comparison.
	// Git may convert \n to \r\n on Windows checkout.
	expectedStr := strings.ReplaceAll(string(expected), "\r\n", "\n")
	actualStr := strings.ReplaceAll(actual, "\r\n", "\n")

	if expectedStr != actualStr {
		diff := diffStrings(expectedStr, actualStr)
		t.Errorf("output differs from golden %s:\n%s", path, diff)
	}
}

// diffStrings produces a simple line-by-line diff showing the first difference
// and surrounding context.
func diffStrings(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var sb strings.Builder
	maxLines := len(expectedLines)
	if len(actualLines) > maxLines {
		maxLines = len(actualLines)
	}

	const contextLines = 3
	firstDiff := -1
	for i := 0; i < maxLines; i++ {
		var eLine, aLine string
		if i < len(expectedLines) {
			eLine = expectedLines[i]
		}
		if i < len(actualLines) {
			aLine = actualLines[i]
		}
		if eLine != aLine {
			firstDiff = i
			break
		}
	}

	if firstDiff < 0 {
		return "(no difference found)"
	}

	fmt.Fprintf(&sb, "first difference at line %d:\n", firstDiff+1)
	fmt.Fprintf(&sb, "  expected lines: %d\n", len(expectedLines))
	fmt.Fprintf(&sb, "  actual lines:   %d\n\n", len(actualLines))

	// Show context around the first difference
	start := firstDiff - contextLines
	if start < 0 {
		start = 0
	}
	end := firstDiff + contextLines + 1
	if end > maxLines {
		end = maxLines
	}

	for i := start; i < end; i++ {
		prefix := " "
		var eLine, aLine string
		if i < len(expectedLines) {
			eLine = expectedLines[i]
		}
		if i < len(actualLines) {
			aLine = actualLines[i]
		}
		if eLine != aLine {
			prefix = "!"
		}
		fmt.Fprintf(&sb, "%s %4d expected: %s\n", prefix, i+1, truncate(eLine, 120))
		if eLine != aLine {
			fmt.Fprintf(&sb, "%s %4d actual:   %s\n", prefix, i+1, truncate(aLine, 120))
		}
	}

	return sb.String()
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

