package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/codedraw/core"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", name, err)
	}
	return path
}

func TestDiscoverContentFiles(t *testing.T) {
	tempDir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.txt", ".hidden.txt", "notes.go", "c.yml"} {
		writeFile(t, tempDir, name, "x")
	}
	if err := os.Mkdir(filepath.Join(tempDir, "sub.txt"), 0755); err != nil {
		t.Fatal(err)
	}

	m := NewManager(0)
	if err := m.Discover(tempDir); err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	files := m.Files()
	want := []string{"a.txt", "b.yaml", "c.yml"}
	if len(files) != len(want) {
		t.Fatalf("Expected %d files, got %d: %v", len(want), len(files), files)
	}
	for i, f := range files {
		if filepath.Base(f) != want[i] {
			t.Errorf("Expected file %d to be %s, got %s", i, want[i], filepath.Base(f))
		}
	}
}

func TestDiscoverSingleFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "pack.yaml", "lines: {easy: [a]}")

	m := NewManager(0)
	if err := m.Discover(path); err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(m.Files()) != 1 || m.Files()[0] != path {
		t.Errorf("Expected [%s], got %v", path, m.Files())
	}
}

func TestDiscoverMissingPath(t *testing.T) {
	m := NewManager(0)
	if err := m.Discover(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected error for missing path")
	}
}

func TestProcessLines(t *testing.T) {
	m := NewManager(10)
	input := []string{
		"",
		"   ",
		"// comment",
		"  # also a comment",
		"\tx := 1",
		"abcdefghijklmnop",
		"héllo wörld and more",
		"abcd      efgh",
	}

	got := m.ProcessLines(input)
	want := []string{"x := 1", "abcdefghij", "héllo wörl", "abcd"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestParseTextClassifiesByLength(t *testing.T) {
	m := NewManager(0)
	body := strings.Join([]string{
		"# header",
		"x++",
		strings.Repeat("m", 30),
		strings.Repeat("h", 60),
	}, "\n")

	pack, err := m.ParseText([]byte(body))
	if err != nil {
		t.Fatalf("ParseText failed: %v", err)
	}
	for tier, n := range []int{1, 1, 1} {
		if len(pack.Lines[tier]) != n {
			t.Errorf("Expected %d lines in %s, got %d", n, core.Tier(tier), len(pack.Lines[tier]))
		}
	}
	if pack.Lines[core.TierEasy][0].Text != "x++" {
		t.Errorf("Expected easy line x++, got %q", pack.Lines[core.TierEasy][0].Text)
	}
}

func TestParseYAML(t *testing.T) {
	doc := `
lines:
  easy:
    - "i++"
    - {text: "return nil", points: 15}
    - "// fallthrough"
    - "   "
  hard:
    - "func f() {}"
shapes:
  easy:
    - {name: bar, tolerance: 0.2, points: [[0, 1], [3, 1]]}
    - {name: dot, points: [[1, 1]]}
  medium:
    - {name: vee, points: [[0, 0], [1, 2], [2, 0]]}
`
	pack, err := NewManager(0).ParseYAML([]byte(doc))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	easy := pack.Lines[core.TierEasy]
	if len(easy) != 3 {
		t.Fatalf("Expected 3 easy lines, got %d", len(easy))
	}
	if easy[2].Text != "// fallthrough" {
		t.Errorf("Expected comment-looking entry kept, got %q", easy[2].Text)
	}
	if easy[1].Text != "return nil" || easy[1].Points != 15 {
		t.Errorf("Expected {return nil 15}, got %+v", easy[1])
	}
	if len(pack.Lines[core.TierMedium]) != 0 {
		t.Errorf("Expected no medium lines, got %d", len(pack.Lines[core.TierMedium]))
	}

	shapes := pack.Shapes[core.TierEasy]
	if len(shapes) != 1 {
		t.Fatalf("Expected degenerate shape dropped, got %d shapes", len(shapes))
	}
	if shapes[0].Name != "bar" || shapes[0].Tolerance != 0.2 || len(shapes[0].Points) != 2 {
		t.Errorf("Unexpected shape %+v", shapes[0])
	}
	if shapes[0].Points[1].X != 3 || shapes[0].Points[1].Y != 1 {
		t.Errorf("Expected second point (3,1), got %+v", shapes[0].Points[1])
	}
	if len(pack.Shapes[core.TierMedium]) != 1 {
		t.Errorf("Expected 1 medium shape, got %d", len(pack.Shapes[core.TierMedium]))
	}
}

func TestParseYAMLMalformed(t *testing.T) {
	if _, err := NewManager(0).ParseYAML([]byte("lines: [unclosed")); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

func TestLoadAllMergesAndSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "lines: {easy: [\"a := 1\"]}\nshapes: {hard: [{name: z, points: [[0,0],[1,1]]}]}")
	writeFile(t, dir, "b.txt", "b := 2\n")
	writeFile(t, dir, "c.yaml", "lines: [broken")

	m := NewManager(0)
	if err := m.Discover(dir); err != nil {
		t.Fatal(err)
	}
	pack, err := m.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	lines, shapes := pack.Counts()
	if lines != 2 || shapes != 1 {
		t.Errorf("Expected 2 lines and 1 shape, got %d and %d", lines, shapes)
	}
}

func TestLoadAllEmpty(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "empty.txt", "# nothing here\n\n")

	m := NewManager(0)
	if err := m.Discover(dir); err != nil {
		t.Fatal(err)
	}
	if _, err := m.LoadAll(); err == nil {
		t.Error("Expected error when no content loads")
	}
}
