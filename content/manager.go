package content

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/codedraw/core"
	"github.com/lixenwraith/codedraw/parameter"
)

// Manager discovers and loads content files into a Pack
type Manager struct {
	maxLineLength int
	contentFiles  []string
}

// NewManager creates a manager truncating lines to maxLineLength runes
func NewManager(maxLineLength int) *Manager {
	if maxLineLength <= 0 {
		maxLineLength = parameter.MaxLineLength
	}
	return &Manager{maxLineLength: maxLineLength}
}

// Discover resolves path into content files
// A file is used as is, a directory is scanned for supported extensions, skipping hidden files
func (m *Manager) Discover(path string) error {
	m.contentFiles = nil

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("content path %s: %w", path, err)
	}
	if !info.IsDir() {
		m.contentFiles = []string{path}
		return nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return fmt.Errorf("failed to read content directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if isContentFile(name) {
			m.contentFiles = append(m.contentFiles, filepath.Join(path, name))
		}
	}
	sort.Strings(m.contentFiles)

	log.Printf("Discovered %d content file(s) in %s", len(m.contentFiles), path)
	return nil
}

// Files returns the discovered content files
func (m *Manager) Files() []string {
	return m.contentFiles
}

// LoadAll merges every discovered file into one pack, unreadable files are skipped
func (m *Manager) LoadAll() (*Pack, error) {
	pack := &Pack{}
	var errs []error
	for _, f := range m.contentFiles {
		p, err := m.LoadFile(f)
		if err != nil {
			log.Printf("Skipping content file %s: %v", f, err)
			errs = append(errs, err)
			continue
		}
		pack.Merge(p)
	}
	if lines, shapes := pack.Counts(); lines == 0 && shapes == 0 {
		errs = append(errs, errors.New("no content loaded"))
		return nil, errors.Join(errs...)
	}
	return pack, nil
}

// LoadFile parses a YAML pack or a plain text line list
func (m *Manager) LoadFile(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".txt") {
		return m.ParseText(data)
	}
	return m.ParseYAML(data)
}

// ParseYAML decodes a pack document, shapes with fewer than 2 points are dropped
// Entries are explicit so comment-looking lines such as "#include" are kept
func (m *Manager) ParseYAML(data []byte) (*Pack, error) {
	var doc packFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse content pack: %w", err)
	}

	pack := &Pack{}
	for t, entries := range doc.Lines.byTier() {
		for _, e := range entries {
			text, ok := m.normalizeLine(e.Text)
			if !ok {
				continue
			}
			pack.Lines[t] = append(pack.Lines[t], core.Line{Text: text, Points: e.Points})
		}
	}
	for t, entries := range doc.Shapes.byTier() {
		for _, e := range entries {
			if len(e.Points) < 2 {
				log.Print(&ShapeError{Tier: core.Tier(t), Name: e.Name, N: len(e.Points)})
				continue
			}
			pack.Shapes[t] = append(pack.Shapes[t], e.toShape())
		}
	}
	return pack, nil
}

// ParseText reads one line per row and files each under a tier by length
func (m *Manager) ParseText(data []byte) (*Pack, error) {
	pack := &Pack{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		text, ok := m.processLine(scanner.Text())
		if !ok {
			continue
		}
		t := classify(text)
		pack.Lines[t] = append(pack.Lines[t], core.Line{Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading text content: %w", err)
	}
	return pack, nil
}

// ProcessLines cleans raw lines: comments and blanks removed, tabs expanded, long lines truncated
func (m *Manager) ProcessLines(lines []string) []string {
	var processed []string
	for _, line := range lines {
		if text, ok := m.processLine(line); ok {
			processed = append(processed, text)
		}
	}
	return processed
}

func (m *Manager) processLine(line string) (string, bool) {
	if isCommentLine(line) {
		return "", false
	}
	return m.normalizeLine(line)
}

// normalizeLine expands tabs, trims and truncates, blank lines are rejected
func (m *Manager) normalizeLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(strings.ReplaceAll(line, "\t", strings.Repeat(" ", parameter.TabWidth)))
	if len(trimmed) == 0 {
		return "", false
	}
	if r := []rune(trimmed); len(r) > m.maxLineLength {
		trimmed = strings.TrimRight(string(r[:m.maxLineLength]), " ")
	}
	return trimmed, true
}

// isCommentLine checks if a line starts with any comment prefix
func isCommentLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range parameter.CommentPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

func isContentFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range parameter.ContentExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// classify files a plain text line under a tier by its rune count
func classify(text string) core.Tier {
	n := len([]rune(text))
	switch {
	case n <= parameter.EasyLineMaxLen:
		return core.TierEasy
	case n <= parameter.MediumLineMaxLen:
		return core.TierMedium
	default:
		return core.TierHard
	}
}
