package deck

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/pkg/errors"
)

// ErrNotDir is returned when the deck root is not a directory.
var ErrNotDir = errors.New("path is not a directory")

type rowMeta struct {
	Title string `yaml:"title" toml:"title" json:"title"`
	Left  string `yaml:"left" toml:"left" json:"left"`
	Right string `yaml:"right" toml:"right" json:"right"`
	Order int    `yaml:"order" toml:"order" json:"order"`
}

// FSLoader reads rows from the markdown files of one directory.
type FSLoader struct {
	root string
}

// NewFSLoader creates a loader that reads from the provided root directory.
func NewFSLoader(root string) *FSLoader {
	return &FSLoader{root: root}
}

// Root returns the deck directory.
func (l *FSLoader) Root() string { return l.root }

// List returns the rows of the deck, ordered by their order key and title.
func (l *FSLoader) List() ([]Row, error) {
	info, err := os.Stat(l.root)
	if err != nil {
		return nil, errors.Wrap(err, "stat deck")
	}
	if !info.IsDir() {
		return nil, ErrNotDir
	}

	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, errors.Wrap(err, "read deck")
	}

	var rows []Row
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !isMarkdown(name) || strings.HasPrefix(name, ".") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(l.root, name))
		if err != nil {
			return nil, errors.Wrapf(err, "read row %s", name)
		}
		row, err := ParseRow(name, data)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	sortRows(rows)
	return rows, nil
}

// ParseRow builds a row from a markdown file with optional front matter.
func ParseRow(name string, data []byte) (Row, error) {
	var meta rowMeta
	body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
	if err != nil {
		return Row{}, errors.Wrapf(err, "parse front matter of %s", name)
	}
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = strings.TrimSuffix(name, filepath.Ext(name))
	}
	return Row{
		ID:    RowID(name),
		Path:  name,
		Title: title,
		Left:  strings.TrimSpace(meta.Left),
		Right: strings.TrimSpace(meta.Right),
		Order: meta.Order,
		Body:  strings.TrimSpace(string(body)),
	}, nil
}

func isMarkdown(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".mdx")
}
