package deck

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeRow(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestParseRowFrontMatter(t *testing.T) {
	row, err := ParseRow("judo.md", []byte("---\ntitle: Judo\nleft: Archive\nright: Delete\norder: 2\n---\n\n**gentle way**\n"))
	if err != nil {
		t.Fatalf("ParseRow: %v", err)
	}
	if row.Title != "Judo" || row.Left != "Archive" || row.Right != "Delete" || row.Order != 2 {
		t.Fatalf("row = %+v", row)
	}
	if row.Body != "**gentle way**" {
		t.Fatalf("body = %q", row.Body)
	}
	if !row.HasLeft() || !row.HasRight() {
		t.Fatalf("panels missing: %+v", row)
	}
	if row.ID != RowID("judo.md") {
		t.Fatalf("id = %q", row.ID)
	}
}

func TestParseRowWithoutFrontMatter(t *testing.T) {
	row, err := ParseRow("kendo.md", []byte("Way of the sword"))
	if err != nil {
		t.Fatalf("ParseRow: %v", err)
	}
	if row.Title != "kendo" || row.HasLeft() || row.HasRight() {
		t.Fatalf("row = %+v", row)
	}
}

func TestListOrdersRows(t *testing.T) {
	dir := t.TempDir()
	writeRow(t, dir, "b.md", "---\ntitle: Beta\norder: 1\n---\nb")
	writeRow(t, dir, "a.md", "---\ntitle: Alpha\norder: 1\n---\na")
	writeRow(t, dir, "z.md", "---\ntitle: Zero\n---\nz")
	writeRow(t, dir, "notes.txt", "ignored")
	if err := os.Mkdir(filepath.Join(dir, "sub.md"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	rows, err := NewFSLoader(dir).List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	var titles []string
	for _, r := range rows {
		titles = append(titles, r.Title)
	}
	want := []string{"Zero", "Alpha", "Beta"}
	if len(titles) != len(want) {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("titles = %v, want %v", titles, want)
		}
	}
}

func TestListRejectsFile(t *testing.T) {
	dir := t.TempDir()
	writeRow(t, dir, "a.md", "a")
	if _, err := NewFSLoader(filepath.Join(dir, "a.md")).List(); err != ErrNotDir {
		t.Fatalf("err = %v, want ErrNotDir", err)
	}
}

func TestDiff(t *testing.T) {
	a := Row{ID: "a"}
	b := Row{ID: "b"}
	c := Row{ID: "c"}
	added, removed := Diff([]Row{a, b}, []Row{b, c})
	if len(added) != 1 || added[0].ID != "c" {
		t.Fatalf("added = %v", added)
	}
	if len(removed) != 1 || removed[0].ID != "a" {
		t.Fatalf("removed = %v", removed)
	}
}

func TestFilter(t *testing.T) {
	rows := []Row{{Title: "Aikido"}, {Title: "Kendo"}, {Title: "Nihon Jujutsu"}}
	if got := Filter(rows, ""); len(got) != 3 {
		t.Fatalf("empty filter kept %d rows", len(got))
	}
	if got := Filter(rows, "KEN"); len(got) != 1 || got[0].Title != "Kendo" {
		t.Fatalf("substring filter = %v", got)
	}
	if got := Filter(rows, "jujitsu"); len(got) != 1 || got[0].Title != "Nihon Jujutsu" {
		t.Fatalf("fuzzy filter = %v", got)
	}
}

func TestWatcherReportsRowChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := Watch(dir)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	writeRow(t, dir, "notes.txt", "ignored")
	writeRow(t, dir, "new.md", "fresh row")

	select {
	case c := <-w.Changes():
		if c.Err != nil {
			t.Fatalf("watch error: %v", c.Err)
		}
		if filepath.Base(c.Path) != "new.md" {
			t.Fatalf("change path = %q, want new.md", c.Path)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no change reported")
	}
}
