package storage

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/alainchaple/formulario-publicaciones-ua/publication"
)

func openTestStore(t *testing.T) *CSVStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "data.csv"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpen_WritesHeaderOnFirstUse(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	content, err := store.ReadAll()
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	if string(content) != publication.HeaderLine() {
		t.Fatalf("new store content = %q, want header line only", content)
	}
}

func TestOpen_KeepsExistingContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data.csv")
	existing := publication.HeaderLine() + `"x","","","","","","","","","","","","","","","",""` + "\n"
	if err := os.WriteFile(path, []byte(existing), 0o644); err != nil {
		t.Fatalf("seed store file: %v", err)
	}

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	content, err := store.ReadAll()
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	if string(content) != existing {
		t.Fatalf("reopening must not rewrite the header: %q", content)
	}
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "data.csv")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store in missing directory: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("store file not created: %v", err)
	}
}

func TestAppend_PreservesOrder(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	lines := []string{
		`"1","a","","","","","","","","","","","","","","",""` + "\n",
		`"2","b","","","","","","","","","","","","","","",""` + "\n",
	}
	if err := store.Append(lines); err != nil {
		t.Fatalf("append: %v", err)
	}

	content, err := store.ReadAll()
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	want := publication.HeaderLine() + lines[0] + lines[1]
	if string(content) != want {
		t.Fatalf("store content = %q, want %q", content, want)
	}
}

func TestAppend_EmptyBatchIsNoop(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	if err := store.Append(nil); err != nil {
		t.Fatalf("append empty batch: %v", err)
	}
	content, _ := store.ReadAll()
	if string(content) != publication.HeaderLine() {
		t.Fatalf("empty append must not change the store")
	}
}

func TestReset_LeavesOnlyHeader(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	if err := store.Append([]string{`"x","","","","","","","","","","","","","","","",""` + "\n"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	if err := store.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}

	content, err := store.ReadAll()
	if err != nil {
		t.Fatalf("read store: %v", err)
	}
	if string(content) != publication.HeaderLine() {
		t.Fatalf("after reset content = %q, want header line only", content)
	}

	// The store keeps accepting appends after a reset.
	line := `"y","","","","","","","","","","","","","","","",""` + "\n"
	if err := store.Append([]string{line}); err != nil {
		t.Fatalf("append after reset: %v", err)
	}
	content, _ = store.ReadAll()
	if string(content) != publication.HeaderLine()+line {
		t.Fatalf("append after reset produced %q", content)
	}
}

func TestAppend_ConcurrentWritersKeepLinesWellFormed(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)

	const writers = 8
	const linesPerWriter = 25

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < linesPerWriter; i++ {
				record := publication.Record{Timestamp: "t", Name: "concurrent, \"writer\""}
				if err := store.Append([]string{record.EncodeLine()}); err != nil {
					t.Errorf("concurrent append: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()

	content, err := store.ReadAll()
	if err != nil {
		t.Fatalf("read store: %v", err)
	}

	reader := csv.NewReader(bytes.NewReader(content))
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("store content not parseable after concurrent appends: %v", err)
	}
	if len(rows) != 1+writers*linesPerWriter {
		t.Fatalf("expected %d rows, got %d", 1+writers*linesPerWriter, len(rows))
	}
	for i, row := range rows {
		if len(row) != len(publication.HeaderColumns) {
			t.Fatalf("row %d has %d fields, want %d", i, len(row), len(publication.HeaderColumns))
		}
	}
}

func TestCopyTo_StreamsFullContent(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	line := `"z","","","","","","","","","","","","","","","",""` + "\n"
	if err := store.Append([]string{line}); err != nil {
		t.Fatalf("append: %v", err)
	}

	var buf strings.Builder
	written, err := store.CopyTo(&buf)
	if err != nil {
		t.Fatalf("copy store: %v", err)
	}
	want := publication.HeaderLine() + line
	if buf.String() != want {
		t.Fatalf("copied content = %q, want %q", buf.String(), want)
	}
	if written != int64(len(want)) {
		t.Fatalf("written = %d, want %d", written, len(want))
	}
}
