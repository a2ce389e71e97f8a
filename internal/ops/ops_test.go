package ops

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benaskins/lockbox/internal/clipboard"
	"github.com/benaskins/lockbox/internal/index"
	"github.com/benaskins/lockbox/internal/password"
	"github.com/benaskins/lockbox/internal/secret"
)

func testIndex() *index.Index {
	return index.New(nil, secret.NewMemoryStore())
}

func TestImportFromStdin(t *testing.T) {
	ix := testIndex()

	err := Import(ix, ImportOptions{
		Account: "github",
		Source:  "-",
		Stdin:   strings.NewReader("hunter2\n"),
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	val, err := ix.Get("github")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if val != "hunter2" {
		t.Errorf("expected 'hunter2', got %q", val)
	}
}

func TestImportStripsSingleTrailingNewlineOnly(t *testing.T) {
	ix := testIndex()

	// Leading and interior whitespace is part of the password.
	err := Import(ix, ImportOptions{
		Account: "spacey",
		Source:  "-",
		Stdin:   strings.NewReader("  pass word \n"),
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	val, _ := ix.Get("spacey")
	if val != "  pass word " {
		t.Errorf("expected %q, got %q", "  pass word ", val)
	}
}

func TestImportWithoutTrailingNewline(t *testing.T) {
	ix := testIndex()

	err := Import(ix, ImportOptions{
		Account: "github",
		Source:  "-",
		Stdin:   strings.NewReader("hunter2"),
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	val, _ := ix.Get("github")
	if val != "hunter2" {
		t.Errorf("expected 'hunter2', got %q", val)
	}
}

func TestImportFromFile(t *testing.T) {
	ix := testIndex()
	path := filepath.Join(t.TempDir(), "pw")
	if err := os.WriteFile(path, []byte("from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}

	err := Import(ix, ImportOptions{Account: "github", Source: path})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	val, _ := ix.Get("github")
	if val != "from-file" {
		t.Errorf("expected 'from-file', got %q", val)
	}
}

func TestImportMissingFile(t *testing.T) {
	ix := testIndex()

	err := Import(ix, ImportOptions{
		Account: "github",
		Source:  filepath.Join(t.TempDir(), "nope"),
	})
	if err == nil {
		t.Error("expected error for missing password file")
	}
	if ix.Contains("github") {
		t.Error("failed import must not register the account")
	}
}

func TestImportConflict(t *testing.T) {
	ix := testIndex()
	ix.Set("github", "original")

	err := Import(ix, ImportOptions{
		Account: "github",
		Source:  "-",
		Stdin:   strings.NewReader("replacement\n"),
	})
	if !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}

	// Stored secret must be untouched.
	val, _ := ix.Get("github")
	if val != "original" {
		t.Errorf("expected 'original', got %q", val)
	}
}

func TestImportForceOverwrites(t *testing.T) {
	ix := testIndex()
	ix.Set("github", "original")

	err := Import(ix, ImportOptions{
		Account: "github",
		Source:  "-",
		Force:   true,
		Stdin:   strings.NewReader("replacement\n"),
	})
	if err != nil {
		t.Fatalf("Import: %v", err)
	}

	val, _ := ix.Get("github")
	if val != "replacement" {
		t.Errorf("expected 'replacement', got %q", val)
	}
}

func TestReadLineRejectsMultipleLines(t *testing.T) {
	if _, err := ReadLine(strings.NewReader("one\ntwo\n")); err == nil {
		t.Error("expected error for multi-line input")
	}
}

func TestReadLineRejectsOversizedPassword(t *testing.T) {
	long := strings.Repeat("x", MaxPasswordLine+1)
	if _, err := ReadLine(strings.NewReader(long)); err == nil {
		t.Error("expected error past the size limit")
	}

	// Exactly at the limit is fine.
	ok := strings.Repeat("x", MaxPasswordLine)
	got, err := ReadLine(strings.NewReader(ok))
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if got != ok {
		t.Errorf("limit-sized password mangled")
	}
}

func TestRemove(t *testing.T) {
	ix := testIndex()
	ix.Set("github", "pw")

	if err := Remove(ix, "github"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if ix.Contains("github") {
		t.Error("account still present after Remove")
	}
}

func TestRemoveNotFound(t *testing.T) {
	ix := testIndex()

	if err := Remove(ix, "nope"); !errors.Is(err, index.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestPrint(t *testing.T) {
	ix := testIndex()
	ix.Set("github", "hunter2")

	var out strings.Builder
	if err := Print(&out, ix, PrintOptions{Account: "github"}); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if out.String() != "hunter2\n" {
		t.Errorf("output = %q, want %q", out.String(), "hunter2\n")
	}
}

func TestPrintChunked(t *testing.T) {
	ix := testIndex()
	ix.Set("github", "abcdefghij")

	var out strings.Builder
	if err := Print(&out, ix, PrintOptions{Account: "github", Chunk: true}); err != nil {
		t.Fatalf("Print: %v", err)
	}
	if out.String() != "abcd efgh ij\n" {
		t.Errorf("output = %q, want %q", out.String(), "abcd efgh ij\n")
	}
}

func TestPrintNotFound(t *testing.T) {
	ix := testIndex()

	var out strings.Builder
	if err := Print(&out, ix, PrintOptions{Account: "nope"}); !errors.Is(err, index.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing should be written on failure, got %q", out.String())
	}
}

func TestListSortedOnePerLine(t *testing.T) {
	ix := testIndex()
	for _, name := range []string{"alice", "bob", "Zed"} {
		ix.Set(name, "pw")
	}

	var out strings.Builder
	if err := List(&out, ix); err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.String() != "Zed\nalice\nbob\n" {
		t.Errorf("output = %q, want %q", out.String(), "Zed\nalice\nbob\n")
	}
}

func TestListEmpty(t *testing.T) {
	var out strings.Builder
	if err := List(&out, testIndex()); err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

// recordingSink captures copied text for assertions.
type recordingSink struct {
	copied string
	err    error
}

func (s *recordingSink) Copy(text string) error {
	if s.err != nil {
		return s.err
	}
	s.copied = text
	return nil
}

func TestCopy(t *testing.T) {
	ix := testIndex()
	ix.Set("github", "hunter2")

	sink := &recordingSink{}
	if err := Copy(ix, sink, "github"); err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if sink.copied != "hunter2" {
		t.Errorf("copied %q, want %q", sink.copied, "hunter2")
	}
}

func TestCopyNotFound(t *testing.T) {
	ix := testIndex()

	sink := &recordingSink{}
	if err := Copy(ix, sink, "nope"); !errors.Is(err, index.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if sink.copied != "" {
		t.Error("nothing should reach the clipboard on a missing account")
	}
}

func TestCopySinkFailure(t *testing.T) {
	ix := testIndex()
	ix.Set("github", "hunter2")

	sink := &recordingSink{err: errors.New("no display")}
	if err := Copy(ix, sink, "github"); err == nil {
		t.Error("expected error when the sink fails")
	}
}

func TestCopyCommandUnavailable(t *testing.T) {
	ix := testIndex()
	ix.Set("github", "hunter2")

	// A sink command that cannot run reports failure rather than printing
	// the secret anywhere.
	sink := clipboard.NewCommand("lockbox-no-such-copy-command")
	if err := Copy(ix, sink, "github"); err == nil {
		t.Error("expected error")
	}
}

func TestNewGeneratesAndStores(t *testing.T) {
	ix := testIndex()

	err := New(ix, &password.Generator{}, NewOptions{
		Account: "github",
		Mode:    password.ModeHex,
		Length:  16,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	val, err := ix.Get("github")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(val) != 32 {
		t.Errorf("hex mode length 16 should store 32 chars, got %d", len(val))
	}
}

func TestNewConflict(t *testing.T) {
	ix := testIndex()
	ix.Set("github", "original")

	err := New(ix, &password.Generator{}, NewOptions{
		Account: "github",
		Mode:    password.ModeHex,
		Length:  16,
	})
	if !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}

	val, _ := ix.Get("github")
	if val != "original" {
		t.Errorf("expected 'original', got %q", val)
	}
}

func TestNewForceOverwrites(t *testing.T) {
	ix := testIndex()
	ix.Set("github", "original")

	err := New(ix, &password.Generator{}, NewOptions{
		Account: "github",
		Mode:    password.ModeHex,
		Length:  16,
		Force:   true,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	val, _ := ix.Get("github")
	if val == "original" {
		t.Error("expected a fresh password")
	}
}

func TestNewInvalidLength(t *testing.T) {
	ix := testIndex()

	err := New(ix, &password.Generator{}, NewOptions{
		Account: "github",
		Mode:    password.ModeChars,
		Length:  2,
	})
	if !errors.Is(err, password.ErrLengthTooShort) {
		t.Fatalf("expected ErrLengthTooShort, got %v", err)
	}
	if ix.Contains("github") {
		t.Error("failed generation must not register the account")
	}
}
