// Package ops implements the lockbox commands. Each function takes the
// loaded account index plus validated options and performs exactly one
// operation; the cobra layer stays a thin wrapper around these.
package ops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/benaskins/lockbox/internal/clipboard"
	"github.com/benaskins/lockbox/internal/index"
	"github.com/benaskins/lockbox/internal/password"
)

// ErrExists is returned when an account already holds a password and the
// force flag was not given.
var ErrExists = errors.New("account already exists")

// MaxPasswordLine caps imported passwords at 1024 bytes.
const MaxPasswordLine = 1024

// ImportOptions configures Import.
type ImportOptions struct {
	Account string
	Source  string // password file path, or "-" for standard input
	Force   bool
	Stdin   io.Reader
}

// Import stores a password read from a file or standard input.
func Import(ix *index.Index, opts ImportOptions) error {
	if ix.Contains(opts.Account) && !opts.Force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, opts.Account)
	}
	value, err := readPassword(opts)
	if err != nil {
		return err
	}
	return ix.Set(opts.Account, value)
}

func readPassword(opts ImportOptions) (string, error) {
	var r io.Reader = opts.Stdin
	if opts.Source != "-" {
		f, err := os.Open(opts.Source)
		if err != nil {
			return "", fmt.Errorf("opening password file: %w", err)
		}
		defer f.Close()
		r = f
	}
	return ReadLine(r)
}

// ReadLine reads a password of at most MaxPasswordLine bytes, stripping
// exactly one trailing newline. Input with interior newlines or beyond the
// limit is rejected.
func ReadLine(r io.Reader) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxPasswordLine+1))
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	if len(data) > MaxPasswordLine {
		return "", fmt.Errorf("password exceeds %d bytes", MaxPasswordLine)
	}
	s := string(data)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		if i != len(s)-1 {
			return "", errors.New("password must be a single line")
		}
		s = s[:i]
	}
	return s, nil
}

// Remove deletes an account and its stored secret.
func Remove(ix *index.Index, account string) error {
	_, err := ix.Remove(account)
	return err
}

// PrintOptions configures Print.
type PrintOptions struct {
	Account string
	Chunk   bool
}

// Print writes the account's password to w, followed by a newline. With
// Chunk, the password is shown in groups of four characters for reading
// aloud or retyping; the stored value is unchanged.
func Print(w io.Writer, ix *index.Index, opts PrintOptions) error {
	val, err := ix.Get(opts.Account)
	if err != nil {
		return err
	}
	if opts.Chunk {
		val = chunk(val, 4)
	}
	_, err = fmt.Fprintln(w, val)
	return err
}

func chunk(s string, size int) string {
	var b strings.Builder
	for i := 0; i < len(s); i += size {
		if i > 0 {
			b.WriteByte(' ')
		}
		end := i + size
		if end > len(s) {
			end = len(s)
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}

// List writes all account names to w, one per line, in ascending byte
// order.
func List(w io.Writer, ix *index.Index) error {
	for _, name := range ix.Names() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// Copy places the account's password on the system clipboard.
func Copy(ix *index.Index, sink clipboard.Sink, account string) error {
	val, err := ix.Get(account)
	if err != nil {
		return err
	}
	if err := sink.Copy(val); err != nil {
		return fmt.Errorf("copying %q to clipboard: %w", account, err)
	}
	return nil
}

// NewOptions configures New.
type NewOptions struct {
	Account string
	Mode    string
	Length  int
	Force   bool
}

// New generates a password in the selected mode and stores it under the
// account.
func New(ix *index.Index, gen *password.Generator, opts NewOptions) error {
	if ix.Contains(opts.Account) && !opts.Force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, opts.Account)
	}
	value, err := gen.Generate(opts.Mode, opts.Length)
	if err != nil {
		return err
	}
	return ix.Set(opts.Account, value)
}
