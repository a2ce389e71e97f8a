// Package password generates passwords from the kernel's secure random
// source. Four modes are offered: xkcd-style word passphrases, hex- and
// base64-encoded random bytes, and mixed-character strings.
package password

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"os"
	"strings"
)

// DefaultWordList is the word list used for xkcd-style passphrases unless
// the generator is configured with another path.
const DefaultWordList = "/usr/share/dict/words"

// Mode names accepted by Generate.
const (
	ModeWords  = "xkcd"
	ModeHex    = "hex"
	ModeBase64 = "base64"
	ModeChars  = "lame"
)

var (
	// ErrInvalidLength is returned for zero or negative lengths.
	ErrInvalidLength = errors.New("length must be positive")

	// ErrLengthTooShort is returned by Chars for lengths that cannot hold
	// a letter, a digit, and a punctuation character at once.
	ErrLengthTooShort = errors.New("length must be at least 3")

	// ErrWordListUnavailable is returned when the word list cannot be read.
	ErrWordListUnavailable = errors.New("word list unavailable")
)

const (
	letters     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	digits      = "0123456789"
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Generator produces passwords. The zero value is ready to use and reads
// the default word list.
type Generator struct {
	// WordList overrides the word list path for Words.
	WordList string
}

// Generate dispatches to the named mode. The meaning of n depends on the
// mode: words for xkcd, bytes of entropy for hex and base64, characters
// for lame.
func (g *Generator) Generate(mode string, n int) (string, error) {
	switch mode {
	case ModeWords:
		return g.Words(n)
	case ModeHex:
		return Hex(n)
	case ModeBase64:
		return Base64(n)
	case ModeChars:
		return Chars(n)
	}
	return "", fmt.Errorf("unknown generation mode %q", mode)
}

// Words returns n words chosen uniformly, with replacement, from the word
// list, joined by single spaces. Passphrase strength is (list size)^n, so
// a short word list weakens it.
func (g *Generator) Words(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}

	path := g.WordList
	if path == "" {
		path = DefaultWordList
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrWordListUnavailable, path)
	}
	words := strings.Fields(string(data))
	if len(words) == 0 {
		return "", fmt.Errorf("%w: %s is empty", ErrWordListUnavailable, path)
	}

	picked := make([]string, n)
	for i := range picked {
		j, err := randomIndex(len(words))
		if err != nil {
			return "", err
		}
		picked[i] = words[j]
	}
	return strings.Join(picked, " "), nil
}

// Hex returns the lowercase hex encoding of n random bytes. The output is
// exactly 2n characters.
func Hex(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	b, err := randomBytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// Base64 returns the URL-safe base64 encoding of n random bytes. The
// output is longer than n characters and is never truncated, so the full
// n bytes of entropy survive.
func Base64(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	b, err := randomBytes(n)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Chars returns an n-character password drawn uniformly from letters,
// digits, and punctuation, guaranteed to contain at least one of each.
// The whole string is re-rolled until every category appears; with n >= 3
// that takes a handful of iterations at most. Lengths below 3 can never
// satisfy all three categories and are rejected rather than looping.
func Chars(n int) (string, error) {
	if n < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidLength, n)
	}
	if n < 3 {
		return "", fmt.Errorf("%w: got %d", ErrLengthTooShort, n)
	}

	const alphabet = letters + digits + punctuation
	buf := make([]byte, n)
	for {
		for i := range buf {
			j, err := randomIndex(len(alphabet))
			if err != nil {
				return "", err
			}
			buf[i] = alphabet[j]
		}
		s := string(buf)
		if strings.ContainsAny(s, letters) &&
			strings.ContainsAny(s, digits) &&
			strings.ContainsAny(s, punctuation) {
			return s, nil
		}
	}
}

func randomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("reading random bytes: %w", err)
	}
	return b, nil
}

func randomIndex(n int) (int, error) {
	i, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random index: %w", err)
	}
	return int(i.Int64()), nil
}
