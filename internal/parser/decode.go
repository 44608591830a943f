package parser

// decode.go wraps file readers so the CSV adapter can stream dirty
// real-world exports without materializing them: a UTF-8 BOM skipper
// (Windows tools love prepending one) and a UTF-8 sanitizer that
// replaces invalid bytes with '?' on the fly, holding back incomplete
// multi-byte sequences between reads.

import (
	"bufio"
	"bytes"
	"io"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// wrapImportReader applies BOM skipping then UTF-8 sanitization.
// Order matters: the BOM must go before sanitization sees it.
func wrapImportReader(r io.Reader) io.Reader {
	return newUTF8Sanitizer(newBOMSkipper(r))
}

type bomSkipper struct {
	r       *bufio.Reader
	checked bool
}

func newBOMSkipper(r io.Reader) *bomSkipper {
	return &bomSkipper{r: bufio.NewReader(r)}
}

func (b *bomSkipper) Read(p []byte) (int, error) {
	if !b.checked {
		b.checked = true
		if peek, err := b.r.Peek(len(utf8BOM)); err == nil && bytes.Equal(peek, utf8BOM) {
			if _, err := b.r.Discard(len(utf8BOM)); err != nil {
				return 0, err
			}
		}
	}
	return b.r.Read(p)
}

// utf8Sanitizer replaces invalid UTF-8 with '?' in constant memory.
// A single replacement byte (rather than U+FFFD) keeps output no
// larger than input, so sanitization can happen in place.
type utf8Sanitizer struct {
	r       io.Reader
	pending []byte
}

func newUTF8Sanitizer(r io.Reader) *utf8Sanitizer {
	return &utf8Sanitizer{r: r, pending: make([]byte, 0, utf8.UTFMax)}
}

func (s *utf8Sanitizer) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	offset := 0
	if len(s.pending) > 0 {
		offset = copy(p, s.pending)
		s.pending = s.pending[:0]
	}

	n, err := s.r.Read(p[offset:])
	n += offset
	if n == 0 {
		return 0, err
	}

	if allASCII(p[:n]) {
		return n, err
	}
	return s.sanitize(p[:n], err == io.EOF), err
}

// sanitize rewrites data in place, returning the number of valid
// bytes. Unless atEOF, an incomplete trailing sequence is saved for
// the next read instead of being mangled.
func (s *utf8Sanitizer) sanitize(data []byte, atEOF bool) int {
	write := 0
	for read := 0; read < len(data); {
		r, size := utf8.DecodeRune(data[read:])
		if r == utf8.RuneError && size == 1 {
			rest := data[read:]
			if !atEOF && len(rest) < utf8.UTFMax && !utf8.FullRune(rest) {
				s.pending = append(s.pending, rest...)
				return write
			}
			data[write] = '?'
			write++
			read++
			continue
		}
		copy(data[write:], data[read:read+size])
		write += size
		read += size
	}
	return write
}

func allASCII(data []byte) bool {
	for _, b := range data {
		if b >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
