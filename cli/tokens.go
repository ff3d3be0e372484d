package cli

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/tuannh982/intsets/utils/collections"
)

// tokenReader hands out whitespace separated tokens regardless of how they were
// spread over input lines.
type tokenReader struct {
	scanner *bufio.Scanner
	pending collections.Queue[string]
}

func newTokenReader(r io.Reader) *tokenReader {
	return &tokenReader{
		scanner: bufio.NewScanner(r),
		pending: collections.NewQueue[string](),
	}
}

// next returns io.EOF once the input is exhausted.
func (t *tokenReader) next() (string, error) {
	for t.pending.Size() == 0 {
		if !t.scanner.Scan() {
			if err := t.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		t.pending.Push(strings.Fields(t.scanner.Text())...)
	}
	return t.pending.Pop()
}

func (t *tokenReader) nextInt() (int64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(tok, 10, 64)
}
