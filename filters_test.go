package combine

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding"
)

func TestDecodeTextPassesValidUTF8Unchanged(t *testing.T) {
	t.Parallel()
	tcs := []string{
		"",
		"hello",
		"héllo, 世界\n",
		"windows\r\nline endings\r\n",
		"no trailing newline",
		strings.Repeat("ünïcödé ", 10000),
	}
	for _, want := range tcs {
		got, err := Echo(want).DecodeText().String()
		if err != nil {
			t.Errorf("%.20q: %v", want, err)
			continue
		}
		if got != want {
			t.Errorf("%.20q: got %.20q", want, got)
		}
	}
}

func TestDecodeTextRejectsInvalidUTF8(t *testing.T) {
	t.Parallel()
	tcs := map[string]string{
		"invalid start byte":  "caf\xe9",
		"truncated rune":      "abc\xe4\xb8",
		"lone continuation":   "\x80abc",
		"late invalid byte":   strings.Repeat("a", 8192) + "\xff",
		"overlong encoding":   "\xc0\xaf",
		"surrogate half":      "\xed\xa0\x80",
		"invalid after valid": "世界\xfe",
	}
	for name, input := range tcs {
		_, err := Echo(input).DecodeText().String()
		if !errors.Is(err, encoding.ErrInvalidUTF8) {
			t.Errorf("%s: want ErrInvalidUTF8, got %v", name, err)
		}
	}
}

func TestDecodeTextClosesSourceOnError(t *testing.T) {
	t.Parallel()
	r := &closeRecorder{Reader: strings.NewReader("ok\xff and then some")}
	p := NewPipe().WithReader(r).DecodeText().Block("bad.txt")
	if p.Error() == nil {
		t.Fatal("want error status for invalid input, got nil")
	}
	if !r.closed {
		t.Error("source not closed after decode error")
	}
}

func TestBlock(t *testing.T) {
	t.Parallel()
	want, err := os.ReadFile("testdata/hello.block.golden.txt")
	if err != nil {
		t.Fatal(err)
	}
	got, err := File("testdata/hello.txt").DecodeText().Block("hello.txt").Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(want, got) {
		t.Error(cmp.Diff(string(want), string(got)))
	}
}

func TestBlockFramesContents(t *testing.T) {
	t.Parallel()
	tcs := []struct {
		name, input, want string
	}{
		{"a.txt", "hello", "--- Contents of a.txt ---\nhello\n\n"},
		{"empty.txt", "", "--- Contents of empty.txt ---\n\n\n"},
		{"b.txt", "world\n", "--- Contents of b.txt ---\nworld\n\n\n"},
		{"name with spaces", "x", "--- Contents of name with spaces ---\nx\n\n"},
	}
	for _, tc := range tcs {
		got, err := Echo(tc.input).Block(tc.name).String()
		if err != nil {
			t.Fatal(err)
		}
		if got != tc.want {
			t.Errorf("%s: want %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestBlockIsEmptyWhenReadFails(t *testing.T) {
	t.Parallel()
	got, err := Echo("ok so far\xff").DecodeText().Block("bad.txt").String()
	if err == nil {
		t.Fatal("want error, got nil")
	}
	if got != "" {
		t.Errorf("want no partial block, got %q", got)
	}
}

func TestBlockOfLatin1FileFails(t *testing.T) {
	t.Parallel()
	p := File("testdata/latin1.txt").DecodeText().Block("latin1.txt")
	if !errors.Is(p.Error(), encoding.ErrInvalidUTF8) {
		t.Errorf("want ErrInvalidUTF8, got %v", p.Error())
	}
}
