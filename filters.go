package combine

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// HeaderFormat is the header line written before each file's contents.
const HeaderFormat = "--- Contents of %s ---\n"

// separator follows each file's contents, leaving one blank line between
// blocks.
const separator = "\n\n"

// readCloser pairs a filtering reader with the closer of the source it reads
// from.
type readCloser struct {
	io.Reader
	io.Closer
}

// DecodeText reads from the pipe, and returns a pipe whose reads fail with an
// error wrapping encoding.ErrInvalidUTF8 as soon as the input turns out not
// to be valid UTF-8. Valid input passes through unchanged.
func (p *Pipe) DecodeText() *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	r := transform.NewReader(p.Reader, encoding.UTF8Validator)
	return NewPipe().WithReader(readCloser{r, p.Reader})
}

// Block reads the whole of the pipe, and returns a new pipe containing the
// contents framed for the combined output: a header line naming the file,
// the contents, then a blank line. If reading fails, the returned pipe has
// its error status set and contains nothing, so a block is either complete
// or absent.
func (p *Pipe) Block(name string) *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	body, err := p.Bytes()
	if err != nil {
		return p
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, HeaderFormat, name)
	b.Write(body)
	b.WriteString(separator)
	return NewPipe().WithReader(&b)
}
