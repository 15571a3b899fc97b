package combine

import (
	"io"
)

// Bytes returns the contents of the pipe as a []byte, or an error, and closes
// the pipe after reading. If there is an error reading, the pipe's error
// status is also set.
func (p *Pipe) Bytes() ([]byte, error) {
	if p.Error() != nil {
		return nil, p.Error()
	}
	defer p.Close()
	res, err := io.ReadAll(p)
	if err != nil {
		p.SetError(err)
		return nil, err
	}
	return res, nil
}

// String returns the contents of the pipe as a string, or an error, and
// closes the pipe after reading. If there is an error reading, the pipe's
// error status is also set.
func (p *Pipe) String() (string, error) {
	res, err := p.Bytes()
	return string(res), err
}

// AppendTo copies the contents of the pipe to w, which is typically an output
// file held open by the caller, and closes the pipe after reading. It returns
// the number of bytes successfully written, or an error. If there is an error
// reading or writing, the pipe's error status is also set.
func (p *Pipe) AppendTo(w io.Writer) (int64, error) {
	if p.Error() != nil {
		return 0, p.Error()
	}
	defer p.Close()
	wrote, err := io.Copy(w, p)
	if err != nil {
		p.SetError(err)
		return wrote, err
	}
	return wrote, nil
}
