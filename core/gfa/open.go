// core/gfa/open.go
package gfa

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"strings"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" is stdin; gzip input is detected by
// magic number or ".gz" suffix and decompressed. Failures are *IOError.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return decompress(path, os.Stdin, io.NopCloser(os.Stdin), false)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	return decompress(path, fh, fh, strings.HasSuffix(path, ".gz"))
}

// decompress peeks at the head of r and gunzips it when it carries the
// gzip magic number or force is set. c is closed with the result.
func decompress(path string, r io.Reader, c io.Closer, force bool) (io.ReadCloser, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	sig, _ := br.Peek(2)
	if !force && !(len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) {
		return &multiReadCloser{Reader: br, closers: []io.Closer{c}}, nil
	}
	gr, err := gzip.NewReader(br)
	if err != nil {
		_ = c.Close()
		return nil, &IOError{Op: "gunzip", Path: path, Err: err}
	}
	return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, c}}, nil
}

// Source yields the same record stream every time it is opened, so that
// a command can read its input more than once.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// FileSource re-opens path on every pass. Stdin ("-") cannot be re-read,
// so it is buffered in memory on the first Open.
func FileSource(path string) Source {
	if path == "-" {
		return &stdinSource{}
	}
	return fileSource(path)
}

type fileSource string

func (f fileSource) Name() string                 { return string(f) }
func (f fileSource) Open() (io.ReadCloser, error) { return Open(string(f)) }

type stdinSource struct {
	data []byte
	read bool
}

func (s *stdinSource) Name() string { return "-" }

func (s *stdinSource) Open() (io.ReadCloser, error) {
	if !s.read {
		rc, err := Open("-")
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, &IOError{Op: "read", Path: "-", Err: err}
		}
		s.data, s.read = data, true
	}
	return BytesSource("-", s.data).Open()
}

// BytesSource serves an in-memory GFA document.
func BytesSource(name string, data []byte) Source { return bytesSource{name: name, data: data} }

type bytesSource struct {
	name string
	data []byte
}

func (b bytesSource) Name() string { return b.name }

func (b bytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b.data)), nil
}
