// Package fileinput resolves and reads program files, and reads located lines
// from interactive input streams.
package fileinput

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is wrapped by NotFoundError.
var ErrNotFound = errors.New("No such file or directory")

// NotFoundError reports a program path that could not be resolved.
type NotFoundError struct{ Path string }

func (nf *NotFoundError) Error() string { return fmt.Sprintf("%v: %v", nf.Path, ErrNotFound) }
func (nf *NotFoundError) Unwrap() error { return ErrNotFound }

// Location names a line in an input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// File is a fully read program file.
type File struct {
	Name    string
	Content string
}

// Resolve finds name as given, then relative to the working directory.
func Resolve(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	if wd, err := os.Getwd(); err == nil {
		alt := filepath.Join(wd, name)
		if _, err := os.Stat(alt); err == nil {
			return alt, nil
		}
	}
	return "", &NotFoundError{Path: name}
}

// ReadFile resolves and reads a whole program file.
func ReadFile(name string) (File, error) {
	path, err := Resolve(name)
	if err != nil {
		return File{}, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	return File{Name: path, Content: string(b)}, nil
}

// Lines reads newline-terminated lines from a stream, tracking the location of
// the last line read.
type Lines struct {
	Last Location

	br *bufio.Reader
	cl io.Closer
}

// NewLines creates a line reader; name labels locations, defaulting to the
// stream's Name() if it has one.
func NewLines(name string, r io.Reader) *Lines {
	if name == "" {
		name = nameOf(r)
	}
	lr := &Lines{Last: Location{Name: name}}
	if cl, ok := r.(io.Closer); ok {
		lr.cl = cl
	}
	if br, ok := r.(*bufio.Reader); ok {
		lr.br = br
	} else {
		lr.br = bufio.NewReader(r)
	}
	return lr
}

// ReadLine returns the next line without its line ending. A final line with
// no trailing newline is returned with a nil error; io.EOF is returned only
// once no content remains.
func (lr *Lines) ReadLine() (string, error) {
	line, err := lr.br.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	lr.Last.Line++
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// Close closes the underlying stream if it is closable.
func (lr *Lines) Close() error {
	if lr.cl != nil {
		return lr.cl.Close()
	}
	return nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
