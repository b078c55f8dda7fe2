package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input implements sequential line reading through a Queue of one or more
// input streams, tracking the Location of the last line read to facilitate
// user feedback.
type Input struct {
	Queue []io.Reader
	Last  Location

	cur  io.Reader
	scan *bufio.Scanner
}

// ReadLine reads the next line, without its line ending, moving on to the
// next queued stream once the current one is exhausted. Returns io.EOF once
// all streams have been read.
func (in *Input) ReadLine() (string, error) {
	for {
		if in.scan == nil && !in.nextIn() {
			return "", io.EOF
		}
		if in.scan.Scan() {
			in.Last.Line++
			return strings.TrimSuffix(in.scan.Text(), "\r"), nil
		}
		err := in.scan.Err()
		in.closeIn()
		if err != nil {
			return "", fmt.Errorf("%v: %w", in.Last.Name, err)
		}
	}
}

// Close closes any remaining streams that implement io.Closer.
func (in *Input) Close() (err error) {
	in.closeIn()
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	in.cur = in.Queue[0]
	in.Queue = in.Queue[1:]
	in.scan = bufio.NewScanner(in.cur)
	in.Last = Location{Name: nameOf(in.cur)}
	return true
}

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur = nil
	in.scan = nil
}

// NamedReader attaches a name to a reader, for use in Input Locations.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

// Close closes the underlying reader, if it is an io.Closer.
func (nr namedReader) Close() error {
	if cl, ok := nr.Reader.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
