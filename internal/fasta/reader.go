// Package fasta provides streaming FASTA region reading.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Region is a named reference sequence. Positions into Seq are 1-based
// throughout the tool.
type Region struct {
	ID  string
	Seq string
}

// Len returns the sequence length.
func (r *Region) Len() int {
	return len(r.Seq)
}

// RegionNotFoundError reports a requested region ID absent from the
// reference.
type RegionNotFoundError struct {
	ID string
}

func (e *RegionNotFoundError) Error() string {
	return fmt.Sprintf("region %q not found in reference", e.ID)
}

// Reader streams regions from a FASTA file.
type Reader struct {
	scanner    *bufio.Scanner
	file       *os.File
	gzipReader *gzip.Reader
	pendingID  string // header of the next region, already consumed
	done       bool
}

// NewReader opens a FASTA file for streaming. Gzipped files (.gz) are
// handled transparently.
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open FASTA file: %w", err)
	}

	r := &Reader{file: file}
	var src io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		r.gzipReader, err = gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		src = r.gzipReader
	}
	r.init(src)
	return r, nil
}

// NewReaderFrom creates a reader over an already opened stream.
func NewReaderFrom(src io.Reader) *Reader {
	r := &Reader{}
	r.init(src)
	return r
}

func (r *Reader) init(src io.Reader) {
	r.scanner = bufio.NewScanner(src)
	// Long sequence lines are common in reference files.
	buf := make([]byte, 0, 64*1024)
	r.scanner.Buffer(buf, 10*1024*1024)
}

// Next returns the next region, or nil, nil when the file is exhausted.
func (r *Reader) Next() (*Region, error) {
	if r.done {
		return nil, nil
	}

	id := r.pendingID
	var seq strings.Builder
	for r.scanner.Scan() {
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			next := parseHeader(line)
			if id == "" {
				id = next
				continue
			}
			r.pendingID = next
			return &Region{ID: id, Seq: seq.String()}, nil
		}
		if id == "" {
			return nil, fmt.Errorf("sequence data before any FASTA header")
		}
		seq.WriteString(line)
	}
	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("read FASTA: %w", err)
	}

	r.done = true
	if id == "" {
		return nil, nil
	}
	return &Region{ID: id, Seq: seq.String()}, nil
}

// parseHeader extracts the region ID: the first whitespace-delimited word
// after ">".
func parseHeader(line string) string {
	header := strings.TrimPrefix(line, ">")
	if i := strings.IndexAny(header, " \t"); i >= 0 {
		header = header[:i]
	}
	return header
}

// Close closes the reader and the underlying file.
func (r *Reader) Close() error {
	if r.gzipReader != nil {
		r.gzipReader.Close()
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}
