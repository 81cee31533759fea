// Package output provides tabular writers for k-mer SNP counts.
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cartoonist/vcfy/internal/ksnp"
)

// CountWriter writes one "k,count" row per k-mer window.
type CountWriter struct {
	w *csv.Writer
	k int
}

// NewCountWriter creates a writer for windows of length k.
func NewCountWriter(w io.Writer, k int) *CountWriter {
	return &CountWriter{w: csv.NewWriter(w), k: k}
}

// WriteHeader writes the header row.
func (cw *CountWriter) WriteHeader() error {
	return cw.w.Write([]string{"k", "count"})
}

// Write writes a single window count.
func (cw *CountWriter) Write(count int) error {
	return cw.w.Write([]string{strconv.Itoa(cw.k), strconv.Itoa(count)})
}

// Flush flushes buffered rows and reports any write error.
func (cw *CountWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

// FreqWriter writes the count frequency histogram as "k,count,freq" rows.
type FreqWriter struct {
	w *csv.Writer
	k int
}

// NewFreqWriter creates a histogram writer for windows of length k.
func NewFreqWriter(w io.Writer, k int) *FreqWriter {
	return &FreqWriter{w: csv.NewWriter(w), k: k}
}

// WriteHeader writes the header row.
func (fw *FreqWriter) WriteHeader() error {
	return fw.w.Write([]string{"k", "count", "freq"})
}

// Write writes a single histogram bin.
func (fw *FreqWriter) Write(bin ksnp.Bin) error {
	return fw.w.Write([]string{
		strconv.Itoa(fw.k),
		strconv.Itoa(bin.Count),
		strconv.Itoa(bin.Freq),
	})
}

// Flush flushes buffered rows and reports any write error.
func (fw *FreqWriter) Flush() error {
	fw.w.Flush()
	return fw.w.Error()
}
