package ksnp

import (
	"fmt"
	"sort"
)

// Counter lazily produces the SNP count of every k-mer window over an
// indicator vector. Window i covers positions [i+1, i+k] and its count is
// maintained as a sliding sum: add the bit entering on the right, drop the
// bit leaving on the left.
type Counter struct {
	ind   []bool
	k     int
	next  int // index of the next window to produce
	count int
}

// NewCounter validates k against the indicator length and returns a counter
// positioned before the first window.
func NewCounter(indicator []bool, k int) (*Counter, error) {
	if k < 1 {
		return nil, &InvalidArgumentError{Message: fmt.Sprintf("non-positive k %d", k)}
	}
	if k > len(indicator) {
		return nil, &InvalidArgumentError{
			Message: fmt.Sprintf("k %d exceeds reference length %d", k, len(indicator)),
		}
	}
	return &Counter{ind: indicator, k: k}, nil
}

// Len returns the total number of windows.
func (c *Counter) Len() int {
	return len(c.ind) - c.k + 1
}

// Next returns the count of the next window. ok is false once all
// len(indicator)-k+1 windows have been produced.
func (c *Counter) Next() (count int, ok bool) {
	if c.next >= c.Len() {
		return 0, false
	}
	if c.next == 0 {
		for i := 0; i < c.k; i++ {
			if c.ind[i] {
				c.count++
			}
		}
	} else {
		if c.ind[c.next+c.k-1] {
			c.count++
		}
		if c.ind[c.next-1] {
			c.count--
		}
	}
	c.next++
	return c.count, true
}

// Bin is one row of the count frequency histogram.
type Bin struct {
	Count int // SNPs per window
	Freq  int // number of windows with that count
}

// Histogram drains the counter into a frequency histogram sorted ascending
// by count value.
func Histogram(c *Counter) []Bin {
	freqs := make(map[int]int)
	for {
		count, ok := c.Next()
		if !ok {
			break
		}
		freqs[count]++
	}
	bins := make([]Bin, 0, len(freqs))
	for count, freq := range freqs {
		bins = append(bins, Bin{Count: count, Freq: freq})
	}
	sort.Slice(bins, func(i, j int) bool { return bins[i].Count < bins[j].Count })
	return bins
}
