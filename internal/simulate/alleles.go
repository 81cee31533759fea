package simulate

import (
	"fmt"
	"strings"
)

// Record is a simulated variant call. POS is 1-based. Fields with no
// applicable value hold MissingValue: REF for pure insertions, ALT for
// deletions, and ID/QUAL/FILTER always.
type Record struct {
	Pos    int
	ID     string
	Ref    string
	Alt    string
	Qual   string
	Filter string
}

// InvalidBaseError reports a reference base outside the alphabet at a
// substitution site.
type InvalidBaseError struct {
	Locus int
	Base  byte
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("invalid base character %q at locus %d", e.Base, e.Locus)
}

// Substitution generates REF/ALT alleles for a single-base substitution at
// the 1-based locus. The reference base is upper-cased and must be one of
// the four bases; the alternate is drawn uniformly from the other three.
func (g *RNG) Substitution(locus int, seq string) (ref, alt string, err error) {
	b := upper(seq[locus-1])
	if !strings.ContainsRune(Bases, rune(b)) {
		return "", "", &InvalidBaseError{Locus: locus, Base: seq[locus-1]}
	}
	return string(b), string(g.BaseExcluding(b)), nil
}

// Indel generates REF/ALT alleles for an insertion or deletion of the given
// length at the 1-based locus. Insertions synthesize a fresh alternate
// sequence with independent uniform draws per base; deletions take the
// reference substring starting at locus. Unlike Substitution, the reference
// bases are not checked against the alphabet.
func (g *RNG) Indel(locus int, seq string, insertion bool, length int) (ref, alt string) {
	if insertion {
		var sb strings.Builder
		sb.Grow(length)
		for i := 0; i < length; i++ {
			sb.WriteByte(g.Base())
		}
		return MissingValue, sb.String()
	}
	end := locus - 1 + length
	if end > len(seq) {
		end = len(seq)
	}
	return strings.ToUpper(seq[locus-1 : end]), MissingValue
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
