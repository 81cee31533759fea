package vcf

import (
	"strings"
	"testing"
)

const testVCF = `##fileformat=VCFv4.3
##fileDate=20180412
##source=vcfy-dev
##reference=/data/ref.fa
##contig=<ID=chr1,length=16>
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO
chr1	3	.	G	T	.	.	.
chr1	5	.	A	.	.	.	.
chr1	7	.	.	ACG	.	.	.
chr1	9	.	C	G	.	.	.
`

func TestParser_Next(t *testing.T) {
	p, err := NewParserFromReader(strings.NewReader(testVCF))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	v, err := p.Next()
	if err != nil {
		t.Fatalf("Failed to read variant: %v", err)
	}
	if v == nil {
		t.Fatal("Expected a variant, got nil")
	}
	if v.Chrom != "chr1" {
		t.Errorf("Expected chrom chr1, got %s", v.Chrom)
	}
	if v.Pos != 3 {
		t.Errorf("Expected pos 3, got %d", v.Pos)
	}
	if v.Ref != "G" || v.Alt != "T" {
		t.Errorf("Expected G>T, got %s>%s", v.Ref, v.Alt)
	}
	if !v.IsSNV() {
		t.Error("G>T should be classified as SNV")
	}
}

func TestParser_Positions(t *testing.T) {
	p, err := NewParserFromReader(strings.NewReader(testVCF))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	positions, err := p.Positions()
	if err != nil {
		t.Fatalf("Failed to collect positions: %v", err)
	}

	// Every record marks its locus: the deletion at 5 and the insertion
	// at 7 count the same as the substitutions.
	want := []int{3, 5, 7, 9}
	if len(positions) != len(want) {
		t.Fatalf("Expected %d positions, got %v", len(want), positions)
	}
	for i, pos := range want {
		if positions[i] != pos {
			t.Errorf("Position %d: expected %d, got %d", i, pos, positions[i])
		}
	}
}

func TestParser_Reference(t *testing.T) {
	p, err := NewParserFromReader(strings.NewReader(testVCF))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	if ref := p.Reference(); ref != "/data/ref.fa" {
		t.Errorf("Expected reference /data/ref.fa, got %q", ref)
	}
}

func TestParser_ReferenceFileURI(t *testing.T) {
	in := strings.Replace(testVCF, "##reference=/data/ref.fa",
		"##reference=file:///data/ref.fa", 1)
	p, err := NewParserFromReader(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	if ref := p.Reference(); ref != "/data/ref.fa" {
		t.Errorf("Expected file:// prefix stripped, got %q", ref)
	}
}

func TestParser_Header(t *testing.T) {
	p, err := NewParserFromReader(strings.NewReader(testVCF))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	header := p.Header()
	if len(header) != 6 {
		t.Errorf("Expected 6 header lines, got %d", len(header))
	}
	if !strings.HasPrefix(header[len(header)-1], "#CHROM") {
		t.Error("Last header line should be #CHROM")
	}
}

func TestParser_MissingHeader(t *testing.T) {
	_, err := NewParserFromReader(strings.NewReader("chr1\t3\t.\tG\tT\t.\t.\t.\n"))
	if err == nil {
		t.Fatal("Expected error for missing #CHROM header")
	}
}

func TestParser_InvalidPosition(t *testing.T) {
	in := "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\nchr1\tbad\t.\tG\tT\t.\t.\t.\n"
	p, err := NewParserFromReader(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	_, err = p.Next()
	if err == nil {
		t.Fatal("Expected parse error for invalid position")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("Expected line context in error, got: %v", err)
	}
}

func TestParser_TooFewColumns(t *testing.T) {
	in := "#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\nchr1\t3\t.\tG\n"
	p, err := NewParserFromReader(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	_, err = p.Next()
	if err == nil {
		t.Fatal("Expected parse error for short line")
	}
}
