// Package vcf provides VCF parsing for variant position extraction and VCF
// writing for simulated variant records.
package vcf

// Variant is a single parsed VCF data line.
type Variant struct {
	Chrom  string // chromosome / region name
	Pos    int    // 1-based genomic position
	ID     string // variant identifier
	Ref    string // reference allele
	Alt    string // alternate allele (possibly comma-separated)
	Qual   string // quality score, "." when missing
	Filter string // filter status
}

// IsSNV returns true if the variant is a single nucleotide variant.
func (v *Variant) IsSNV() bool {
	return len(v.Ref) == 1 && len(v.Alt) == 1 && v.Ref != "." && v.Alt != "."
}

// IsIndel returns true if the variant is an insertion or deletion.
func (v *Variant) IsIndel() bool {
	return len(v.Ref) != len(v.Alt)
}
