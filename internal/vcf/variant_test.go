package vcf

import "testing"

func TestVariant_Classification(t *testing.T) {
	tests := []struct {
		name    string
		ref     string
		alt     string
		isSNV   bool
		isIndel bool
	}{
		{"substitution", "G", "T", true, false},
		{"deletion", "TA", ".", false, true},
		{"pure deletion", "T", ".", false, false},
		{"insertion", ".", "ACG", false, true},
		{"multi-base", "AC", "GT", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Variant{Ref: tt.ref, Alt: tt.alt}
			if v.IsSNV() != tt.isSNV {
				t.Errorf("IsSNV() = %v, want %v", v.IsSNV(), tt.isSNV)
			}
			if v.IsIndel() != tt.isIndel {
				t.Errorf("IsIndel() = %v, want %v", v.IsIndel(), tt.isIndel)
			}
		})
	}
}
