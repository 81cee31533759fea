package vcf

import (
	"bufio"
	"fmt"
	"io"
	"text/template"
	"time"

	"github.com/cartoonist/vcfy/internal/simulate"
)

// headerTemplate is the fixed VCF header attached to simulated output.
const headerTemplate = `##fileformat=VCFv4.3
##fileDate={{.Date}}
##source=vcfy-{{.Version}}
{{- if .Reference}}
##reference={{.Reference}}
{{- end}}
##contig=<ID={{.RegionID}},length={{.RegionLen}}>
##commandline="{{.CommandLine}}"
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO
`

var headerTmpl = template.Must(template.New("header").Parse(headerTemplate))

// Header carries the values filled into the output header template.
type Header struct {
	Reference   string // reference genome path
	RegionID    string // simulated region name
	RegionLen   int    // simulated region length
	Version     string // tool version
	CommandLine string // invoking command line
	Date        string // YYYYMMDD; today when empty
}

// Writer serializes simulated variant records as VCF text.
type Writer struct {
	w     *bufio.Writer
	chrom string
}

// NewWriter creates a writer emitting records for the given region.
func NewWriter(w io.Writer, regionID string) *Writer {
	return &Writer{
		w:     bufio.NewWriter(w),
		chrom: regionID,
	}
}

// WriteHeader renders the header template.
func (w *Writer) WriteHeader(h Header) error {
	if h.Date == "" {
		h.Date = time.Now().Format("20060102")
	}
	if err := headerTmpl.Execute(w.w, h); err != nil {
		return fmt.Errorf("render vcf header: %w", err)
	}
	return nil
}

// Write writes a single record line.
func (w *Writer) Write(rec *simulate.Record) error {
	_, err := fmt.Fprintf(w.w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
		w.chrom, rec.Pos, rec.ID, rec.Ref, rec.Alt, rec.Qual, rec.Filter,
		simulate.MissingValue)
	return err
}

// Flush flushes buffered output.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
