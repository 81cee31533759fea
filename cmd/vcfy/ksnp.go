package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cartoonist/vcfy/internal/fasta"
	"github.com/cartoonist/vcfy/internal/ksnp"
	"github.com/cartoonist/vcfy/internal/output"
	"github.com/cartoonist/vcfy/internal/vcf"
)

func newKsnpCmd() *cobra.Command {
	var (
		outputFile string
		refPath    string
		regionID   string
	)

	cmd := &cobra.Command{
		Use:   "ksnp [variants.vcf]",
		Short: "Report the number of SNPs in all k-mers",
		Long: `Count the SNPs of a VCF file falling in every k-mer window of the
reference genome and write the counts as CSV. The reference is taken from
the --reference flag or, failing that, from the VCF ##reference metadata.`,
		Example: `  vcfy ksnp -k 100 -r ref.fa variants.vcf
  vcfy ksnp -k 100 --region chr20 --frequency variants.vcf
  cat variants.vcf | vcfy ksnp -k 100 -r ref.fa -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vcfPath := "-"
			if len(args) > 0 {
				vcfPath = args[0]
			}
			return runKsnp(vcfPath, outputFile, refPath, regionID)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&outputFile, "output", "o", "", "Output CSV file (default: stdout)")
	flags.StringVarP(&refPath, "reference", "r", "", "Reference genome FASTA file (default: from VCF header)")
	flags.StringVar(&regionID, "region", "", "Compute the reference length from this region only")
	flags.IntP("k", "k", 0, "The length of the k-mer")
	flags.BoolP("frequency", "f", false, "Emit a count frequency histogram instead of raw counts")

	viper.BindPFlag("k", flags.Lookup("k"))
	viper.BindPFlag("frequency", flags.Lookup("frequency"))

	return cmd
}

func runKsnp(vcfPath, outputFile, refPath, regionID string) error {
	regionID = resolveRegion(regionID)
	k := viper.GetInt("k")
	if k < 1 {
		return fmt.Errorf("k must be positive: pass -k or set the k config key")
	}

	parser, err := vcf.NewParser(vcfPath)
	if err != nil {
		return err
	}
	defer parser.Close()

	positions, err := parser.Positions()
	if err != nil {
		return err
	}

	if refPath == "" {
		refPath = parser.Reference()
	}
	if refPath == "" {
		return fmt.Errorf("no reference given and none declared in the VCF header")
	}

	var region *fasta.Region
	if regionID == "" {
		region, err = fasta.First(refPath)
	} else {
		region, err = fasta.Find(refPath, regionID)
	}
	if err != nil {
		return err
	}

	indicator, err := ksnp.BuildIndicator(positions, region.Len())
	if err != nil {
		return err
	}
	counter, err := ksnp.NewCounter(indicator, k)
	if err != nil {
		return err
	}

	out, closeOut, err := openOutput(outputFile)
	if err != nil {
		return err
	}
	defer closeOut()

	if viper.GetBool("frequency") {
		writer := output.NewFreqWriter(out, k)
		if err := writer.WriteHeader(); err != nil {
			return err
		}
		for _, bin := range ksnp.Histogram(counter) {
			if err := writer.Write(bin); err != nil {
				return err
			}
		}
		return writer.Flush()
	}

	writer := output.NewCountWriter(out, k)
	if err := writer.WriteHeader(); err != nil {
		return err
	}
	for {
		count, ok := counter.Next()
		if !ok {
			break
		}
		if err := writer.Write(count); err != nil {
			return err
		}
	}
	return writer.Flush()
}
