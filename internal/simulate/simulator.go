package simulate

import (
	"fmt"

	"go.uber.org/zap"
)

// Params holds the simulation parameters. The mapstructure tags match the
// configuration option names.
type Params struct {
	MutationRate  float64 `mapstructure:"mrate"`   // per-locus mutation probability
	IndelFraction float64 `mapstructure:"indrate"` // probability a mutation is an indel
	ExtensionRate float64 `mapstructure:"extrate"` // probability an indel grows by one base
	Low           int     `mapstructure:"low"`     // 1-based lower bound, inclusive
	High          int     `mapstructure:"high"`    // 1-based upper bound, exclusive
	Num           int     `mapstructure:"num"`     // locus count for synthesis mode
}

// normalize applies defaults and clamps the coordinate range against the
// sequence length. Clamping is silent; an empty range after clamping and
// out-of-range rates are errors.
func (p Params) normalize(seqLen int) (Params, error) {
	for _, r := range []struct {
		name  string
		value float64
	}{
		{"mrate", p.MutationRate},
		{"indrate", p.IndelFraction},
		{"extrate", p.ExtensionRate},
	} {
		if r.value < 0 || r.value > 1 {
			return p, fmt.Errorf("%s must be in [0, 1], got %g", r.name, r.value)
		}
	}
	if p.Low < 1 {
		p.Low = 1
	}
	if p.High < 1 || p.High > seqLen+1 {
		p.High = seqLen + 1
	}
	if p.Low >= p.High {
		return p, fmt.Errorf("empty range [%d, %d)", p.Low, p.High)
	}
	return p, nil
}

// maxIndelLen caps indel growth as a fraction of the scanned range so a
// single indel cannot dominate a small region.
func maxIndelLen(rangeLen int) int {
	n := rangeLen / 1000
	if n < 1 {
		return 1
	}
	return n
}

// Simulator generates variants over a reference sequence.
type Simulator struct {
	rng    *RNG
	logger *zap.Logger
}

// NewSimulator creates a simulator seeded with the given value.
func NewSimulator(seed int64) *Simulator {
	return &Simulator{
		rng:    NewRNG(seed),
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger for per-locus warnings.
func (s *Simulator) SetLogger(l *zap.Logger) {
	s.logger = l
}

// Scan returns a scanner that walks [Low, High) once, left to right, and
// lazily produces variant records in strictly increasing POS order. The
// scanner consumes the simulator's random stream and is not restartable.
func (s *Simulator) Scan(seq string, p Params) (*Scanner, error) {
	p, err := p.normalize(len(seq))
	if err != nil {
		return nil, err
	}
	return &Scanner{
		rng:      s.rng,
		logger:   s.logger,
		seq:      seq,
		params:   p,
		locus:    p.Low,
		maxIndel: maxIndelLen(p.High - p.Low),
	}, nil
}

// Scanner is the per-locus Bernoulli scan over a coordinate range. At every
// locus not consumed by a previous indel it decides whether a mutation
// occurs, whether it is an indel or a substitution, and how far an indel
// extends.
type Scanner struct {
	rng      *RNG
	logger   *zap.Logger
	seq      string
	params   Params
	locus    int
	skip     int // loci remaining inside an already emitted deletion
	maxIndel int
}

// Next returns the next simulated record, or nil when the scan is done.
// Invalid reference bases at substitution sites are logged and skipped;
// they never abort the scan.
func (sc *Scanner) Next() *Record {
	for sc.locus < sc.params.High {
		locus := sc.locus
		sc.locus++

		if sc.skip > 0 {
			sc.skip--
			continue
		}
		if !sc.rng.Toss(sc.params.MutationRate) {
			continue
		}

		if sc.rng.Toss(sc.params.IndelFraction) {
			length := 1
			for sc.rng.Toss(sc.params.ExtensionRate) && length < sc.maxIndel {
				length++
			}
			insertion := sc.rng.Toss(0.5)
			ref, alt := sc.rng.Indel(locus, sc.seq, insertion, length)
			if !insertion {
				// A deletion of length L consumes L loci: this one
				// plus L-1 skipped.
				sc.skip = length - 1
			}
			return newRecord(locus, ref, alt)
		}

		ref, alt, err := sc.rng.Substitution(locus, sc.seq)
		if err != nil {
			sc.logger.Warn("skipping locus", zap.Int("locus", locus), zap.Error(err))
			continue
		}
		return newRecord(locus, ref, alt)
	}
	return nil
}

func newRecord(pos int, ref, alt string) *Record {
	return &Record{
		Pos:    pos,
		ID:     MissingValue,
		Ref:    ref,
		Alt:    alt,
		Qual:   MissingValue,
		Filter: MissingValue,
	}
}
