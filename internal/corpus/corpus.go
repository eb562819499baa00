package corpus

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"
)

// Alphabet is the fixed nucleotide alphabet every corpus is drawn from.
const Alphabet = "ACGT"

var ErrInvalidLength = fmt.Errorf("pattern length exceeds corpus size")

// Corpus is a synthetic sequence used as search input. Content always
// has exactly Size symbols.
type Corpus struct {
	Size    int
	Content []byte
}

// Pattern is a substring taken verbatim from a corpus at Offset.
type Pattern struct {
	Text   string
	Length int
	Offset int
}

type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a corpus generator. A non-zero seed makes the
// generated corpora and pattern offsets reproducible across runs.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rnd: rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1)),
	}
}

// Generate produces a corpus of exactly length symbols drawn uniformly
// from the alphabet.
func (g *Generator) Generate(length int) (*Corpus, error) {
	if length <= 0 {
		return nil, fmt.Errorf("corpus length must be positive, got %d", length)
	}
	content := make([]byte, length)
	for i := range content {
		content[i] = Alphabet[g.rnd.IntN(len(Alphabet))]
	}
	return &Corpus{Size: length, Content: content}, nil
}

// EmbedPattern picks an offset uniformly from [0, corpus.Size-patternLen]
// and returns the substring found there, so the pattern is guaranteed to
// occur in the corpus.
func (g *Generator) EmbedPattern(c *Corpus, patternLen int) (Pattern, error) {
	if patternLen <= 0 {
		return Pattern{}, fmt.Errorf("pattern length must be positive, got %d", patternLen)
	}
	if patternLen > c.Size {
		return Pattern{}, fmt.Errorf("%w: pattern %d, corpus %d", ErrInvalidLength, patternLen, c.Size)
	}
	offset := g.rnd.IntN(c.Size - patternLen + 1)
	return Pattern{
		Text:   string(c.Content[offset : offset+patternLen]),
		Length: patternLen,
		Offset: offset,
	}, nil
}

// WriteFasta writes the corpus as a single-record FASTA file: one header
// line followed by the raw sequence on one line.
func WriteFasta(path string, id string, c *Corpus) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create corpus file: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, ">%s\n", id); err != nil {
		return fmt.Errorf("failed to write corpus header: %w", err)
	}
	if _, err := f.Write(c.Content); err != nil {
		return fmt.Errorf("failed to write corpus sequence: %w", err)
	}
	if _, err := f.Write([]byte{'\n'}); err != nil {
		return fmt.Errorf("failed to write corpus sequence: %w", err)
	}
	return nil
}
