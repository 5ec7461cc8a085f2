package scenario

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/lvlath-fundamentals/unionfind"
)

// maxLineSize bounds a single input line; many pairs may share one line.
const maxLineSize = 16 << 20

// ParseText reads the text format from r.
// Returns ErrMalformed for non-integer tokens, an odd number of pair ids or a
// line longer than 16 MiB, ErrNegativeSize for a negative N.
func ParseText(r io.Reader) (*Scenario, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var (
		s       *Scenario
		pending []int // ids waiting to be paired
		line    int
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		for _, tok := range strings.Fields(text) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %q is not an integer", ErrMalformed, line, tok)
			}
			if s == nil {
				if v < 0 {
					return nil, fmt.Errorf("%w: got %d", ErrNegativeSize, v)
				}
				s = &Scenario{Size: v}
				continue
			}
			pending = append(pending, v)
			if len(pending) == 2 {
				s.Pairs = append(s.Pairs, Pair{P: pending[0], Q: pending[1]})
				pending = pending[:0]
			}
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, line+1, err)
		}
		return nil, fmt.Errorf("scenario: line %d: %w", line+1, err)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: missing element count", ErrMalformed)
	}
	if len(pending) != 0 {
		return nil, fmt.Errorf("%w: dangling id %d without a partner", ErrMalformed, pending[0])
	}

	return s, nil
}

// tomlScenario mirrors the TOML layout; pairs decode as two-element arrays.
type tomlScenario struct {
	Size    int     `toml:"size"`
	Variant string  `toml:"variant"`
	Pairs   [][]int `toml:"pairs"`
}

// ParseTOML decodes the TOML format.
// A variant, when present, must be one unionfind.ParseVariant accepts.
func ParseTOML(data []byte) (*Scenario, error) {
	var raw tomlScenario
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if raw.Size < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeSize, raw.Size)
	}

	s := &Scenario{Size: raw.Size, Pairs: make([]Pair, 0, len(raw.Pairs))}
	if raw.Variant != "" {
		v, err := parseVariant(raw.Variant)
		if err != nil {
			return nil, err
		}
		s.Variant = v
	}
	for i, p := range raw.Pairs {
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: pairs[%d] has %d ids, want 2", ErrMalformed, i, len(p))
		}
		s.Pairs = append(s.Pairs, Pair{P: p[0], Q: p[1]})
	}

	return s, nil
}

func parseVariant(s string) (unionfind.Variant, error) {
	v, err := unionfind.ParseVariant(s)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return v, nil
}

// Load reads a scenario file, choosing TOML for the ".toml" extension and the text format otherwise.
func Load(path string) (*Scenario, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return ParseTOML(data)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ParseText(f)
}
