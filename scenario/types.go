// Package scenario decodes union-find workloads and replays them against a unionfind.UF.
//
// Two input formats are accepted:
//
//   - Text: the classic stream used by textbook union-find clients. The first
//     integer is the element count N; every following pair of integers is a
//     "p q" connection. Whitespace (spaces, tabs, newlines) separates tokens,
//     and lines starting with '#' are ignored.
//
//     10
//     4 3
//     3 8
//
//   - TOML:
//
//     size    = 10
//     variant = "quick-find"   # optional
//     pairs   = [[4, 3], [3, 8]]
package scenario

import (
	"errors"

	"github.com/katalvlaran/lvlath-fundamentals/unionfind"
)

var (
	// ErrMalformed indicates input that does not follow the text or TOML layout.
	ErrMalformed = errors.New("scenario: malformed input")

	// ErrNegativeSize indicates a negative element count.
	ErrNegativeSize = errors.New("scenario: size must be non-negative")

	// ErrNilScenario is returned by Replay for a nil *Scenario.
	ErrNilScenario = errors.New("scenario: scenario is nil")
)

// Pair is one "p q" connection request.
type Pair struct {
	P, Q int
}

// Scenario is a decoded workload: a universe size, an optional preferred
// variant and the ordered connection requests.
type Scenario struct {
	Size    int
	Variant unionfind.Variant
	Pairs   []Pair
}

// EventKind tells whether a pair caused a merge.
type EventKind int

const (
	// Merged means the pair was in different sets and Union was called.
	Merged EventKind = iota
	// Skipped means the pair was already connected.
	Skipped
)

// String returns "merged" or "skipped".
func (k EventKind) String() string {
	if k == Merged {
		return "merged"
	}

	return "skipped"
}

// Event is reported by Replay once per pair.
type Event struct {
	Step int // zero-based position in Scenario.Pairs
	Pair Pair
	Kind EventKind
}

// Result summarises a replay.
type Result struct {
	Merged     int
	Skipped    int
	Components int
}
