package scenario

import (
	"fmt"

	"github.com/katalvlaran/lvlath-fundamentals/unionfind"
)

// Replay feeds every pair of s into uf in order. A pair that is not yet
// connected is merged with uf.Union; a connected pair is skipped. onEvent,
// if non-nil, is called once per pair after it has been applied.
//
// uf is normally built with Build(s), but any UF with at least s.Size
// elements works. An out-of-range pair aborts the replay and returns the
// unionfind.ErrIndexOutOfRange error annotated with its step; earlier pairs
// stay applied.
func Replay(s *Scenario, uf unionfind.UF, onEvent func(Event)) (Result, error) {
	if s == nil {
		return Result{}, ErrNilScenario
	}

	var res Result
	for step, p := range s.Pairs {
		same, err := uf.Connected(p.P, p.Q)
		if err != nil {
			return res, fmt.Errorf("step %d (%d %d): %w", step, p.P, p.Q, err)
		}
		ev := Event{Step: step, Pair: p, Kind: Skipped}
		if same {
			res.Skipped++
		} else {
			if err := uf.Union(p.P, p.Q); err != nil {
				return res, fmt.Errorf("step %d (%d %d): %w", step, p.P, p.Q, err)
			}
			ev.Kind = Merged
			res.Merged++
		}
		if onEvent != nil {
			onEvent(ev)
		}
	}
	res.Components = uf.Count()

	return res, nil
}

// Build constructs a UF of s.Size elements. The variant comes from opts when
// given, otherwise from s.Variant, otherwise the unionfind default.
func Build(s *Scenario, opts ...unionfind.Option) (unionfind.UF, error) {
	if s == nil {
		return nil, ErrNilScenario
	}
	all := make([]unionfind.Option, 0, len(opts)+1)
	if s.Variant != "" {
		all = append(all, unionfind.WithVariant(s.Variant))
	}
	all = append(all, opts...)

	return unionfind.New(s.Size, all...)
}
