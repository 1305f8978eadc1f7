package route

import (
	"fmt"

	"github.com/katalvlaran/flightpath/core"
)

// Reconstruct builds the source→dest Path recorded in t.
//
// Steps:
//  1. Normalize codes and check that t was computed from source.
//  2. Fail with ErrNoRoute when dest has no finite distance.
//  3. Walk predecessors from dest until source, guarding against cycles
//     and missing links (ErrCorruptPath).
//  4. Reverse the walk and attach Distance(dest) as the total.
func Reconstruct(t Table, source, dest string) (*Path, error) {
	// 1. Normalize and verify the table belongs to this source.
	src := core.NormalizeCode(source)
	dst := core.NormalizeCode(dest)
	if t.Source() != src {
		return nil, fmt.Errorf("%w: table computed from %q, asked for %q", ErrCorruptPath, t.Source(), src)
	}

	// 2. Unreachable destination is an ordinary outcome.
	total, ok := t.Distance(dst)
	if !ok {
		return nil, fmt.Errorf("%w: %s to %s", ErrNoRoute, src, dst)
	}

	// 3. Walk back from dest.
	walk := []string{dst}
	seen := map[string]bool{dst: true}
	for cur := dst; cur != src; {
		prev, ok := t.Predecessor(cur)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no predecessor", ErrCorruptPath, cur)
		}
		if seen[prev] {
			return nil, fmt.Errorf("%w: cycle at %q", ErrCorruptPath, prev)
		}
		seen[prev] = true
		walk = append(walk, prev)
		cur = prev
	}

	// 4. Reverse into source→dest order.
	for i, j := 0, len(walk)-1; i < j; i, j = i+1, j-1 {
		walk[i], walk[j] = walk[j], walk[i]
	}

	return &Path{Airports: walk, TotalDistance: total}, nil
}
