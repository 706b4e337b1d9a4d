package repository

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// PoolCapacity is the number of distinct 4-digit ticket numbers.
const PoolCapacity = 10000

// TicketPool hands out unique ticket numbers.  It tracks the numbers
// already issued (reserved or sold) and, alongside them, the numbers
// still free.  Drawing picks a uniformly random free number and
// swap-removes it, so every draw is O(1) and the pool can be drained
// to the last number without retries.
//
// The pool does not distinguish reserved from sold: a reserved number
// is issued until Release hands it back.
type TicketPool struct {
	rng       *rand.Rand
	remaining []string            // free numbers, unordered
	index     map[string]int      // position of each free number in remaining
	issued    map[string]struct{} // reserved or sold numbers
}

// NewTicketPool returns a full pool.  A non-zero seed makes the draw
// sequence reproducible; zero seeds from the runtime's random source.
func NewTicketPool(seed uint64) *TicketPool {
	var src rand.Source
	if seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	} else {
		src = rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	}
	p := &TicketPool{
		rng:       rand.New(src),
		remaining: make([]string, PoolCapacity),
		index:     make(map[string]int, PoolCapacity),
		issued:    make(map[string]struct{}),
	}
	for i := 0; i < PoolCapacity; i++ {
		n := FormatNumber(i)
		p.remaining[i] = n
		p.index[n] = i
	}
	return p
}

// FormatNumber renders n as a zero-padded 4-digit ticket number.
func FormatNumber(n int) string { return fmt.Sprintf("%04d", n) }

// Reserve draws count unused numbers and marks them issued.  The
// result is in draw order.  When count plus the already issued numbers
// would exceed PoolCapacity it returns ErrCapacityExceeded and the pool
// is left unchanged.  A count of zero or less returns an empty slice.
func (p *TicketPool) Reserve(count int) ([]string, error) {
	if count <= 0 {
		return []string{}, nil
	}
	if count+len(p.issued) > PoolCapacity {
		return nil, fmt.Errorf("%w: requested %d, %d remaining", ErrCapacityExceeded, count, p.AvailableCount())
	}
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		n := p.take(p.rng.IntN(len(p.remaining)))
		p.issued[n] = struct{}{}
		out = append(out, n)
	}
	return out, nil
}

// take removes and returns the free number at position j.
func (p *TicketPool) take(j int) string {
	n := p.remaining[j]
	last := len(p.remaining) - 1
	moved := p.remaining[last]
	p.remaining[j] = moved
	p.index[moved] = j
	p.remaining = p.remaining[:last]
	delete(p.index, n)
	return n
}

// Release returns the given numbers to the free set and reports how
// many were actually released.  Numbers that are not currently issued,
// including malformed ones, are ignored.
func (p *TicketPool) Release(numbers []string) int {
	released := 0
	for _, n := range numbers {
		if _, ok := p.issued[n]; !ok {
			continue
		}
		delete(p.issued, n)
		p.index[n] = len(p.remaining)
		p.remaining = append(p.remaining, n)
		released++
	}
	return released
}

// IsIssued reports whether n is currently reserved or sold.
func (p *TicketPool) IsIssued(n string) bool {
	_, ok := p.issued[n]
	return ok
}

// IssuedCount returns the number of reserved or sold numbers.
func (p *TicketPool) IssuedCount() int { return len(p.issued) }

// AvailableCount returns how many numbers can still be reserved.
func (p *TicketPool) AvailableCount() int { return PoolCapacity - len(p.issued) }

// AllIssued returns a sorted snapshot of the issued numbers.  Numbers
// are fixed width, so lexicographic order is numeric order.
func (p *TicketPool) AllIssued() []string {
	out := make([]string, 0, len(p.issued))
	for n := range p.issued {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
