package memetic

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// member is one population slot.
type member struct {
	c    Coloring
	viol int
	key  uint64
}

// pair references two population slots; it follows slot contents, so a
// replaced member is automatically seen by every pending pair.
type pair struct{ a, b int }

// population holds pairwise-distinct colorings in integer slots. Duplicate
// detection goes through an xxhash index of coloring contents; hash hits are
// confirmed by value comparison.
type population struct {
	members []member
	index   map[uint64][]int
	buf     []byte
}

func newPopulation(size int) *population {
	return &population{
		members: make([]member, 0, size),
		index:   make(map[uint64][]int, size),
	}
}

func (p *population) reset() {
	p.members = p.members[:0]
	clear(p.index)
}

func (p *population) size() int { return len(p.members) }

func (p *population) at(slot int) member { return p.members[slot] }

func (p *population) hash(c Coloring) uint64 {
	p.buf = p.buf[:0]
	for _, col := range c {
		p.buf = binary.AppendUvarint(p.buf, uint64(col))
	}
	return xxhash.Sum64(p.buf)
}

// contains reports whether a member value-equal to c exists.
func (p *population) contains(c Coloring) bool {
	return p.lookup(c, p.hash(c)) >= 0
}

func (p *population) lookup(c Coloring, key uint64) int {
	for _, slot := range p.index[key] {
		if p.members[slot].c.Equal(c) {
			return slot
		}
	}
	return -1
}

// add appends c unless an equal member exists; it reports whether c was added.
// The population takes ownership of c.
func (p *population) add(c Coloring, viol int) bool {
	key := p.hash(c)
	if p.lookup(c, key) >= 0 {
		return false
	}
	p.index[key] = append(p.index[key], len(p.members))
	p.members = append(p.members, member{c: c, viol: viol, key: key})
	return true
}

// replace puts c into slot unless an equal member exists elsewhere; it reports
// whether the slot changed. The population takes ownership of c.
func (p *population) replace(slot int, c Coloring, viol int) bool {
	key := p.hash(c)
	if p.lookup(c, key) >= 0 {
		return false
	}

	old := p.members[slot].key
	slots := p.index[old]
	for i, s := range slots {
		if s == slot {
			slots = append(slots[:i], slots[i+1:]...)
			break
		}
	}
	if len(slots) == 0 {
		delete(p.index, old)
	} else {
		p.index[old] = slots
	}

	p.index[key] = append(p.index[key], slot)
	p.members[slot] = member{c: c, viol: viol, key: key}
	return true
}

// worst returns the slot with the most violations, lowest slot on ties.
func (p *population) worst() int {
	w := 0
	for i := 1; i < len(p.members); i++ {
		if p.members[i].viol > p.members[w].viol {
			w = i
		}
	}
	return w
}

// best returns the slot with the fewest violations, lowest slot on ties.
func (p *population) best() int {
	b := 0
	for i := 1; i < len(p.members); i++ {
		if p.members[i].viol < p.members[b].viol {
			b = i
		}
	}
	return b
}

// minHamming returns the smallest Hamming distance between c and any member,
// or math.MaxInt for an empty population.
func (p *population) minHamming(c Coloring) int {
	d := math.MaxInt
	for _, m := range p.members {
		if h := m.c.Hamming(c); h < d {
			d = h
		}
	}
	return d
}

// pairs lists every unordered slot pair a < b.
func (p *population) pairs() []pair {
	n := len(p.members)
	ps := make([]pair, 0, n*(n-1)/2)
	var a, b int
	for a = 0; a < n; a++ {
		for b = a + 1; b < n; b++ {
			ps = append(ps, pair{a, b})
		}
	}
	return ps
}
