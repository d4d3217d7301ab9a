package expiration

import "time"

// slot is one entry of the arena. index is its position in the heap,
// -1 while the slot is free.
type slot struct {
	key      string
	deadline time.Time
	seq      uint64
	gen      uint32
	index    int
}

// pending implements heap.Interface over slot indices.
type pending struct {
	slots []slot
	order []uint32
}

func (p *pending) Len() int { return len(p.order) }

func (p *pending) Less(i, j int) bool {
	a, b := &p.slots[p.order[i]], &p.slots[p.order[j]]
	if a.deadline.Equal(b.deadline) {
		return a.seq < b.seq
	}
	return a.deadline.Before(b.deadline)
}

func (p *pending) Swap(i, j int) {
	p.order[i], p.order[j] = p.order[j], p.order[i]
	p.slots[p.order[i]].index = i
	p.slots[p.order[j]].index = j
}

func (p *pending) Push(x any) {
	s := x.(uint32)
	p.slots[s].index = len(p.order)
	p.order = append(p.order, s)
}

func (p *pending) Pop() any {
	n := len(p.order) - 1
	s := p.order[n]
	p.order = p.order[:n]
	p.slots[s].index = -1
	return s
}
