package galeshapley

import "cloudeng.io/algo/container/list"

// bachelors is the FIFO of proposers still allowed to propose.
// A proposer is present at most once: it leaves when popped and only comes
// back after being displaced from an engagement.
type bachelors struct {
	l *list.Double[int]
}

// newBachelors enqueues M-1, M-2, …, 0 in that order.
func newBachelors(m int) *bachelors {
	b := &bachelors{l: list.NewDouble[int]()}
	for p := m - 1; p >= 0; p-- {
		b.push(p)
	}

	return b
}

func (b *bachelors) len() int { return b.l.Len() }

func (b *bachelors) push(p int) { b.l.Append(p) }

// pop removes and returns the front proposer. Callers check len() first.
func (b *bachelors) pop() int {
	p := b.l.Head()
	b.l.Remove(p, func(x, y int) bool { return x == y })

	return p
}
