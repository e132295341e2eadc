package wheel

import "fmt"

// Pool is the ordered list of labels still on the wheel. Slot order decides
// angular placement; duplicate labels are independent segments.
type Pool struct {
	labels []string
}

func NewPool(labels []string) *Pool {
	p := &Pool{labels: make([]string, len(labels))}
	copy(p.labels, labels)
	return p
}

func (p *Pool) Len() int { return len(p.labels) }

func (p *Pool) Empty() bool { return len(p.labels) == 0 }

// Label returns the label in slot i.
func (p *Pool) Label(i int) string { return p.labels[i] }

// Labels returns a copy of the remaining labels in slot order.
func (p *Pool) Labels() []string {
	out := make([]string, len(p.labels))
	copy(out, p.labels)
	return out
}

// RemoveWinner deletes the segment in slot index and shifts every later slot
// down by one. It is the only mutation a pool supports.
func (p *Pool) RemoveWinner(index int) (string, error) {
	if index < 0 || index >= len(p.labels) {
		return "", fmt.Errorf("remove slot %d of %d: %w", index, len(p.labels), ErrIndexOutOfRange)
	}
	label := p.labels[index]
	p.labels = append(p.labels[:index], p.labels[index+1:]...)
	return label, nil
}

// Color returns the palette entry for slot i. Colors follow the slot, not the
// label, so they shift whenever the pool shrinks.
func (p *Pool) Color(i int) HSL {
	return SlotColor(i)
}
