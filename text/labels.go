package text

import (
	"sync"

	"github.com/gogpu/layout"
)

// Label is the text shown by a node.
type Label struct {
	Text string
	// Size is the font size in pixels. Zero uses the node's em, or
	// DefaultSize when that is not positive.
	Size float64
}

// Labels binds text to nodes and writes their measured size into the
// nodes' Copied dimension. Call Apply before every pass.
type Labels struct {
	measurer Measurer

	mu     sync.RWMutex
	labels map[layout.NodeID]Label
}

// NewLabels returns an empty set measured with m.
func NewLabels(m Measurer) *Labels {
	return &Labels{measurer: m, labels: make(map[layout.NodeID]Label)}
}

// Set binds a label to id, replacing any previous one.
func (l *Labels) Set(id layout.NodeID, label Label) {
	l.mu.Lock()
	l.labels[id] = label
	l.mu.Unlock()
}

// Get returns the label bound to id.
func (l *Labels) Get(id layout.NodeID) (Label, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	label, ok := l.labels[id]
	return label, ok
}

// Delete unbinds id.
func (l *Labels) Delete(id layout.NodeID) {
	l.mu.Lock()
	delete(l.labels, id)
	l.mu.Unlock()
}

// Len returns the number of bound labels.
func (l *Labels) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.labels)
}

// Apply measures every label whose node is in tree and has a Copied
// dimension, and stores the result in Dimension.Copied. Labels of nodes
// that are gone or sized by their own Size2 are skipped. The em of a node
// is folded down its FontSize chain from root, so the first pass already
// sees the right size. It returns the number of nodes updated.
func (l *Labels) Apply(tree layout.Tree, root layout.RootInfo) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	updated, skipped := 0, 0
	for id, label := range l.labels {
		n := tree.Node(id)
		if n == nil || n.Dimension.Source != layout.Copied {
			skipped++
			continue
		}
		size := label.Size
		if size <= 0 {
			size = emFor(tree, id, root)
		}
		if size <= 0 {
			size = DefaultSize
		}
		n.Dimension.Copied = l.measurer.Measure(label.Text, size)
		updated++
	}
	layout.Logger().Debug("text: labels measured", "updated", updated, "skipped", skipped)
	return updated
}

// emFor resolves the em of id the way a pass does: top-level nodes start
// from root.Em and every FontSize on the way down applies in turn.
func emFor(tree layout.Tree, id layout.NodeID, root layout.RootInfo) float64 {
	var chain []*layout.Node
	for cur, ok := id, true; ok; cur, ok = tree.Parent(cur) {
		n := tree.Node(cur)
		if n == nil {
			break
		}
		chain = append(chain, n)
	}
	em := root.Em
	for i := len(chain) - 1; i >= 0; i-- {
		em = chain[i].Dimension.FontSize.Resolve(em, root.Rem)
	}
	return em
}
