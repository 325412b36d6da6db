package cache

// lruNode is an element of lruList.
type lruNode[K comparable] struct {
	key        K
	prev, next *lruNode[K]
}

// lruList is an intrusive doubly linked list ordered from most to least
// recently used. The zero value is not usable; call newLRUList.
type lruList[K comparable] struct {
	root lruNode[K] // sentinel: root.next is the front, root.prev the back
	len  int
}

func newLRUList[K comparable]() *lruList[K] {
	l := &lruList[K]{}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

// Len returns the number of keys in the list.
func (l *lruList[K]) Len() int { return l.len }

// PushFront inserts key as the most recently used entry.
func (l *lruList[K]) PushFront(key K) *lruNode[K] {
	n := &lruNode[K]{key: key}
	l.insertAfter(n, &l.root)
	l.len++
	return n
}

// MoveToFront marks n as the most recently used entry.
func (l *lruList[K]) MoveToFront(n *lruNode[K]) {
	if l.root.next == n {
		return
	}
	l.unlink(n)
	l.insertAfter(n, &l.root)
}

// Remove takes n out of the list.
func (l *lruList[K]) Remove(n *lruNode[K]) {
	l.unlink(n)
	l.len--
}

// RemoveOldest removes and returns the least recently used key.
func (l *lruList[K]) RemoveOldest() (K, bool) {
	if l.len == 0 {
		var zero K
		return zero, false
	}
	n := l.root.prev
	l.Remove(n)
	return n.key, true
}

// Clear empties the list.
func (l *lruList[K]) Clear() {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
}

func (l *lruList[K]) insertAfter(n, at *lruNode[K]) {
	n.prev = at
	n.next = at.next
	at.next.prev = n
	at.next = n
}

func (l *lruList[K]) unlink(n *lruNode[K]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev, n.next = nil, nil
}
