package entity

// List is a doubly-linked container bounded by two permanent sentinel nodes
// Content nodes always satisfy e.prev.next == e and e.next.prev == e
// Iteration order starts at the most recently pushed front element
type List struct {
	head, tail *Entity // Left and right sentinels
	len        int
}

// NewList creates an empty container with freshly allocated sentinels
func NewList() *List {
	l := &List{
		head: &Entity{kind: KindSentinel},
		tail: &Entity{kind: KindSentinel},
	}
	l.head.next = l.tail
	l.tail.prev = l.head
	l.head.list = l
	l.tail.list = l
	return l
}

// Len returns the number of content entities
func (l *List) Len() int { return l.len }

// Front returns the first content entity or nil if empty
func (l *List) Front() *Entity {
	l.mustLive()
	if l.head.next == l.tail {
		return nil
	}
	return l.head.next
}

// Back returns the last content entity or nil if empty
func (l *List) Back() *Entity {
	l.mustLive()
	if l.tail.prev == l.head {
		return nil
	}
	return l.tail.prev
}

// IsSentinel reports whether e is one of this container's boundary nodes
func (l *List) IsSentinel(e *Entity) bool {
	return e == l.head || e == l.tail
}

// PushFront links e right after the left sentinel in O(1)
func (l *List) PushFront(e *Entity) *Entity {
	l.mustLive()
	return l.insertAfter(e, l.head)
}

// PushBack links e right before the right sentinel in O(1)
func (l *List) PushBack(e *Entity) *Entity {
	l.mustLive()
	return l.insertAfter(e, l.tail.prev)
}

func (l *List) insertAfter(e, at *Entity) *Entity {
	if e.list != nil {
		panic("entity: inserting an entity that is already linked")
	}
	if e.kind == KindSentinel {
		panic("entity: inserting a sentinel as content")
	}
	e.prev = at
	e.next = at.next
	at.next.prev = e
	at.next = e
	e.list = l
	l.len++
	return e
}

// Remove unlinks e in O(1) and releases its links
// Callers iterating forward must capture e.Next() before calling Remove
func (l *List) Remove(e *Entity) {
	l.mustLive()
	if e.IsSentinel() {
		panic("entity: removing a sentinel")
	}
	if e.list != l {
		panic("entity: removing an entity that is not linked in this list")
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	e.list = nil
	l.len--
}

// Destroy releases every node from the left sentinel through the right sentinel
// It must be called exactly once; the list is unusable afterwards
func (l *List) Destroy() {
	l.mustLive()
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		n.prev = nil
		n.list = nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.len = 0
}

// Destroyed reports whether Destroy has already run
func (l *List) Destroyed() bool { return l.head == nil }

func (l *List) mustLive() {
	if l.head == nil {
		panic("entity: use of destroyed list")
	}
}
