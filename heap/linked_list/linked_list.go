package linked_list

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/goose-lang/std"
)

var (
	ErrDestroyed       = errors.New("linked list: use of destroyed list")
	ErrIndexOutOfRange = errors.New("linked list: index out of range")
)

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked list that owns its nodes. The head is owned by the
// list and every other node by its predecessor.
//
// The zero value is an empty list ready to use.
type List[T any] struct {
	head      *node[T]
	tail      *node[T]
	len       int
	destroyed bool
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// FromValues builds a list holding values in order.
func FromValues[T any](values ...T) *List[T] {
	l := New[T]()
	for _, v := range values {
		l.Append(v)
	}
	return l
}

// Append links a new node holding value as the tail.
//
// Appending to a destroyed list is a programming error and panics with
// ErrDestroyed.
func (l *List[T]) Append(value T) {
	if l.destroyed {
		panic(ErrDestroyed)
	}
	n := &node[T]{value: value}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.len++
}

// All yields the values from head to tail. Each call to the returned
// sequence walks the list again.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *List[T]) Values() []T {
	vs := make([]T, 0, l.len)
	for v := range l.All() {
		vs = append(vs, v)
	}
	return vs
}

func (l *List[T]) Len() int {
	return l.len
}

func (l *List[T]) Destroyed() bool {
	return l.destroyed
}

// Destroy releases every node exactly once, head to tail. Stored values are
// zeroed so the list retains no references after it returns.
func (l *List[T]) Destroy() {
	var zero T
	released := 0
	n := l.head
	for n != nil {
		next := n.next
		n.value = zero
		n.next = nil
		released++
		n = next
	}
	std.Assert(released == l.len)
	l.head = nil
	l.tail = nil
	l.len = 0
	l.destroyed = true
}

// at returns the node at index i, which must be in range.
func (l *List[T]) at(i int) *node[T] {
	n := l.head
	for ; i > 0; i-- {
		n = n.next
	}
	return n
}

func (l *List[T]) check(i int) error {
	if l.destroyed {
		return ErrDestroyed
	}
	if i < 0 || i >= l.len {
		return fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, l.len)
	}
	return nil
}

func (l *List[T]) Get(i int) (T, error) {
	if err := l.check(i); err != nil {
		var zero T
		return zero, err
	}
	return l.at(i).value, nil
}

// Set replaces the value at index i and returns the previous one.
func (l *List[T]) Set(i int, value T) (T, error) {
	if err := l.check(i); err != nil {
		var zero T
		return zero, err
	}
	n := l.at(i)
	old := n.value
	n.value = value
	return old, nil
}

func (l *List[T]) Delete(i int) error {
	if err := l.check(i); err != nil {
		return err
	}
	if i == 0 {
		l.PopFront()
		return nil
	}
	prev := l.at(i - 1)
	victim := prev.next
	prev.next = victim.next
	if victim == l.tail {
		l.tail = prev
	}
	victim.next = nil
	l.len--
	return nil
}

func (l *List[T]) PopFront() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	n.next = nil
	l.len--
	std.Assert((l.head == nil) == (l.len == 0))
	return n.value, true
}

func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for v := range l.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprint(&b, v)
	}
	b.WriteByte(']')
	return b.String()
}

func Contains[T comparable](l *List[T], elem T) bool {
	for v := range l.All() {
		if v == elem {
			return true
		}
	}
	return false
}
