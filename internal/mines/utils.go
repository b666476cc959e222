package mines

import "github.com/sirupsen/logrus"

var Log = logrus.New()

// celltodo is a FIFO of cell indices threaded through next. An index must not
// be added again before it is popped.
type celltodo struct {
	next       []int
	head, tail int
}

func newCelltodo(size int) *celltodo {
	return &celltodo{
		next: make([]int, size),
		head: -1,
		tail: -1,
	}
}

func (std *celltodo) add(i int) {
	if std.tail >= 0 {
		std.next[std.tail] = i
	} else {
		std.head = i
	}
	std.tail = i
	std.next[i] = -1
}

func (std *celltodo) pop() (int, bool) {
	if std.head < 0 {
		return -1, false
	}
	i := std.head
	std.head = std.next[i]
	if std.head < 0 {
		std.tail = -1
	}
	return i, true
}
