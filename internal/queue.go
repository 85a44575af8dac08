package internal

// Queue is an unbounded FIFO.
type Queue[T any] struct {
	Data []T
}

// Push appends values to the tail of the queue.
func (q *Queue[T]) Push(values ...T) {
	q.Data = append(q.Data, values...)
}

// Pop removes the head of the queue.
func (q *Queue[T]) Pop() (value T, ok bool) {
	value, ok = q.Peek()
	if ok {
		q.Data = q.Data[1:]
		if len(q.Data) == 0 {
			q.Data = nil
		}
	}
	return
}

// Peek returns the head of the queue without removing it.
func (q *Queue[T]) Peek() (value T, ok bool) {
	if q.Empty() {
		return
	}

	return q.Data[0], true
}

// Drain removes and returns every queued value.
func (q *Queue[T]) Drain() (values []T) {
	values = q.Data
	q.Data = nil
	return
}

func (q *Queue[T]) Len() int {
	return len(q.Data)
}

func (q *Queue[T]) Empty() bool {
	return len(q.Data) == 0
}

// Clone returns an independent copy of the queue.
func (q *Queue[T]) Clone() Queue[T] {
	return Queue[T]{Data: append([]T(nil), q.Data...)}
}
