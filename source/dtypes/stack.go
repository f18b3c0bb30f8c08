package dtypes

type Stack[T any] struct {
	vals []T
}

func NewStack[T any]() *Stack[T] { return &Stack[T]{vals: []T{}} }

func (s *Stack[T]) Push(val T) {
	s.vals = append(s.vals, val)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.vals) == 0 {
		var zero T
		return zero, false
	}
	top := s.vals[len(s.vals)-1]
	s.vals = s.vals[:len(s.vals)-1]
	return top, true
}

func (s *Stack[T]) HeadValue() (T, bool) {
	if len(s.vals) == 0 {
		var zero T
		return zero, false
	}
	top := s.vals[len(s.vals)-1]
	return top, true
}

func (s *Stack[T]) Len() int {
	return len(s.vals)
}

// Take returns the topmost n values in the order they were pushed and removes
// them from the stack.
func (s *Stack[T]) Take(n int) ([]T, bool) {
	if len(s.vals) < n {
		return nil, false
	}
	taken := make([]T, n)
	copy(taken, s.vals[len(s.vals)-n:])
	s.vals = s.vals[:len(s.vals)-n]
	return taken, true
}

// TakeFrom removes and returns everything pushed at or above position mark,
// in push order.
func (s *Stack[T]) TakeFrom(mark int) []T {
	if mark < 0 || mark > len(s.vals) {
		return nil
	}
	taken := make([]T, len(s.vals)-mark)
	copy(taken, s.vals[mark:])
	s.vals = s.vals[:mark]
	return taken
}

func (s *Stack[T]) ToSlice() []T {
	result := make([]T, len(s.vals))
	copy(result, s.vals)
	return result
}
