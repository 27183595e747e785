package game

import "fmt"

// Move removes Take matches from row Row. A Move is a pure value; applying
// it never mutates the state it is applied to.
type Move struct {
	Row  int
	Take int
}

func (m Move) String() string {
	return fmt.Sprintf("take %d from row %d", m.Take, m.Row)
}
