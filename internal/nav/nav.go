// Package nav names the commands a user can issue while browsing.
package nav

import (
	"fmt"

	"xkcdterm/internal/viewport"
)

type Kind int

const (
	None Kind = iota
	Up
	Down
	Left
	Right
	Next
	Prev
	Random
	Jump
	Quit
)

var kindNames = [...]string{"none", "up", "down", "left", "right", "next", "prev", "random", "jump", "quit"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Request is one navigation command. ID is only meaningful for Jump.
type Request struct {
	Kind Kind
	ID   int
}

func (r Request) String() string {
	if r.Kind == Jump {
		return fmt.Sprintf("jump(%d)", r.ID)
	}
	return r.Kind.String()
}

// Direction maps a scroll request onto the viewport; ok is false for every
// request the viewport does not handle.
func (r Request) Direction() (d viewport.Direction, ok bool) {
	switch r.Kind {
	case Up:
		return viewport.Up, true
	case Down:
		return viewport.Down, true
	case Left:
		return viewport.Left, true
	case Right:
		return viewport.Right, true
	}
	return 0, false
}

// Fetches reports whether the request loads another comic.
func (r Request) Fetches() bool {
	switch r.Kind {
	case Next, Prev, Random, Jump:
		return true
	}
	return false
}
