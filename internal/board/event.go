package board

import "fmt"

// Button identifies a mouse button.
type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonSecondary
	ButtonTertiary
)

// Event is an input event in window-local pixels, origin top-left.
type Event interface {
	isEvent()
}

type PointerDown struct {
	X, Y   int
	Button Button
}

type PointerUp struct {
	Button Button
}

type PointerMove struct {
	X, Y int
}

// Resize reports the new size of the whole window, toolbar included.
type Resize struct {
	W, H int
}

type Quit struct{}

func (PointerDown) isEvent() {}
func (PointerUp) isEvent()   {}
func (PointerMove) isEvent() {}
func (Resize) isEvent()      {}
func (Quit) isEvent()        {}

// Mode is the state of the controller.
type Mode int

const (
	Idle Mode = iota
	Dragging
	Terminated
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}
