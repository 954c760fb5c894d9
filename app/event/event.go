// Package event defines the input events delivered by the app driver.
//
// Events are plain values, independent of the windowing toolkit, so that the
// code consuming them can be tested without a window.
//
package event

// Interface is implemented by all event types.
//
type Interface interface{}

// Quit is sent when the application is asked to terminate.
type Quit struct{}

// WindowClose is sent when the user closes the window.
type WindowClose struct{}

// FrameBufferSize is sent when the framebuffer is resized.
type FrameBufferSize struct {
	Width, Height int
}

// KeyDown is sent when a key is pressed.
type KeyDown struct {
	Key Key
}

// KeyUp is sent when a key is released.
type KeyUp struct {
	Key Key
}

// MouseButton identifies a mouse button.
type MouseButton int

// Mouse buttons.
const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// MouseDown is sent when a mouse button is pressed at X, Y.
type MouseDown struct {
	Button MouseButton
	X, Y   float32
}

// MouseUp is sent when a mouse button is released at X, Y.
type MouseUp struct {
	Button MouseButton
	X, Y   float32
}

// MouseMove is sent when the cursor moves to X, Y, in window coordinates.
type MouseMove struct {
	X, Y float32
}
