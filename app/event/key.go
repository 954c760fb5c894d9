package event

// Key identifies a keyboard key.
//
type Key int

// Keys known to the demos. Other keys are reported as KeyUnknown.
//
const (
	KeyUnknown Key = iota
	KeyW
	KeyA
	KeyS
	KeyD
	KeyQ
	KeyE
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeySpace
	KeyHome
	KeyEscape
	keyLast
)

var keyNames = [...]string{
	KeyUnknown:    "unknown",
	KeyW:          "w",
	KeyA:          "a",
	KeyS:          "s",
	KeyD:          "d",
	KeyQ:          "q",
	KeyE:          "e",
	KeyArrowUp:    "up",
	KeyArrowDown:  "down",
	KeyArrowLeft:  "left",
	KeyArrowRight: "right",
	KeySpace:      "space",
	KeyHome:       "home",
	KeyEscape:     "escape",
}

// Count is the number of distinct Key values.
//
const Count = int(keyLast)

func (k Key) String() string {
	if k < 0 || k >= keyLast {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}
