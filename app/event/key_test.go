package event

import "testing"

func TestKeyString(t *testing.T) {
	data := []struct {
		k    Key
		name string
	}{
		{KeyW, "w"},
		{KeyArrowLeft, "left"},
		{KeyEscape, "escape"},
		{KeyUnknown, "unknown"},
		{Key(-1), "unknown"},
		{Key(Count), "unknown"},
	}
	for _, d := range data {
		if s := d.k.String(); s != d.name {
			t.Errorf("Key(%d): expected %q, got %q", int(d.k), d.name, s)
		}
	}
}
