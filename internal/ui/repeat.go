package ui

// RepeatMode decides what happens when the track ends.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatOne
)

// Next toggles between off and looping the track.
func (r RepeatMode) Next() RepeatMode {
	if r == RepeatOne {
		return RepeatOff
	}
	return RepeatOne
}

func (r RepeatMode) String() string {
	if r == RepeatOne {
		return "one"
	}
	return "off"
}

// Icon is shown in the status line; empty when repeat is off.
func (r RepeatMode) Icon() string {
	if r == RepeatOne {
		return "[loop]"
	}
	return ""
}
