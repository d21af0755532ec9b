package main

// Key represents a unified media key across platforms
type Key int

const (
	KeyUnknown Key = iota

	// Transport
	KeyPlay     // play/pause toggle
	KeyNext     // next track
	KeyPrevious // previous track

	// Volume
	KeyVolumeUp
	KeyVolumeDown
)

func (k Key) String() string {
	switch k {
	case KeyPlay:
		return "play"
	case KeyNext:
		return "next"
	case KeyPrevious:
		return "previous"
	case KeyVolumeUp:
		return "volume_up"
	case KeyVolumeDown:
		return "volume_down"
	default:
		return "unknown"
	}
}

// KeyEventType represents the phase of a synthetic key event
type KeyEventType int

const (
	KeyDown KeyEventType = iota
	KeyUp
)

func (t KeyEventType) String() string {
	if t == KeyDown {
		return "down"
	}
	return "up"
}

// keyCommands maps lowercase command names to the key they send.
var keyCommands = map[string]Key{
	"playpause": KeyPlay,
	"play":      KeyPlay,
	"pause":     KeyPlay,
	"next":      KeyNext,
	"prev":      KeyPrevious,
	"previous":  KeyPrevious,
	"volup":     KeyVolumeUp,
	"voldown":   KeyVolumeDown,
}

// lookupKey returns the key for a lowercase command name.
func lookupKey(command string) (Key, bool) {
	k, ok := keyCommands[command]
	return k, ok
}
