package zoom

// Mod is a set of held modifier keys, independent of the windowing toolkit.
type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// Chord names a key together with its modifiers, e.g. "C-0" or "C-S-=".
// Super is written "s-". An unmodified key is just its name.
func Chord(key string, mods Mod) string {
	if mods&ModSuper != 0 {
		key = "s-" + key
	}
	if mods&ModShift != 0 {
		key = "S-" + key
	}
	if mods&ModAlt != 0 {
		key = "M-" + key
	}
	if mods&ModControl != 0 {
		key = "C-" + key
	}
	return key
}

type KeyHandler func() Signal

type KeyMap map[string]KeyHandler

func CreateKeyMap() KeyMap {
	return KeyMap{}
}

// HandleKey runs the handler bound to chord. The bool is false when
// nothing is bound.
func (km KeyMap) HandleKey(chord string) (Signal, bool) {
	if handler, ok := km[chord]; ok {
		return handler(), true
	}
	return SignalNone, false
}

func (km KeyMap) Bind(chord string, handler KeyHandler) {
	km[chord] = handler
}

// Chords match exactly: C-0 with any other modifier held does not reset.
const (
	ResetChord = "C-0"
	QuitChord  = "Escape"
)

// ViewerKeyMap binds the reset and quit chords to t.
func ViewerKeyMap(t *Tracker) KeyMap {
	km := CreateKeyMap()
	km.Bind(ResetChord, t.Reset)
	km.Bind(QuitChord, t.Quit)
	return km
}
