package core

import "fmt"

// KeyCode identifies a logical key.
type KeyCode uint16

const (
	// KeyNone represents no key (zero value).
	KeyNone KeyCode = iota

	// KeyCharacter is a character-producing key. Check Key.Char for the rune.
	KeyCharacter

	KeyEnter
	KeyTab
	KeySpace
	KeyBackspace
	KeyDelete
	KeyEscape

	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

var keyCodeNames = map[KeyCode]string{
	KeyNone:       "none",
	KeyCharacter:  "character",
	KeyEnter:      "enter",
	KeyTab:        "tab",
	KeySpace:      "space",
	KeyBackspace:  "backspace",
	KeyDelete:     "delete",
	KeyEscape:     "escape",
	KeyArrowUp:    "arrow_up",
	KeyArrowDown:  "arrow_down",
	KeyArrowLeft:  "arrow_left",
	KeyArrowRight: "arrow_right",
	KeyHome:       "home",
	KeyEnd:        "end",
	KeyPageUp:     "page_up",
	KeyPageDown:   "page_down",
}

// String returns a human-readable representation of the key code.
func (k KeyCode) String() string {
	if name, ok := keyCodeNames[k]; ok {
		return name
	}
	if k >= KeyF1 && k <= KeyF12 {
		return fmt.Sprintf("f%d", int(k-KeyF1)+1)
	}
	return fmt.Sprintf("KeyCode(%d)", int(k))
}

// Key is a logical key. Char is set only for KeyCharacter.
type Key struct {
	Code KeyCode
	Char rune
}

// CharKey returns the key that produces r.
func CharKey(r rune) Key {
	return Key{Code: KeyCharacter, Char: r}
}

// NamedKey returns a non-character key.
func NamedKey(code KeyCode) Key {
	return Key{Code: code}
}

// String returns the character for character keys and the code name otherwise.
func (k Key) String() string {
	if k.Code == KeyCharacter {
		return string(k.Char)
	}
	return k.Code.String()
}

// KeyboardModifiers is the modifier state tracked by the Context and
// consulted when physical keys are mapped to characters.
type KeyboardModifiers struct {
	Shift   bool
	Control bool
	Alt     bool
	Command bool
}

// PhysicalKey identifies a key on the keyboard independent of modifiers, as
// reported by the platform.
type PhysicalKey uint16

const (
	PhysicalUnknown PhysicalKey = iota
	Physical0
	Physical1
	Physical2
	Physical3
	Physical4
	Physical5
	Physical6
	Physical7
	Physical8
	Physical9
	PhysicalA
	PhysicalB
	PhysicalC
	PhysicalD
	PhysicalE
	PhysicalF
	PhysicalG
	PhysicalH
	PhysicalI
	PhysicalJ
	PhysicalK
	PhysicalL
	PhysicalM
	PhysicalN
	PhysicalO
	PhysicalP
	PhysicalQ
	PhysicalR
	PhysicalS
	PhysicalT
	PhysicalU
	PhysicalV
	PhysicalW
	PhysicalX
	PhysicalY
	PhysicalZ
	PhysicalSemicolon
	PhysicalColon
	PhysicalCaret
	PhysicalAsterisk
	PhysicalPeriod
	PhysicalComma
	PhysicalEquals
	PhysicalNumpadEquals
	PhysicalPlus
	PhysicalNumpadAdd
	PhysicalMinus
	PhysicalNumpadSubtract
	PhysicalSlash
	PhysicalNumpadDivide
	PhysicalGrave
	PhysicalReturn
	PhysicalTab
	PhysicalSpace
	PhysicalDown
	PhysicalLeft
	PhysicalRight
	PhysicalUp
	PhysicalEnd
	PhysicalHome
	PhysicalPageDown
	PhysicalPageUp
	PhysicalBack
	PhysicalDelete
	PhysicalEscape
	PhysicalF1
	PhysicalF2
	PhysicalF3
	PhysicalF4
	PhysicalF5
	PhysicalF6
	PhysicalF7
	PhysicalF8
	PhysicalF9
	PhysicalF10
	PhysicalF11
	PhysicalF12
)

// characterKeys maps physical keys to their plain and shifted characters.
var characterKeys = map[PhysicalKey][2]rune{
	Physical1:              {'1', '!'},
	Physical2:              {'2', '@'},
	Physical3:              {'3', '#'},
	Physical4:              {'4', '$'},
	Physical5:              {'5', '%'},
	Physical6:              {'6', '^'},
	Physical7:              {'7', '&'},
	Physical8:              {'8', '*'},
	Physical9:              {'9', '('},
	Physical0:              {'0', ')'},
	PhysicalSemicolon:      {';', ':'},
	PhysicalColon:          {':', ':'},
	PhysicalCaret:          {'^', '^'},
	PhysicalAsterisk:       {'*', '*'},
	PhysicalPeriod:         {'.', '>'},
	PhysicalComma:          {',', '<'},
	PhysicalEquals:         {'=', '='},
	PhysicalNumpadEquals:   {'=', '='},
	PhysicalPlus:           {'+', '+'},
	PhysicalNumpadAdd:      {'+', '+'},
	PhysicalMinus:          {'-', '_'},
	PhysicalNumpadSubtract: {'-', '_'},
	PhysicalSlash:          {'/', '?'},
	PhysicalNumpadDivide:   {'/', '?'},
	PhysicalGrave:          {'`', '~'},
}

var namedKeys = map[PhysicalKey]KeyCode{
	PhysicalReturn:   KeyEnter,
	PhysicalTab:      KeyTab,
	PhysicalSpace:    KeySpace,
	PhysicalDown:     KeyArrowDown,
	PhysicalLeft:     KeyArrowLeft,
	PhysicalRight:    KeyArrowRight,
	PhysicalUp:       KeyArrowUp,
	PhysicalEnd:      KeyEnd,
	PhysicalHome:     KeyHome,
	PhysicalPageDown: KeyPageDown,
	PhysicalPageUp:   KeyPageUp,
	PhysicalBack:     KeyBackspace,
	PhysicalDelete:   KeyDelete,
	PhysicalEscape:   KeyEscape,
}

// MapKey converts a physical key into a logical key using the modifier
// state. Unmapped keys report false.
func MapKey(pk PhysicalKey, mods KeyboardModifiers) (Key, bool) {
	if pk >= PhysicalA && pk <= PhysicalZ {
		r := 'a' + rune(pk-PhysicalA)
		if mods.Shift {
			r = 'A' + rune(pk-PhysicalA)
		}
		return CharKey(r), true
	}
	if pk >= PhysicalF1 && pk <= PhysicalF12 {
		return NamedKey(KeyF1 + KeyCode(pk-PhysicalF1)), true
	}
	if chars, ok := characterKeys[pk]; ok {
		if mods.Shift {
			return CharKey(chars[1]), true
		}
		return CharKey(chars[0]), true
	}
	if code, ok := namedKeys[pk]; ok {
		return NamedKey(code), true
	}
	return Key{}, false
}
