package event

import "fmt"

// Tag identifies the kind of an event.
type Tag uint8

// Event kinds. The comment after each names the payload its constructor
// takes; the others carry none.
const (
	TagTick Tag = iota
	TagQuit
	TagAppStart // app handle
	TagGenerateRequest
	TagReset
	TagWorldBuilt  // world handle
	TagDangerFound // Position
	TagStep
	TagToggleAuto
	TagToggleView
	TagHelp
	TagWumpusDied    // Position
	TagPlayerForward // Position
	TagReady
	TagBusy
	TagPlayerTurn // Direction, Heading
	TagPlayerPick // Position
	TagPlayerShoot
	TagPlayerPerceive // percept text
	TagPlayerDie

	tagCount
)

// tagInfo describes a tag. lowSignal tags fire often and carry little
// information, so the dispatcher does not log them by default.
type tagInfo struct {
	slug        string
	description string
	lowSignal   bool
}

var tagTable = [tagCount]tagInfo{
	TagTick:            {"tick", "CPU tick", true},
	TagQuit:            {"quit", "Program quits", false},
	TagAppStart:        {"app-start", "Program starts", false},
	TagGenerateRequest: {"generate-request", "Generate a new world", false},
	TagReset:           {"reset", "Reset the world", false},
	TagWorldBuilt:      {"world-built", "A new dangerous world built, take care ...", false},
	TagDangerFound:     {"danger-found", "Found new danger", false},
	TagStep:            {"step", "Next step", true},
	TagToggleAuto:      {"toggle-auto", "Toggle auto/manual step mode", true},
	TagToggleView:      {"toggle-view", "Toggle view mode", true},
	TagHelp:            {"help", "Display help info", true},
	TagWumpusDied:      {"wumpus-died", "Wumpus dies", false},
	TagPlayerForward:   {"player-forward", "Player moves forward", false},
	TagReady:           {"ready", "Ready", true},
	TagBusy:            {"busy", "Busy", true},
	TagPlayerTurn:      {"player-turn", "Player turns", false},
	TagPlayerPick:      {"player-pick", "Player picks the GOLD !! ^_^", false},
	TagPlayerShoot:     {"player-shoot", "Player shoots", false},
	TagPlayerPerceive:  {"player-perceive", "Player perceives", false},
	TagPlayerDie:       {"player-die", "Player dies @_@", false},
}

// Valid reports whether t is one of the declared tags.
func (t Tag) Valid() bool {
	return t < tagCount
}

// String returns the tag's slug, e.g. "player-turn".
func (t Tag) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tag(%d)", uint8(t))
	}
	return tagTable[t].slug
}

// Description returns the fixed human-readable description of the tag.
func (t Tag) Description() string {
	if !t.Valid() {
		return "Unknown event"
	}
	return tagTable[t].description
}

// LowSignal reports whether events of this kind are high-frequency noise
// that should stay out of the diagnostic log.
func (t Tag) LowSignal() bool {
	return t.Valid() && tagTable[t].lowSignal
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid event tag %d", uint8(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tag) UnmarshalText(text []byte) error {
	parsed, err := ParseTag(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTag returns the tag with the given slug.
func ParseTag(s string) (Tag, error) {
	for i := range tagTable {
		if tagTable[i].slug == s {
			return Tag(i), nil
		}
	}
	return 0, fmt.Errorf("unknown event tag: %q", s)
}

// Tags returns every tag in declaration order.
func Tags() []Tag {
	tags := make([]Tag, 0, tagCount)
	for t := Tag(0); t < tagCount; t++ {
		tags = append(tags, t)
	}
	return tags
}
