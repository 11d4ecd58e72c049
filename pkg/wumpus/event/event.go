package event

import (
	"context"
	"strings"
)

// Event is an immutable record of something that happened.
// Events are values: each listener receives its own copy.
type Event struct {
	tag       Tag
	pos       Position
	world     any
	app       any
	direction Direction
	facing    Heading
	percept   string
}

// Tag returns the event kind.
func (e Event) Tag() Tag { return e.tag }

// Pos returns the grid position for danger-found, wumpus-died,
// player-forward and player-pick events.
func (e Event) Pos() Position { return e.pos }

// World returns the world handle carried by world-built events.
func (e Event) World() any { return e.world }

// App returns the application handle carried by app-start events.
func (e Event) App() any { return e.app }

// Direction returns the turn direction of a player-turn event.
func (e Event) Direction() Direction { return e.direction }

// Facing returns the heading carried by a player-turn event.
func (e Event) Facing() Heading { return e.facing }

// Percept returns the percept text of a player-perceive event.
func (e Event) Percept() string { return e.percept }

// LowSignal reports whether the event's kind is high-frequency noise.
func (e Event) LowSignal() bool { return e.tag.LowSignal() }

// String returns the display text used for logging: the tag's description
// followed by the payload fields that identify the occurrence.
func (e Event) String() string {
	var b strings.Builder
	b.WriteString(e.tag.Description())

	switch e.tag {
	case TagPlayerTurn:
		b.WriteByte(' ')
		b.WriteString(e.direction.String())
	case TagPlayerPerceive:
		b.WriteByte(' ')
		b.WriteString(e.percept)
	case TagDangerFound, TagWumpusDied, TagPlayerForward, TagPlayerPick:
		b.WriteString(" at ")
		b.WriteString(e.pos.String())
	}

	return b.String()
}

// Events without payload. Each returns an event of the matching tag.

// Tick is the timer heartbeat.
func Tick() Event { return Event{tag: TagTick} }

// Quit asks the application to shut down.
func Quit() Event { return Event{tag: TagQuit} }

// GenerateRequest asks the model to build a new world.
func GenerateRequest() Event { return Event{tag: TagGenerateRequest} }

// Reset asks the model to restart the current world.
func Reset() Event { return Event{tag: TagReset} }

// Step advances the player by one move.
func Step() Event { return Event{tag: TagStep} }

// ToggleAuto switches between automatic and manual stepping.
func ToggleAuto() Event { return Event{tag: TagToggleAuto} }

// ToggleView switches the view mode.
func ToggleView() Event { return Event{tag: TagToggleView} }

// Help asks the view to show help.
func Help() Event { return Event{tag: TagHelp} }

// Ready reports that the model is idle.
func Ready() Event { return Event{tag: TagReady} }

// Busy reports that the model is working.
func Busy() Event { return Event{tag: TagBusy} }

// PlayerShoot reports that the player fired the arrow.
func PlayerShoot() Event { return Event{tag: TagPlayerShoot} }

// PlayerDie reports that the player was killed.
func PlayerDie() Event { return Event{tag: TagPlayerDie} }

// AppStart announces that the application is running. app is the
// application handle listeners may use to reach shared components.
func AppStart(app any) Event {
	return Event{tag: TagAppStart, app: app}
}

// WorldBuilt carries the freshly generated world.
func WorldBuilt(world any) Event {
	return Event{tag: TagWorldBuilt, world: world}
}

// DangerFound reports a newly discovered danger at pos.
func DangerFound(pos Position) Event {
	return Event{tag: TagDangerFound, pos: pos}
}

// WumpusDied reports that the wumpus at pos was killed.
func WumpusDied(pos Position) Event {
	return Event{tag: TagWumpusDied, pos: pos}
}

// PlayerForward reports the player's new position after moving.
func PlayerForward(pos Position) Event {
	return Event{tag: TagPlayerForward, pos: pos}
}

// PlayerTurn reports a turn and the heading the player now faces.
func PlayerTurn(direction Direction, facing Heading) Event {
	return Event{tag: TagPlayerTurn, direction: direction, facing: facing}
}

// PlayerPick reports that the gold at pos was picked up.
func PlayerPick(pos Position) Event {
	return Event{tag: TagPlayerPick, pos: pos}
}

// PlayerPerceive reports what the player senses, e.g. "stench, breeze".
func PlayerPerceive(percept string) Event {
	return Event{tag: TagPlayerPerceive, percept: percept}
}

// Listener reacts to posted events.
//
// Notify runs synchronously on the poster's goroutine. It may call Post,
// Register and Unregister on the same dispatcher. Returned errors are logged
// by the dispatcher and never reach the producer.
type Listener interface {
	Notify(ctx context.Context, evt Event) error
}
