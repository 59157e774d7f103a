package game

import (
	"errors"
	"fmt"
)

// RejectionKind is the category of a refused command.
type RejectionKind string

const (
	// RejectDeviceDamaged indicates the required ship system is inoperative
	RejectDeviceDamaged RejectionKind = "device_damaged"
	// RejectInvalidParameter indicates an out-of-range course, warp, amount or coordinate
	RejectInvalidParameter RejectionKind = "invalid_parameter"
	// RejectInsufficient indicates not enough energy or torpedoes
	RejectInsufficient RejectionKind = "insufficient"
	// RejectNoTarget indicates there is nothing to shoot at
	RejectNoTarget RejectionKind = "no_target"
	// RejectGameOver indicates the game has ended and needs a reset
	RejectGameOver RejectionKind = "game_over"
)

// Rejection is a refused command. Its message is shown to the player as-is.
// A command that returns a Rejection has not mutated any state.
type Rejection struct {
	Kind    RejectionKind
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

// Is matches sentinels by kind, so errors.Is(err, ErrDeviceDamaged) works for
// any device-damaged rejection.
func (r *Rejection) Is(target error) bool {
	t, ok := target.(*Rejection)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == r.Kind
}

// Sentinels for errors.Is.
var (
	ErrDeviceDamaged    = &Rejection{Kind: RejectDeviceDamaged}
	ErrInvalidParameter = &Rejection{Kind: RejectInvalidParameter}
	ErrInsufficient     = &Rejection{Kind: RejectInsufficient}
	ErrNoTarget         = &Rejection{Kind: RejectNoTarget}
	ErrGameOver         = &Rejection{Kind: RejectGameOver}
)

func rejectf(kind RejectionKind, format string, args ...any) error {
	return &Rejection{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the rejection kind of err, or "" if err is not a Rejection.
func KindOf(err error) RejectionKind {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej.Kind
	}
	return ""
}
