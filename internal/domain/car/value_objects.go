package car

import (
	"strings"

	"github.com/google/uuid"
)

type Type string

const (
	TypeSedan    Type = "SEDAN"
	TypeSUV      Type = "SUV"
	TypeMinivan  Type = "MINIVAN"
	TypeRoadster Type = "ROADSTER"
)

func (t Type) IsValid() bool {
	switch t {
	case TypeSedan, TypeSUV, TypeMinivan, TypeRoadster:
		return true
	default:
		return false
	}
}

func ParseType(s string) (Type, error) {
	t := Type(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}

// AvailabilityChange describes a write to the availability flag. A nil Expect
// applies the change unconditionally, which makes reserve and release idempotent.
// A non-nil Expect turns the write into a compare-and-swap. A Holder scopes
// the write to one reservation: it applies to a free car or to a car the same
// holder reserved, so repeating it is safe. Holder takes precedence over Expect.
type AvailabilityChange struct {
	To     bool
	Expect *bool
	Holder uuid.UUID
}

func Reserve(guarded bool) AvailabilityChange {
	return change(false, guarded)
}

func Release(guarded bool) AvailabilityChange {
	return change(true, guarded)
}

// ReserveFor reserves the car on behalf of holder.
func ReserveFor(holder uuid.UUID) AvailabilityChange {
	return AvailabilityChange{To: false, Holder: holder}
}

// ReleaseFor frees the car only if holder still has it.
func ReleaseFor(holder uuid.UUID) AvailabilityChange {
	return AvailabilityChange{To: true, Holder: holder}
}

func change(to, guarded bool) AvailabilityChange {
	c := AvailabilityChange{To: to}
	if guarded {
		from := !to
		c.Expect = &from
	}
	return c
}

func (c AvailabilityChange) Guarded() bool { return c.Expect != nil || c.Held() }

func (c AvailabilityChange) Held() bool { return c.Holder != uuid.Nil }

// Allows reports whether the change applies to a car in the given state.
func (c AvailabilityChange) Allows(available bool, reservedBy uuid.UUID) bool {
	switch {
	case c.Held():
		return available || reservedBy == c.Holder
	case c.Expect != nil:
		return available == *c.Expect
	default:
		return true
	}
}
