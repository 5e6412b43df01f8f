// Package types holds the small enums shared across the simulation packages.
package types

// Action is the one discrete command an elevator executes per timestep.
// A code outside [AC_Idle, AC_Unload] is a contract violation; an in-range
// action whose precondition fails is a silent no-op.
type Action int

const (
	AC_Idle Action = iota
	AC_MoveUp
	AC_MoveDown
	AC_LoadUp
	AC_LoadDown
	AC_Unload
)

// NumActions is the size of the per-elevator action space.
const NumActions = 6

// Valid reports whether a is inside the action space.
func (a Action) Valid() bool {
	return a >= AC_Idle && a <= AC_Unload
}

func (a Action) String() string {
	switch a {
	case AC_Idle:
		return "Idle"
	case AC_MoveUp:
		return "MoveUp"
	case AC_MoveDown:
		return "MoveDown"
	case AC_LoadUp:
		return "LoadUp"
	case AC_LoadDown:
		return "LoadDown"
	case AC_Unload:
		return "Unload"
	}
	return "Undefined"
}

// Direction of a queue or of a passenger's remaining travel. Matches the sign
// of destination minus current floor.
type Direction int

const (
	DirDown Direction = -1
	DirUp   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	}
	return "Undefined"
}
