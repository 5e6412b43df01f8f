package config

import "fmt"

// Error marks an invalid configuration. It is raised when a Building or Env is
// constructed or reset, never later, and is fatal for the episode: nothing is
// silently corrected.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return "config: " + e.Msg
}

// Errorf builds an *Error in fmt.Sprintf style.
func Errorf(format string, args ...any) *Error {
	return &Error{Msg: fmt.Sprintf(format, args...)}
}
