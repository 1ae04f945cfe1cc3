package main

import "fmt"

// startupError indicates the tracker could not get far enough to accept
// commands.
type startupError struct {
	Step string
	Err  error
}

func (e startupError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e startupError) Unwrap() error {
	return e.Err
}
