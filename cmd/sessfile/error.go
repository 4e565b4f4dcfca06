package main

import "errors"

var (
	// ErrUsage occurs when a command was invoked with missing or malformed
	// arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrUnknownCommand occurs when an unknown command was requested for
	// execution.
	ErrUnknownCommand = errors.New("unknown command")
)
