package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (unreadable config, bad name list)
	ExitDataError   = 3 // Data error (unknown format or charset, unreadable input)
	ExitCannotOpen  = 4 // An input or output file could not be opened
)
