package types

import "errors"

// ErrNoMatch is returned when no language could be determined for a file.
// It is a result, not a failure: callers decide whether to fall back or to
// tally the file as unknown. Never silently defaulted to a guess.
var ErrNoMatch = errors.New("no language match")

// ErrMalformedDefinition is returned when a loaded language definition is
// structurally invalid. Fatal at knowledge-base construction time.
var ErrMalformedDefinition = errors.New("malformed language definition")
