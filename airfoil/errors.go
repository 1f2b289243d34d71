package airfoil

import "fmt"

// Kind classifies the problems a conversion can run into.
type Kind int

const (
	FileOpen Kind = 1 + iota
	HeaderParse
	MemoryExhaustion
	WriteError
	Inconsistency
	EarlyEOF
)

// Fatal reports whether a problem of this kind stops the conversion.
// The others are warnings.
func (k Kind) Fatal() bool {
	return k != Inconsistency && k != EarlyEOF
}

// Error is a conversion problem, optionally tied to a file.
type Error struct {
	Kind Kind
	Name string // offending file, if any
	Err  error  // underlying cause, if any
}

func (e *Error) Error() string {
	switch e.Kind {
	case FileOpen:
		return fmt.Sprintf("can't open %s. Are all vector files present?", e.Name)
	case HeaderParse:
		return fmt.Sprintf("can't read %s. The first line should be the 'Total Values'.", e.Name)
	case MemoryExhaustion:
		return "can't allocate memory for that many data points!"
	case WriteError:
		return fmt.Sprintf("can't write to %s. Is the file in-use or the disk full?", e.Name)
	case Inconsistency:
		return "you should ensure all vector files list the same number of data points"
	case EarlyEOF:
		return "you should check all vector files for the listed number of data points"
	}
	return fmt.Sprintf("unknown problem with %s", e.Name)
}

func (e *Error) Unwrap() error { return e.Err }
