package shader

import (
	"fmt"
	"strings"
)

// Kind classifies a recovered build failure.
type Kind int

const (
	FileRead Kind = iota // source file missing or unreadable
	Compile              // a stage failed to compile
	Link                 // the program failed to link
)

func (k Kind) String() string {
	switch k {
	case FileRead:
		return "read"
	case Compile:
		return "compile"
	case Link:
		return "link"
	default:
		return "unknown"
	}
}

// Diagnostic records one failure that was logged and recovered from while
// building a program.
type Diagnostic struct {
	Kind   Kind
	Stage  Stage  // NoStage for Link
	Path   string // only set for FileRead
	Detail string // driver info log, for Compile and Link
	Err    error  // underlying cause, for FileRead
}

func (d Diagnostic) String() string {
	switch d.Kind {
	case FileRead:
		return fmt.Sprintf("%s: %s %q: %v", d.Kind, d.Stage, d.Path, d.Err)
	case Compile:
		return fmt.Sprintf("%s: %s: %s", d.Kind, d.Stage, strings.TrimSpace(d.Detail))
	default:
		return fmt.Sprintf("%s: %s", d.Kind, strings.TrimSpace(d.Detail))
	}
}

// BuildError wraps the diagnostics of a program that did not build cleanly.
type BuildError struct {
	Diagnostics []Diagnostic
}

func (e *BuildError) Error() string {
	msgs := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		msgs[i] = d.String()
	}
	return "shader program: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the file-read causes, so errors.Is(err, fs.ErrNotExist)
// works on a program built from a missing file.
func (e *BuildError) Unwrap() []error {
	var errs []error
	for _, d := range e.Diagnostics {
		if d.Err != nil {
			errs = append(errs, d.Err)
		}
	}
	return errs
}
