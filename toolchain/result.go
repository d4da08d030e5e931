package toolchain

// Outcome classifies the result of a path operation.
type Outcome int

const (
	// OutcomeNotFound means no candidate resolved to an executable.
	OutcomeNotFound Outcome = iota
	// OutcomeInvalid means the input was unusable, e.g. an empty candidate.
	OutcomeInvalid
	// OutcomeFound means Result.Path holds a usable path.
	OutcomeFound
)

// String returns the outcome label used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeInvalid:
		return "invalid"
	default:
		return "not-found"
	}
}

// Result is the outcome of a path validation or resolution. It replaces
// the historical "path or false" convention with an explicit variant so
// callers never have to test a sentinel value.
type Result struct {
	Outcome Outcome `json:"outcome"`
	Path    string  `json:"path,omitempty"`
}

// Found wraps a successful resolution.
func Found(path string) Result {
	return Result{Outcome: OutcomeFound, Path: path}
}

// NotFound is the shared negative result of all path operations.
var NotFound = Result{Outcome: OutcomeNotFound}

// Invalid marks unusable input.
var Invalid = Result{Outcome: OutcomeInvalid}

// Ok reports whether the operation produced a usable path.
func (r Result) Ok() bool {
	return r.Outcome == OutcomeFound
}
