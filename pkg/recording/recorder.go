package recording

import (
	"github.com/lockstate/rspec-api-documentation/pkg/types"
)

// Recorder collects examples during a test run and writes them out once
type Recorder struct {
	fsys     types.FS
	path     string
	examples []*Example
}

// NewRecorder returns a Recorder that saves to path on fsys
func NewRecorder(fsys types.FS, path string) *Recorder {
	return &Recorder{fsys: fsys, path: path}
}

// Record appends an example. The recorder keeps the pointer.
func (r *Recorder) Record(ex *Example) {
	r.examples = append(r.examples, ex)
}

// Examples returns the recorded examples in recording order
func (r *Recorder) Examples() []*Example {
	return r.examples
}

// Flush saves everything recorded so far
func (r *Recorder) Flush() error {
	return Save(r.fsys, r.path, r.examples)
}
