package entities

import "go.uber.org/multierr"

// Report summarises one invocation over a single source.
type Report struct {
	Source    string
	Subfolder string
	Bytes     int
	Skipped   bool   // no resize attempted
	Reason    string // why it was skipped
	Variants  []Variant
}

func (r *Report) Succeeded() int {
	n := 0
	for _, v := range r.Variants {
		if v.Success && v.Uploaded {
			n++
		}
	}
	return n
}

func (r *Report) Failed() int {
	return len(r.Variants) - r.Succeeded()
}

// Err combines every per-resolution error. It is meant for logging; a report with errors
// is still a completed invocation.
func (r *Report) Err() error {
	var err error
	for _, v := range r.Variants {
		err = multierr.Append(err, v.Err)
	}
	return err
}
