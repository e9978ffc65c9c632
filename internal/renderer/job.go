// Package renderer describes render jobs and hands them to the external
// program that does the actual drawing.
package renderer

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Kind names the rendering a job asks for
type Kind string

const (
	KindClip   Kind = "clip"
	KindDomain Kind = "domain"
)

// Job is everything the renderer needs to produce one image or animation
type Job struct {
	ID        string                 `yaml:"id"`
	Kind      Kind                   `yaml:"kind"`
	Inputs    []string               `yaml:"inputs"`
	Output    string                 `yaml:"output"`
	CreatedAt time.Time              `yaml:"created_at"`
	Params    map[string]interface{} `yaml:"params,omitempty"`
}

// NewJob validates the inputs and output and returns a job with a fresh ID
func NewJob(kind Kind, inputs []string, output string) (Job, error) {
	if kind != KindClip && kind != KindDomain {
		return Job{}, fmt.Errorf("unknown job kind %q", kind)
	}
	if len(inputs) == 0 {
		return Job{}, fmt.Errorf("%s job needs at least one input file", kind)
	}
	if output == "" {
		return Job{}, fmt.Errorf("%s job needs an output file", kind)
	}

	return Job{
		ID:        uuid.New().String(),
		Kind:      kind,
		Inputs:    append([]string(nil), inputs...),
		Output:    output,
		CreatedAt: time.Now().UTC(),
		Params:    map[string]interface{}{},
	}, nil
}

// Set stores a renderer parameter
func (j *Job) Set(key string, value interface{}) {
	if j.Params == nil {
		j.Params = map[string]interface{}{}
	}
	j.Params[key] = value
}

// ParamKeys returns the parameter names in sorted order
func (j Job) ParamKeys() []string {
	keys := make([]string, 0, len(j.Params))
	for k := range j.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Result describes a finished render
type Result struct {
	JobID    string
	Output   string
	Duration time.Duration
	// Log holds the renderer's standard output
	Log string
}
