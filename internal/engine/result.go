package engine

import (
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/store"
	"github.com/se04-aizu-2025/se04project-white-mocha/internal/trace"
)

// Result is the outcome of one run.
type Result struct {
	ID            string
	Seq           int64
	AlgorithmKey  string
	AlgorithmName string
	Initial       []int
	Sorted        []int
	Steps         []trace.Event
	Stats         trace.Stats
	InputDigest   string
	TraceDigest   string
}

// Response is the wire form of a run. Field order is part of the contract.
type Response struct {
	AlgorithmKey  string        `json:"algorithmKey"`
	AlgorithmName string        `json:"algorithmName"`
	Initial       []int         `json:"initial"`
	Sorted        []int         `json:"sorted"`
	Steps         []trace.Event `json:"steps"`
}

// Response returns the wire form of r.
func (r *Result) Response() Response {
	return Response{
		AlgorithmKey:  r.AlgorithmKey,
		AlgorithmName: r.AlgorithmName,
		Initial:       nonNil(r.Initial),
		Sorted:        nonNil(r.Sorted),
		Steps:         r.Steps,
	}
}

// Record converts r to its run log form.
func (r *Result) Record() store.Run {
	return store.Run{
		ID:            r.ID,
		Seq:           r.Seq,
		Algorithm:     r.AlgorithmKey,
		AlgorithmName: r.AlgorithmName,
		Initial:       r.Initial,
		Sorted:        r.Sorted,
		Stats:         r.Stats,
		InputDigest:   r.InputDigest,
		TraceDigest:   r.TraceDigest,
		Steps:         r.Steps,
	}
}

// ResultFromRecord rebuilds a Result from a loaded run.
func ResultFromRecord(run store.Run) *Result {
	return &Result{
		ID:            run.ID,
		Seq:           run.Seq,
		AlgorithmKey:  run.Algorithm,
		AlgorithmName: run.AlgorithmName,
		Initial:       run.Initial,
		Sorted:        run.Sorted,
		Steps:         run.Steps,
		Stats:         run.Stats,
		InputDigest:   run.InputDigest,
		TraceDigest:   run.TraceDigest,
	}
}

func nonNil(a []int) []int {
	if a == nil {
		return []int{}
	}
	return a
}
