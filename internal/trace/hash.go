package trace

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed digests. The version suffix allows
// a future change of algorithm.
const (
	DomainInput = "sortscope/input/v1"
	DomainTrace = "sortscope/trace/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data). The null separator
// prevents domain/data boundary ambiguity.
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// InputDigest identifies a run request: the algorithm key and the initial
// array. Two runs with the same digest must produce the same trace.
func InputDigest(algorithmKey string, initial []int) (string, error) {
	if initial == nil {
		initial = []int{}
	}
	data, err := MarshalCanonical(map[string]any{
		"algorithm": algorithmKey,
		"initial":   initial,
	})
	if err != nil {
		return "", fmt.Errorf("InputDigest: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainInput, data), nil
}

// TraceDigest identifies an event sequence.
func TraceDigest(events []Event) (string, error) {
	if events == nil {
		events = []Event{}
	}
	data, err := MarshalCanonical(events)
	if err != nil {
		return "", fmt.Errorf("TraceDigest: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainTrace, data), nil
}

// MustTraceDigest is like TraceDigest but panics on error.
// Use only in tests or when events are known to be valid.
func MustTraceDigest(events []Event) string {
	d, err := TraceDigest(events)
	if err != nil {
		panic(err)
	}
	return d
}
