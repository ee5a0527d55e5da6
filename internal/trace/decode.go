package trace

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidEvent is returned when an encoded event does not match any tag
// shape exactly.
var ErrInvalidEvent = errors.New("invalid event")

// UnmarshalEvent decodes one wire-form event.
//
// The decoder is strict: the type must be known, every field of that tag
// must be present, and fields belonging to other tags are rejected.
func UnmarshalEvent(data []byte) (Event, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEvent, err)
	}

	rawType, ok := fields["type"]
	if !ok {
		return nil, fmt.Errorf("%w: missing type", ErrInvalidEvent)
	}
	var kind Kind
	if err := json.Unmarshal(rawType, &kind); err != nil {
		return nil, fmt.Errorf("%w: type: %v", ErrInvalidEvent, err)
	}

	switch kind {
	case KindCompare, KindSwap:
		var i, j int
		if err := decodeFields(fields, kind, map[string]*int{"i": &i, "j": &j}); err != nil {
			return nil, err
		}
		if kind == KindCompare {
			return Compare{I: i, J: j}, nil
		}
		return Swap{I: i, J: j}, nil
	case KindSet:
		var index, value int
		if err := decodeFields(fields, kind, map[string]*int{"index": &index, "value": &value}); err != nil {
			return nil, err
		}
		return Set{Index: index, Value: value}, nil
	case KindDone:
		if err := decodeFields(fields, kind, nil); err != nil {
			return nil, err
		}
		return Done{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, kind)
	}
}

// decodeFields fills want from fields and rejects anything besides "type"
// and the wanted keys.
func decodeFields(fields map[string]json.RawMessage, kind Kind, want map[string]*int) error {
	for key := range fields {
		if key == "type" {
			continue
		}
		if _, ok := want[key]; !ok {
			return fmt.Errorf("%w: field %q not allowed on %s", ErrInvalidEvent, key, kind)
		}
	}
	for key, dst := range want {
		raw, ok := fields[key]
		if !ok {
			return fmt.Errorf("%w: %s requires field %q", ErrInvalidEvent, kind, key)
		}
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrInvalidEvent, key, err)
		}
		v, err := n.Int64()
		if err != nil {
			return fmt.Errorf("%w: field %q: %v", ErrInvalidEvent, key, err)
		}
		*dst = int(v)
	}
	return nil
}

// DecodeEvents decodes a JSON array of wire-form events.
func DecodeEvents(data []byte) ([]Event, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	events := make([]Event, 0, len(raws))
	for i, raw := range raws {
		e, err := UnmarshalEvent(raw)
		if err != nil {
			return nil, fmt.Errorf("decode events: [%d]: %w", i, err)
		}
		events = append(events, e)
	}
	return events, nil
}
