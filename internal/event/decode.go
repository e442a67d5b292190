package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNoPayload is returned when an event carries no payload to decode.
var ErrNoPayload = errors.New(ErrMsgNoPayload)

// DecodePayload returns the payload as T. Payloads published in-process are
// already T; anything else (a map read back from JSON) is re-decoded.
func DecodePayload[T any](input interface{}) (T, error) {
	var out T
	switch v := input.(type) {
	case nil:
		return out, ErrNoPayload
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, ErrNoPayload
		}
		return *v, nil
	}

	data, err := json.Marshal(input)
	if err != nil {
		return out, fmt.Errorf(ErrMsgDecodePayload, out, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf(ErrMsgDecodePayload, out, err)
	}
	return out, nil
}
