// Package envelope turns the exchange's {success, message, result} wrapper into a
// schema.Result or an error.
package envelope

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/kingsmao/bittrex-connector/pkg/schema"
)

type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// Normalize decodes body. A one-element result list becomes a single value, any other
// list (including an empty one) stays a list. A bare object result is a single value
// and a null result is an empty list. Scalar results are malformed.
func Normalize(body []byte) (schema.Result, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return schema.Result{}, fmt.Errorf("%w: %v", schema.ErrMalformedResponse, err)
	}
	if env.Success == nil {
		return schema.Result{}, fmt.Errorf("%w: missing success field", schema.ErrMalformedResponse)
	}
	if !*env.Success {
		return schema.Result{}, &schema.RemoteAPIError{Message: env.Message}
	}

	raw := bytes.TrimSpace(env.Result)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return schema.NewMany(nil), nil
	}
	switch raw[0] {
	case '{':
		return schema.NewSingle(raw), nil
	case '[':
	default:
		return schema.Result{}, fmt.Errorf("%w: result is neither an object nor a list", schema.ErrMalformedResponse)
	}

	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return schema.Result{}, fmt.Errorf("%w: result: %v", schema.ErrMalformedResponse, err)
	}
	if len(list) == 1 {
		return schema.NewSingle(list[0]), nil
	}
	return schema.NewMany(list), nil
}
