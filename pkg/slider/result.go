package slider

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Result is the record emitted once per trial on submission. Response and
// QuestionOrder hold serialized JSON so the record can be stored as-is by the
// host runner.
type Result struct {
	RT            float64 `json:"rt"`
	Response      string  `json:"response"`
	QuestionOrder string  `json:"question_order"`
}

// Answer is one slider response in display order.
type Answer struct {
	Key   string
	Value int
}

// NewResult packages the elapsed time, slider answers (in display order), the
// comment and the realized question order.
func NewResult(elapsed time.Duration, answers []Answer, comment string, order []int) (Result, error) {
	response, err := EncodeResponse(answers, comment)
	if err != nil {
		return Result{}, err
	}
	if order == nil {
		order = []int{}
	}
	encodedOrder, err := json.Marshal(order)
	if err != nil {
		return Result{}, fmt.Errorf("slider: encode question order: %w", err)
	}
	return Result{
		RT:            Milliseconds(elapsed),
		Response:      response,
		QuestionOrder: string(encodedOrder),
	}, nil
}

// Milliseconds converts a duration into fractional milliseconds. Negative
// durations clamp to zero.
func Milliseconds(d time.Duration) float64 {
	if d < 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}

// EncodeResponse serializes the response mapping as a JSON object whose
// entries follow the answers' order, with the comment last.
func EncodeResponse(answers []Answer, comment string) (string, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for _, answer := range answers {
		if err := writeEntry(&buf, answer.Key, answer.Value); err != nil {
			return "", err
		}
		buf.WriteByte(',')
	}
	if err := writeEntry(&buf, CommentKey, comment); err != nil {
		return "", err
	}
	buf.WriteByte('}')
	return buf.String(), nil
}

func writeEntry(buf *bytes.Buffer, key string, value any) error {
	k, err := marshalRaw(key)
	if err != nil {
		return fmt.Errorf("slider: encode response key %q: %w", key, err)
	}
	v, err := marshalRaw(value)
	if err != nil {
		return fmt.Errorf("slider: encode response %q: %w", key, err)
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// marshalRaw encodes v without HTML escaping so comments keep their text.
func marshalRaw(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Responses decodes the serialized response mapping. Slider values decode
// as float64 and the comment as string, following encoding/json.
func (r Result) Responses() (map[string]any, error) {
	out := map[string]any{}
	if r.Response == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(r.Response), &out); err != nil {
		return nil, fmt.Errorf("slider: decode response: %w", err)
	}
	return out, nil
}

// Order decodes the serialized question order.
func (r Result) Order() ([]int, error) {
	var out []int
	if r.QuestionOrder == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(r.QuestionOrder), &out); err != nil {
		return nil, fmt.Errorf("slider: decode question order: %w", err)
	}
	return out, nil
}
