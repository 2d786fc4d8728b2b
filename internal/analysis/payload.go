package analysis

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Payload is a decoded analyzer response. It is one of TextPayload,
// ObjectPayload or UnknownPayload.
type Payload interface {
	isPayload()
}

// TextPayload is a response that is the analysis text itself.
type TextPayload string

// ObjectPayload is a response object. Only fields of the expected type are
// kept; everything else is dropped during decoding.
type ObjectPayload struct {
	// ResultText and ResultScore are mutually exclusive: the legacy result
	// field carries either the narrative or the score.
	ResultText  *string
	ResultScore *float64
	Analysis    *string
	Score       *float64
}

// UnknownPayload is anything that is neither a string nor an object.
type UnknownPayload struct{}

func (TextPayload) isPayload()    {}
func (ObjectPayload) isPayload()  {}
func (UnknownPayload) isPayload() {}

type rawFields struct {
	Result   *resultField `mapstructure:"result"`
	Analysis *string      `mapstructure:"analysis"`
	Score    *float64     `mapstructure:"score"`
}

// resultField is the legacy result field, which is either text or a score.
type resultField struct {
	Text  *string
	Score *float64
}

var (
	resultFieldType    = reflect.TypeOf(resultField{})
	resultFieldPtrType = reflect.TypeOf(&resultField{})
)

// Decode parses a response body. Invalid JSON yields UnknownPayload.
func Decode(raw []byte) Payload {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return UnknownPayload{}
	}
	// anything after the first value makes the body invalid JSON
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return UnknownPayload{}
	}

	return DecodeValue(v)
}

// DecodeValue classifies an already decoded JSON value.
func DecodeValue(v any) Payload {
	switch val := v.(type) {
	case string:
		return TextPayload(val)
	case map[string]any:
		return decodeObject(val)
	default:
		return UnknownPayload{}
	}
}

func decodeObject(obj map[string]any) Payload {
	var fields rawFields
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &fields,
		DecodeHook: mapstructure.DecodeHookFuncType(keepMatchingTypes),
		// field names are case-sensitive on the wire
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return ObjectPayload{}
	}
	if err := dec.Decode(obj); err != nil {
		return ObjectPayload{}
	}

	p := ObjectPayload{Analysis: fields.Analysis, Score: fields.Score}
	if fields.Result != nil {
		p.ResultText = fields.Result.Text
		p.ResultScore = fields.Result.Score
	}

	return p
}

// keepMatchingTypes turns values of the wrong JSON type into nil so the
// matching field is left unset instead of failing the whole decode.
func keepMatchingTypes(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to {
	case resultFieldType, resultFieldPtrType:
		switch val := data.(type) {
		case resultField, *resultField:
			return val, nil
		case string:
			return &resultField{Text: &val}, nil
		}
		if f, ok := asNumber(data); ok {
			return &resultField{Score: &f}, nil
		}
		return nil, nil
	}

	if to.Kind() == reflect.Ptr {
		to = to.Elem()
	}

	switch to.Kind() {
	case reflect.String:
		// json.Number has a string kind but is not a string
		if s, ok := data.(string); ok {
			return s, nil
		}
		return nil, nil
	case reflect.Float64:
		if f, ok := asNumber(data); ok {
			return f, nil
		}
		return nil, nil
	}

	return data, nil
}

// asNumber reports whether v is a JSON number. Numeric strings are not numbers.
func asNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			// out of float64 range: keep the sign so clamping still works
			if math.IsInf(f, 0) {
				return f, true
			}
			return 0, false
		}
		return f, true
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int8:
		return float64(val), true
	case int16:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	case uint:
		return float64(val), true
	case uint8:
		return float64(val), true
	case uint16:
		return float64(val), true
	case uint32:
		return float64(val), true
	case uint64:
		return float64(val), true
	default:
		return 0, false
	}
}
