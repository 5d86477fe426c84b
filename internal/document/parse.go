// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Parse decodes data as exactly one JSON document. Leading and trailing
// whitespace is allowed; anything else after the document is an error.
//
// Malformed input is reported as a *SyntaxError.
func Parse(data []byte) (Value, error) {
	// Validate the whole input first: the scanner behind json.Unmarshal
	// reports offsets relative to the start of data, the token stream does not.
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		var se *json.SyntaxError
		if errors.As(err, &se) {
			return Value{}, newSyntaxError(data, se)
		}
		return Value{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	v, err := parseValue(dec)
	if err != nil {
		return Value{}, fmt.Errorf("error building document: %w", err)
	}

	return v, nil
}

func parseValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case nil:
		return NullValue(), nil
	case bool:
		return BoolValue(t), nil
	case json.Number:
		return NumberValue(t), nil
	case string:
		return StringValue(t), nil
	case json.Delim:
		switch t {
		case '[':
			return parseSequence(dec)
		case '{':
			return parseMapping(dec)
		}
	}

	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func parseSequence(dec *json.Decoder) (Value, error) {
	v := Value{kind: Sequence, items: []Value{}}
	for dec.More() {
		item, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		v.items = append(v.items, item)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return v, nil
}

func parseMapping(dec *json.Decoder) (Value, error) {
	v := Value{kind: Mapping, members: []Member{}, index: map[string]int{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("unexpected object key %v", tok)
		}

		val, err := parseValue(dec)
		if err != nil {
			return Value{}, err
		}
		v.set(key, val)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return v, nil
}

func newSyntaxError(data []byte, se *json.SyntaxError) *SyntaxError {
	pos := int(se.Offset)
	// the scanner counts the offending byte itself
	if strings.HasPrefix(se.Error(), "invalid character") && pos > 0 {
		pos--
	}
	if pos > len(data) {
		pos = len(data)
	}

	before := data[:pos]
	line := bytes.Count(before, []byte{'\n'}) + 1
	lineStart := bytes.LastIndexByte(before, '\n') + 1

	return &SyntaxError{
		Msg:    se.Error(),
		Offset: int64(utf8.RuneCount(before)),
		Line:   line,
		Column: utf8.RuneCount(before[lineStart:]) + 1,
	}
}
