// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_MatchesEncodingJSON(t *testing.T) {
	inputs := []string{
		`{"vp": 6000, "vs": 3500, "array": [1,2,3]}`,
		`{"source": {"strike": 30.5, "dip": 60, "rake": -90, "moment": 1.2e17}, "name": "ESS563"}`,
		`[true, false, null, "x", 0.5, {}, []]`,
		`"just a string"`,
		`42`,
		`null`,
		`  {"nested": {"a": [{"b": [null]}]}}  ` + "\n",
		`{"unicode": "Ω ≈ 2πf", "escaped": "line\nbreak é"}`,
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			var want any
			require.NoError(t, json.Unmarshal([]byte(in), &want))

			got, err := Parse([]byte(in))

			require.NoError(t, err)
			assert.Equal(t, want, got.Interface())
		})
	}
}

func TestParse_Kinds(t *testing.T) {
	v, err := Parse([]byte(`{"n": null, "b": true, "x": 6000, "s": "km", "seq": [1], "map": {}}`))
	require.NoError(t, err)

	want := map[string]Kind{
		"n":   Null,
		"b":   Bool,
		"x":   Number,
		"s":   String,
		"seq": Sequence,
		"map": Mapping,
	}
	for key, kind := range want {
		got, ok := v.Get(key)
		require.True(t, ok, key)
		assert.Equal(t, kind, got.Kind(), key)
	}
}

func TestParse_KeepsKeyOrder(t *testing.T) {
	v, err := Parse([]byte(`{"vs": 3500, "vp": 6000, "rho": 2700}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"vs", "vp", "rho"}, v.Keys())
}

func TestParse_DuplicateKeyLastValueWins(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1, "b": 2, "a": 3}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, v.Keys())
	a, ok := v.Get("a")
	require.True(t, ok)
	n, err := a.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestParse_KeepsNumberLiteral(t *testing.T) {
	v, err := Parse([]byte(`{"big": 12345678901234567890, "f": 1.50}`))
	require.NoError(t, err)

	big, _ := v.Get("big")
	lit, ok := big.Number()
	require.True(t, ok)
	assert.Equal(t, "12345678901234567890", lit.String())

	f, _ := v.Get("f")
	lit, _ = f.Number()
	assert.Equal(t, "1.50", lit.String())
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantLine   int
		wantColumn int
		wantOffset int64
		wantMsg    string
	}{
		{
			name:       "unquoted key",
			input:      `{not valid json`,
			wantLine:   1,
			wantColumn: 2,
			wantOffset: 1,
			wantMsg:    "invalid character 'n'",
		},
		{
			name:       "empty input",
			input:      ``,
			wantLine:   1,
			wantColumn: 1,
			wantOffset: 0,
			wantMsg:    "unexpected end of JSON input",
		},
		{
			name:       "truncated object",
			input:      "{\n  \"vp\": 6000,\n",
			wantLine:   3,
			wantColumn: 1,
			wantOffset: 16,
			wantMsg:    "unexpected end of JSON input",
		},
		{
			name:       "error on second line",
			input:      "{\n  \"vp\": 60x0\n}",
			wantLine:   2,
			wantColumn: 11,
			wantOffset: 12,
			wantMsg:    "invalid character 'x'",
		},
		{
			name:       "extra data",
			input:      `{} {}`,
			wantLine:   1,
			wantColumn: 4,
			wantOffset: 3,
			wantMsg:    "after top-level value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))

			var se *SyntaxError
			require.ErrorAs(t, err, &se)
			assert.Contains(t, se.Msg, tt.wantMsg)
			assert.Equal(t, tt.wantLine, se.Line)
			assert.Equal(t, tt.wantColumn, se.Column)
			assert.Equal(t, tt.wantOffset, se.Offset)
			assert.Contains(t, se.Error(), "line")
		})
	}
}

func TestValue_UnmarshalJSON(t *testing.T) {
	var holder struct {
		Config Value `json:"config"`
	}

	err := json.Unmarshal([]byte(`{"config": {"vp": 6000}}`), &holder)

	require.NoError(t, err)
	vp, err := holder.Config.Lookup("vp")
	require.NoError(t, err)
	f, err := vp.Float64()
	require.NoError(t, err)
	assert.Equal(t, 6000.0, f)
}
