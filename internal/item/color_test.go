// Copyright (c) 2026 Inkdex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/inkdex/internal/item"
)

/*
TestParseColor verifies hex parsing, case insensitivity, and rejection of
malformed input.
*/
func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    item.Color
		wantErr bool
	}{
		{name: "uppercase", input: "7F7F7F", want: item.Color{R: 0x7F, G: 0x7F, B: 0x7F}},
		{name: "lowercase", input: "ff00aa", want: item.Color{R: 0xFF, G: 0x00, B: 0xAA}},
		{name: "black", input: "000000", want: item.Color{}},
		{name: "leading hash rejected", input: "#7F7F7", wantErr: true},
		{name: "too short", input: "FFF", wantErr: true},
		{name: "non-hex digits", input: "GGHHII", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := item.ParseColor(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

/*
TestColor_Hex verifies the canonical uppercase rendering round-trips.
*/
func TestColor_Hex(t *testing.T) {
	assert.Equal(t, "7F7F7F", item.DefaultColor.Hex())
	assert.Equal(t, "01020A", item.Color{R: 1, G: 2, B: 10}.Hex())

	parsed, err := item.ParseColor(item.Color{R: 0xAB, G: 0xCD, B: 0xEF}.Hex())
	require.NoError(t, err)
	assert.Equal(t, item.Color{R: 0xAB, G: 0xCD, B: 0xEF}, parsed)
}

/*
TestColor_JSON verifies the hex-string wire form.
*/
func TestColor_JSON(t *testing.T) {
	encoded, err := json.Marshal(item.DefaultColor)
	require.NoError(t, err)
	assert.Equal(t, `"7F7F7F"`, string(encoded))

	var decoded item.Color
	require.NoError(t, json.Unmarshal([]byte(`"00ff00"`), &decoded))
	assert.Equal(t, item.Color{G: 0xFF}, decoded)

	assert.Error(t, json.Unmarshal([]byte(`"nothex"`), &decoded))
}
