// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRGBToBGR(t *testing.T) {
	tests := []struct {
		name string
		rgb  int
		bgr  int
	}{
		{name: "red", rgb: 0xFF0000, bgr: 0x0000FF},
		{name: "green", rgb: 0x00FF00, bgr: 0x00FF00},
		{name: "blue", rgb: 0x0000FF, bgr: 0xFF0000},
		{name: "white", rgb: 0xFFFFFF, bgr: 0xFFFFFF},
		{name: "black", rgb: 0x000000, bgr: 0x000000},
		{name: "mixed", rgb: 0xFF557F, bgr: 0x7F55FF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.bgr, RGBToBGR(tt.rgb))
			assert.Equal(t, tt.rgb, BGRToRGB(tt.bgr))
		})
	}
}

func TestColorConversion_RoundTrip(t *testing.T) {
	for _, rgb := range []int{0x000000, 0x123456, 0xABCDEF, 0xFFFFFF} {
		assert.Equal(t, rgb, BGRToRGB(RGBToBGR(rgb)))
	}
}

func TestColorComponents(t *testing.T) {
	rgb := RGBFromComponents(0x12, 0x34, 0x56)
	assert.Equal(t, 0x123456, rgb)

	r, g, b := RGBComponents(rgb)
	assert.Equal(t, uint8(0x12), r)
	assert.Equal(t, uint8(0x34), g)
	assert.Equal(t, uint8(0x56), b)

	assert.Equal(t, 0x563412, BGRFromComponents(0x12, 0x34, 0x56))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "with hash", input: "#FF5500", want: 0xFF5500},
		{name: "without hash", input: "ff5500", want: 0xFF5500},
		{name: "padded", input: "  #00FF00  ", want: 0x00FF00},
		{name: "too short", input: "#FFF", wantErr: true},
		{name: "not hex", input: "#GGHHII", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#FF5500", HexColor(0xFF5500))
	assert.Equal(t, "#000000", HexColor(0))
	assert.Equal(t, "#0000FF", HexColor(0xFF))
}
