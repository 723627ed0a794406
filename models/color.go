// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"
	"strings"
)

// OBS Studio stores source colors as 0xBBGGRR integers while most callers
// think in 0xRRGGBB. The helpers below convert between the two layouts and
// hex strings.

// RGBToBGR converts a 0xRRGGBB color value into the 0xBBGGRR layout OBS
// expects in source settings.
func RGBToBGR(rgb int) int {
	r := (rgb >> 16) & 0xFF
	g := (rgb >> 8) & 0xFF
	b := rgb & 0xFF
	return (b << 16) | (g << 8) | r
}

// BGRToRGB converts a 0xBBGGRR color value read from OBS source settings
// into the conventional 0xRRGGBB layout.
func BGRToRGB(bgr int) int {
	b := (bgr >> 16) & 0xFF
	g := (bgr >> 8) & 0xFF
	r := bgr & 0xFF
	return (r << 16) | (g << 8) | b
}

// RGBFromComponents assembles a 0xRRGGBB value from individual components.
func RGBFromComponents(r, g, b uint8) int {
	return int(r)<<16 | int(g)<<8 | int(b)
}

// BGRFromComponents assembles a 0xBBGGRR value from individual components.
func BGRFromComponents(r, g, b uint8) int {
	return int(b)<<16 | int(g)<<8 | int(r)
}

// RGBComponents splits a 0xRRGGBB value into its components.
func RGBComponents(rgb int) (r, g, b uint8) {
	return uint8(rgb >> 16), uint8(rgb >> 8), uint8(rgb)
}

// ParseHexColor parses a "#RRGGBB" or "RRGGBB" string into a 0xRRGGBB value.
func ParseHexColor(hexColor string) (int, error) {
	hexColor = strings.TrimPrefix(strings.TrimSpace(hexColor), "#")
	if len(hexColor) != 6 {
		return 0, fmt.Errorf("invalid hex color %q: expected 6 hex digits", hexColor)
	}

	value, err := strconv.ParseInt(hexColor, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex color %q: %w", hexColor, err)
	}
	return int(value), nil
}

// HexColor formats a 0xRRGGBB value as "#RRGGBB".
func HexColor(rgb int) string {
	return fmt.Sprintf("#%06X", rgb)
}
