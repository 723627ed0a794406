// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"strings"
)

// InputCategory groups input kinds by what they produce.
type InputCategory string

const (
	CategoryMedia   InputCategory = "media"
	CategoryAudio   InputCategory = "audio"
	CategoryVideo   InputCategory = "video"
	CategoryText    InputCategory = "text"
	CategoryCapture InputCategory = "capture"
	CategoryEffect  InputCategory = "effect"
)

// inputKindNames maps versioned obs input kind identifiers to the display
// names OBS Studio shows in its "Add Source" menu.
var inputKindNames = map[string]string{
	"image_source":   "Image",
	"slideshow_v2":   "Image Slide Show",
	"ffmpeg_source":  "Media Source",
	"browser_source": "Browser",

	"text_gdiplus_v3":    "Text (GDI+)",
	"text_ft2_source_v2": "Text (FreeType 2)",

	"monitor_capture": "Display Capture",
	"window_capture":  "Window Capture",
	"game_capture":    "Game Capture",
	"dshow_input":     "Video Capture Device",

	"wasapi_input_capture":          "Audio Input Capture",
	"wasapi_output_capture":         "Audio Output Capture",
	"wasapi_process_output_capture": "Application Audio Capture (BETA)",

	"color_source_v3": "Color Source",
}

var inputKindCategories = map[string]InputCategory{
	"image_source":   CategoryMedia,
	"slideshow_v2":   CategoryMedia,
	"ffmpeg_source":  CategoryMedia,
	"browser_source": CategoryMedia,

	"text_gdiplus_v3":    CategoryText,
	"text_ft2_source_v2": CategoryText,

	"monitor_capture": CategoryCapture,
	"window_capture":  CategoryCapture,
	"game_capture":    CategoryCapture,
	"dshow_input":     CategoryVideo,

	"wasapi_input_capture":          CategoryAudio,
	"wasapi_output_capture":         CategoryAudio,
	"wasapi_process_output_capture": CategoryAudio,

	"color_source_v3": CategoryEffect,
}

// KindDisplayName returns the human-readable display name for an input kind
// identifier. Unknown kinds are returned unchanged.
func KindDisplayName(kind string) string {
	if name, ok := inputKindNames[kind]; ok {
		return name
	}
	return kind
}

// KindForDisplayName performs the reverse lookup of [KindDisplayName].
// Unknown display names are returned unchanged.
func KindForDisplayName(displayName string) string {
	for kind, name := range inputKindNames {
		if name == displayName {
			return kind
		}
	}
	return displayName
}

// KindCategory returns the category of an input kind identifier. The second
// return value is false for kinds unknown to the SDK.
func KindCategory(kind string) (InputCategory, bool) {
	cat, ok := inputKindCategories[kind]
	return cat, ok
}

// KindsByCategory returns all known input kind identifiers belonging to the
// given category, sorted alphabetically.
func KindsByCategory(category InputCategory) []string {
	var kinds []string
	for kind, cat := range inputKindCategories {
		if cat == category {
			kinds = append(kinds, kind)
		}
	}
	sort.Strings(kinds)
	return kinds
}

// KnownKinds returns all input kind identifiers the SDK carries display
// metadata for, sorted alphabetically.
func KnownKinds() []string {
	kinds := make([]string, 0, len(inputKindNames))
	for kind := range inputKindNames {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	return kinds
}

// SearchKinds returns the (kind, display name) pairs whose display name or
// identifier contains keyword, case-insensitively. Results are sorted by
// kind identifier.
func SearchKinds(keyword string) map[string]string {
	keyword = strings.ToLower(keyword)
	matches := make(map[string]string)
	for kind, name := range inputKindNames {
		if strings.Contains(strings.ToLower(kind), keyword) ||
			strings.Contains(strings.ToLower(name), keyword) {
			matches[kind] = name
		}
	}
	return matches
}
