// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obsremote

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-obs-remote/logger"
	"github.com/MKhiriev/go-obs-remote/models"
	"github.com/MKhiriev/go-obs-remote/obsws"
)

// audioKindKeywords marks an input kind as an audio input when any of them
// appears as a substring of the kind name.
var audioKindKeywords = []string{"audio", "mic", "wasapi", "pulse", "alsa", "coreaudio"}

// InputManager drives input listing, mute control, settings and lifecycle.
type InputManager struct {
	client obsws.Caller
	log    *logger.Logger
}

func newInputManager(client obsws.Caller, log *logger.Logger) *InputManager {
	return &InputManager{client: client, log: log.GetChildLogger("inputs")}
}

// List returns all inputs.
func (m *InputManager) List(ctx context.Context) ([]models.Input, error) {
	var resp struct {
		Inputs []models.Input `json:"inputs"`
	}
	if err := m.client.Call(ctx, "GetInputList", nil, &resp); err != nil {
		return nil, fmt.Errorf("get input list: %w", err)
	}
	return resp.Inputs, nil
}

// Names returns the names of all inputs.
func (m *InputManager) Names(ctx context.Context) ([]string, error) {
	inputs, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(inputs))
	for _, in := range inputs {
		names = append(names, in.Name)
	}
	return names, nil
}

// Kinds returns the input kinds available in this OBS build. With
// unversioned set, version suffixes are stripped (ffmpeg_source_v2 →
// ffmpeg_source).
func (m *InputManager) Kinds(ctx context.Context, unversioned bool) ([]string, error) {
	var resp struct {
		InputKinds []string `json:"inputKinds"`
	}
	req := map[string]any{"unversioned": unversioned}
	if err := m.client.Call(ctx, "GetInputKindList", req, &resp); err != nil {
		return nil, fmt.Errorf("get input kind list: %w", err)
	}
	return resp.InputKinds, nil
}

// Special returns the names of the special inputs (desktop audio, mic/aux
// channels). Unassigned slots come back as empty strings, never null.
func (m *InputManager) Special(ctx context.Context) (models.SpecialInputs, error) {
	var resp models.SpecialInputs
	if err := m.client.Call(ctx, "GetSpecialInputs", nil, &resp); err != nil {
		return models.SpecialInputs{}, fmt.Errorf("get special inputs: %w", err)
	}
	return resp, nil
}

// AudioInputs returns the names of inputs whose kind looks like an audio
// source.
func (m *InputManager) AudioInputs(ctx context.Context) ([]string, error) {
	inputs, err := m.List(ctx)
	if err != nil {
		return nil, err
	}

	var audio []string
	for _, in := range inputs {
		if isAudioKind(in.Kind) {
			audio = append(audio, in.Name)
		}
	}
	return audio, nil
}

func isAudioKind(kind string) bool {
	kind = strings.ToLower(kind)
	for _, kw := range audioKindKeywords {
		if strings.Contains(kind, kw) {
			return true
		}
	}
	return false
}

// Exists reports whether an input with the given name exists.
func (m *InputManager) Exists(ctx context.Context, name string) (bool, error) {
	names, err := m.Names(ctx)
	if err != nil {
		return false, err
	}
	return contains(names, name), nil
}

// Muted reports the mute state of the named input.
func (m *InputManager) Muted(ctx context.Context, name string) (bool, error) {
	if err := requireName("input name", name); err != nil {
		return false, err
	}

	names, err := m.Names(ctx)
	if err != nil {
		return false, err
	}
	if !contains(names, name) {
		return false, notFound("input", name, names)
	}

	var resp struct {
		Muted bool `json:"inputMuted"`
	}
	if err := m.client.Call(ctx, "GetInputMute", map[string]any{"inputName": name}, &resp); err != nil {
		return false, fmt.Errorf("get mute state of %q: %w", name, err)
	}
	return resp.Muted, nil
}

// Mute mutes the named input.
func (m *InputManager) Mute(ctx context.Context, name string) error {
	return m.setMute(ctx, name, true)
}

// Unmute unmutes the named input.
func (m *InputManager) Unmute(ctx context.Context, name string) error {
	return m.setMute(ctx, name, false)
}

func (m *InputManager) setMute(ctx context.Context, name string, muted bool) error {
	if err := requireName("input name", name); err != nil {
		return err
	}

	req := map[string]any{"inputName": name, "inputMuted": muted}
	if err := m.client.Call(ctx, "SetInputMute", req, nil); err != nil {
		return fmt.Errorf("set mute of %q to %t: %w", name, muted, err)
	}
	m.log.Debug().Str("input", name).Bool("muted", muted).Msg("set input mute")
	return nil
}

// ToggleMute flips the mute state of the named input and returns the new
// state.
func (m *InputManager) ToggleMute(ctx context.Context, name string) (bool, error) {
	if err := requireName("input name", name); err != nil {
		return false, err
	}

	var resp struct {
		Muted bool `json:"inputMuted"`
	}
	if err := m.client.Call(ctx, "ToggleInputMute", map[string]any{"inputName": name}, &resp); err != nil {
		return false, fmt.Errorf("toggle mute of %q: %w", name, err)
	}
	return resp.Muted, nil
}

// Settings returns the current settings of the named input. Only settings
// that differ from the kind's defaults are present.
func (m *InputManager) Settings(ctx context.Context, name string) (map[string]any, error) {
	if err := requireName("input name", name); err != nil {
		return nil, err
	}

	var resp struct {
		Settings map[string]any `json:"inputSettings"`
	}
	if err := m.client.Call(ctx, "GetInputSettings", map[string]any{"inputName": name}, &resp); err != nil {
		return nil, fmt.Errorf("get settings of %q: %w", name, err)
	}
	return resp.Settings, nil
}

// SetSettings applies settings to the named input. Settings not present in
// the map keep their current values.
func (m *InputManager) SetSettings(ctx context.Context, name string, settings map[string]any) error {
	if err := requireName("input name", name); err != nil {
		return err
	}

	req := map[string]any{"inputName": name, "inputSettings": settings}
	if err := m.client.Call(ctx, "SetInputSettings", req, nil); err != nil {
		return fmt.Errorf("set settings of %q: %w", name, err)
	}
	return nil
}

// DefaultSettings returns the default settings of an input kind.
func (m *InputManager) DefaultSettings(ctx context.Context, kind string) (map[string]any, error) {
	if err := requireName("input kind", kind); err != nil {
		return nil, err
	}

	var resp struct {
		Settings map[string]any `json:"defaultInputSettings"`
	}
	req := map[string]any{"inputKind": strings.TrimSpace(kind)}
	if err := m.client.Call(ctx, "GetInputDefaultSettings", req, &resp); err != nil {
		return nil, fmt.Errorf("get default settings of kind %q: %w", kind, err)
	}
	return resp.Settings, nil
}

// CreateInputParams describes a new input and the scene that receives its
// scene item. Exactly one of SceneName and SceneUUID must be set.
type CreateInputParams struct {
	InputName string
	InputKind string
	SceneName string
	SceneUUID string

	// Settings initializes the input; nil uses the kind's defaults.
	Settings map[string]any

	// SceneItemEnabled controls the visibility of the created scene item.
	// Nil means enabled.
	SceneItemEnabled *bool

	// SkipDuplicateCheck disables the pre-flight name collision check.
	SkipDuplicateCheck bool
}

// Create makes a new input and adds it to a scene, returning the UUID and
// scene item ID assigned by OBS. A colliding name yields
// obsws.ErrResourceAlreadyExists unless SkipDuplicateCheck is set.
func (m *InputManager) Create(ctx context.Context, params CreateInputParams) (models.CreateInputResult, error) {
	var zero models.CreateInputResult

	if err := requireName("input name", params.InputName); err != nil {
		return zero, err
	}
	if err := requireName("input kind", params.InputKind); err != nil {
		return zero, err
	}
	if err := requireOneOf("scene name/uuid", params.SceneName, params.SceneUUID); err != nil {
		return zero, err
	}

	if !params.SkipDuplicateCheck {
		exists, err := m.Exists(ctx, params.InputName)
		if err != nil {
			return zero, err
		}
		if exists {
			return zero, alreadyExists("input", params.InputName)
		}
	}

	if kinds, err := m.Kinds(ctx, false); err == nil && len(kinds) > 0 && !contains(kinds, params.InputKind) {
		m.log.Warn().Str("kind", params.InputKind).Msg("input kind not reported by OBS, creation may fail")
	}

	enabled := true
	if params.SceneItemEnabled != nil {
		enabled = *params.SceneItemEnabled
	}

	req := map[string]any{
		"inputName":        strings.TrimSpace(params.InputName),
		"inputKind":        strings.TrimSpace(params.InputKind),
		"sceneItemEnabled": enabled,
	}
	if params.SceneName != "" {
		req["sceneName"] = strings.TrimSpace(params.SceneName)
	}
	if params.SceneUUID != "" {
		req["sceneUuid"] = strings.TrimSpace(params.SceneUUID)
	}
	if params.Settings != nil {
		req["inputSettings"] = params.Settings
	}

	var resp struct {
		InputUUID   string `json:"inputUuid"`
		SceneItemID int    `json:"sceneItemId"`
	}
	if err := m.client.Call(ctx, "CreateInput", req, &resp); err != nil {
		return zero, fmt.Errorf("create input %q: %w", params.InputName, err)
	}

	m.log.Info().
		Str("input", params.InputName).
		Str("kind", params.InputKind).
		Str("uuid", resp.InputUUID).
		Int("scene_item_id", resp.SceneItemID).
		Msg("created input")

	return models.CreateInputResult{
		InputName:   params.InputName,
		InputKind:   params.InputKind,
		InputUUID:   resp.InputUUID,
		SceneItemID: resp.SceneItemID,
	}, nil
}

// Remove deletes an input identified by exactly one of name and uuid.
func (m *InputManager) Remove(ctx context.Context, name, uuid string) error {
	if err := requireOneOf("input name/uuid", name, uuid); err != nil {
		return err
	}

	req := map[string]any{}
	if name != "" {
		req["inputName"] = name
	} else {
		req["inputUuid"] = uuid
	}
	if err := m.client.Call(ctx, "RemoveInput", req, nil); err != nil {
		return fmt.Errorf("remove input: %w", err)
	}
	m.log.Info().Str("input", name).Str("uuid", uuid).Msg("removed input")
	return nil
}

// Rename changes an input's name. The target input is identified by exactly
// one of name and uuid; the new name must not collide with an existing
// input.
func (m *InputManager) Rename(ctx context.Context, newName, name, uuid string) error {
	if err := requireName("new input name", newName); err != nil {
		return err
	}
	if err := requireOneOf("input name/uuid", name, uuid); err != nil {
		return err
	}

	exists, err := m.Exists(ctx, newName)
	if err != nil {
		return err
	}
	if exists {
		return alreadyExists("input", newName)
	}

	req := map[string]any{"newInputName": strings.TrimSpace(newName)}
	if name != "" {
		req["inputName"] = name
	} else {
		req["inputUuid"] = uuid
	}
	if err := m.client.Call(ctx, "SetInputName", req, nil); err != nil {
		return fmt.Errorf("rename input to %q: %w", newName, err)
	}
	return nil
}

// Info assembles an input state summary, including per-input mute states
// for audio inputs and the distribution of inputs across kinds.
func (m *InputManager) Info(ctx context.Context) (models.InputInfo, error) {
	inputs, err := m.List(ctx)
	if err != nil {
		return models.InputInfo{}, err
	}

	kinds, err := m.Kinds(ctx, false)
	if err != nil {
		return models.InputInfo{}, err
	}

	names := make([]string, 0, len(inputs))
	var audioNames []string
	muteStatus := make(map[string]bool)
	distribution := make(map[string]int)

	for _, in := range inputs {
		names = append(names, in.Name)
		distribution[in.Kind]++
		if !isAudioKind(in.Kind) {
			continue
		}
		audioNames = append(audioNames, in.Name)

		var resp struct {
			Muted bool `json:"inputMuted"`
		}
		if err := m.client.Call(ctx, "GetInputMute", map[string]any{"inputName": in.Name}, &resp); err == nil {
			muteStatus[in.Name] = resp.Muted
		}
	}

	return models.InputInfo{
		TotalInputs:      len(inputs),
		AudioInputs:      len(audioNames),
		AvailableKinds:   kinds,
		InputNames:       names,
		AudioInputNames:  audioNames,
		AudioMuteStatus:  muteStatus,
		KindDistribution: distribution,
	}, nil
}

// kindReport is the document written by ExportKinds.
type kindReport struct {
	Metadata struct {
		Timestamp  string `json:"timestamp"`
		TotalKinds int    `json:"total_kinds"`
		InputCount int    `json:"current_inputs_count"`
	} `json:"metadata"`
	InputKinds struct {
		Versioned   []string            `json:"versioned"`
		Unversioned []string            `json:"unversioned"`
		ByCategory  map[string][]string `json:"by_category"`
	} `json:"input_kinds"`
	CurrentInputs []string       `json:"current_inputs"`
	Statistics    map[string]int `json:"statistics"`
}

// ExportKinds writes a categorised report of the available input kinds and
// the current inputs to a JSON file and returns the written path. An empty
// path defaults to download/input_kinds.json.
func (m *InputManager) ExportKinds(ctx context.Context, path string) (string, error) {
	if path == "" {
		path = filepath.Join("download", "input_kinds.json")
	}

	versioned, err := m.Kinds(ctx, false)
	if err != nil {
		return "", err
	}
	unversioned, err := m.Kinds(ctx, true)
	if err != nil {
		return "", err
	}
	names, err := m.Names(ctx)
	if err != nil {
		return "", err
	}

	byCategory := map[string][]string{}
	for _, kind := range versioned {
		category := "other"
		if c, ok := models.KindCategory(kind); ok {
			category = string(c)
		}
		byCategory[category] = append(byCategory[category], kind)
	}

	var report kindReport
	report.Metadata.Timestamp = time.Now().Format(time.RFC3339)
	report.Metadata.TotalKinds = len(versioned)
	report.Metadata.InputCount = len(names)
	report.InputKinds.Versioned = versioned
	report.InputKinds.Unversioned = unversioned
	report.InputKinds.ByCategory = byCategory
	report.CurrentInputs = names
	report.Statistics = make(map[string]int, len(byCategory))
	for category, kinds := range byCategory {
		report.Statistics[category+"_types_count"] = len(kinds)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal kind report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write kind report: %w", err)
	}

	m.log.Info().Str("path", path).Int("kinds", len(versioned)).Msg("exported input kinds")
	return path, nil
}
