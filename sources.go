// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obsremote

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-obs-remote/logger"
	"github.com/MKhiriev/go-obs-remote/models"
	"github.com/MKhiriev/go-obs-remote/obsws"
)

// Input kinds used by the typed source creators.
const (
	KindText    = "text_gdiplus_v2"
	KindImage   = "image_source"
	KindMedia   = "ffmpeg_source"
	KindColor   = "color_source"
	KindBrowser = "browser_source"
	KindWindow  = "window_capture"
	KindDisplay = "monitor_capture"
	KindCamera  = "dshow_input"
)

// SourceManager creates and configures sources. Sources and inputs are the
// same objects in obs-websocket v5; this manager adds typed creators with
// ready-made settings payloads and scene placement on top of the raw input
// operations.
type SourceManager struct {
	client obsws.Caller
	log    *logger.Logger
}

func newSourceManager(client obsws.Caller, log *logger.Logger) *SourceManager {
	return &SourceManager{client: client, log: log.GetChildLogger("sources")}
}

// List returns all sources.
func (m *SourceManager) List(ctx context.Context) ([]models.Input, error) {
	var resp struct {
		Inputs []models.Input `json:"inputs"`
	}
	if err := m.client.Call(ctx, "GetInputList", nil, &resp); err != nil {
		return nil, fmt.Errorf("get source list: %w", err)
	}
	return resp.Inputs, nil
}

// Names returns the names of all sources.
func (m *SourceManager) Names(ctx context.Context) ([]string, error) {
	sources, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.Name)
	}
	return names, nil
}

// Exists reports whether a source with the given name exists.
func (m *SourceManager) Exists(ctx context.Context, name string) (bool, error) {
	names, err := m.Names(ctx)
	if err != nil {
		return false, err
	}
	return contains(names, name), nil
}

// Get returns the named source.
func (m *SourceManager) Get(ctx context.Context, name string) (models.Input, error) {
	if err := requireName("source name", name); err != nil {
		return models.Input{}, err
	}

	sources, err := m.List(ctx)
	if err != nil {
		return models.Input{}, err
	}
	for _, s := range sources {
		if s.Name == name {
			return s, nil
		}
	}

	names := make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.Name)
	}
	return models.Input{}, notFound("source", name, names)
}

// Settings returns the current settings of the named source.
func (m *SourceManager) Settings(ctx context.Context, name string) (map[string]any, error) {
	if err := requireName("source name", name); err != nil {
		return nil, err
	}

	var resp struct {
		Settings map[string]any `json:"inputSettings"`
	}
	if err := m.client.Call(ctx, "GetInputSettings", map[string]any{"inputName": name}, &resp); err != nil {
		return nil, fmt.Errorf("get settings of source %q: %w", name, err)
	}
	return resp.Settings, nil
}

// SetSettings applies settings to the named source.
func (m *SourceManager) SetSettings(ctx context.Context, name string, settings map[string]any) error {
	if err := requireName("source name", name); err != nil {
		return err
	}

	req := map[string]any{"inputName": name, "inputSettings": settings}
	if err := m.client.Call(ctx, "SetInputSettings", req, nil); err != nil {
		return fmt.Errorf("set settings of source %q: %w", name, err)
	}
	return nil
}

// Create makes a new source of the given kind in the named scene. A
// colliding name yields obsws.ErrResourceAlreadyExists.
func (m *SourceManager) Create(ctx context.Context, scene, name, kind string, settings map[string]any) error {
	if err := requireName("scene name", scene); err != nil {
		return err
	}
	if err := requireName("source name", name); err != nil {
		return err
	}
	if err := requireName("source kind", kind); err != nil {
		return err
	}

	exists, err := m.Exists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return alreadyExists("source", name)
	}

	req := map[string]any{
		"sceneName": scene,
		"inputName": name,
		"inputKind": kind,
	}
	if settings != nil {
		req["inputSettings"] = settings
	}
	if err := m.client.Call(ctx, "CreateInput", req, nil); err != nil {
		return fmt.Errorf("create source %q: %w", name, err)
	}
	m.log.Info().Str("source", name).Str("kind", kind).Str("scene", scene).Msg("created source")
	return nil
}

// Remove deletes the named source.
func (m *SourceManager) Remove(ctx context.Context, name string) error {
	if err := requireName("source name", name); err != nil {
		return err
	}

	names, err := m.Names(ctx)
	if err != nil {
		return err
	}
	if !contains(names, name) {
		return notFound("source", name, names)
	}

	if err := m.client.Call(ctx, "RemoveInput", map[string]any{"inputName": name}, nil); err != nil {
		return fmt.Errorf("remove source %q: %w", name, err)
	}
	m.log.Info().Str("source", name).Msg("removed source")
	return nil
}

// textSettings builds the settings payload of a GDI+ text source. The color
// is the 32-bit value OBS expects; callers with 0xRRGGBB values convert via
// models.RGBToBGR.
func textSettings(text string, fontSize int, color int) map[string]any {
	return map[string]any{
		"text": text,
		"font": map[string]any{
			"face":  "Arial",
			"size":  fontSize,
			"style": "",
		},
		"color":       color,
		"opacity":     100,
		"outline":     false,
		"drop_shadow": false,
	}
}

func imageSettings(filePath string) map[string]any {
	return map[string]any{"file": filePath, "unload": false}
}

func mediaSettings(filePath string, loop bool) map[string]any {
	return map[string]any{
		"local_file":          filePath,
		"looping":             loop,
		"restart_on_activate": true,
	}
}

func colorSettings(color, width, height int) map[string]any {
	return map[string]any{"color": color, "width": width, "height": height}
}

func browserSettings(url string, width, height int) map[string]any {
	return map[string]any{
		"url":                 url,
		"width":               width,
		"height":              height,
		"fps":                 30,
		"shutdown":            false,
		"restart_when_active": false,
	}
}

// CreateText makes a GDI+ text source in the named scene.
func (m *SourceManager) CreateText(ctx context.Context, scene, name, text string, fontSize, color int) error {
	return m.Create(ctx, scene, name, KindText, textSettings(text, fontSize, color))
}

// CreateImage makes an image source in the named scene.
func (m *SourceManager) CreateImage(ctx context.Context, scene, name, filePath string) error {
	return m.Create(ctx, scene, name, KindImage, imageSettings(filePath))
}

// CreateMedia makes a media (ffmpeg) source in the named scene.
func (m *SourceManager) CreateMedia(ctx context.Context, scene, name, filePath string, loop bool) error {
	return m.Create(ctx, scene, name, KindMedia, mediaSettings(filePath, loop))
}

// CreateColor makes a solid color source in the named scene.
func (m *SourceManager) CreateColor(ctx context.Context, scene, name string, color, width, height int) error {
	return m.Create(ctx, scene, name, KindColor, colorSettings(color, width, height))
}

// CreateBrowser makes a browser source in the named scene.
func (m *SourceManager) CreateBrowser(ctx context.Context, scene, name, url string, width, height int) error {
	return m.Create(ctx, scene, name, KindBrowser, browserSettings(url, width, height))
}

// Placement positions and scales the scene item of a newly placed source.
// Nil fields leave the OBS defaults in place.
type Placement struct {
	Position *models.Vec2
	Scale    *models.Vec2
}

// CreateInScene makes a new source in the named scene and applies the given
// placement to its scene item.
func (m *SourceManager) CreateInScene(ctx context.Context, scene, name, kind string, settings map[string]any, placement Placement) error {
	if err := m.Create(ctx, scene, name, kind, settings); err != nil {
		return err
	}
	if placement.Position == nil && placement.Scale == nil {
		return nil
	}
	return m.applyPlacement(ctx, scene, name, placement)
}

// CreateTextInScene makes a text source in the scene with placement.
func (m *SourceManager) CreateTextInScene(ctx context.Context, scene, name, text string, fontSize, color int, placement Placement) error {
	return m.CreateInScene(ctx, scene, name, KindText, textSettings(text, fontSize, color), placement)
}

// CreateImageInScene makes an image source in the scene with placement.
func (m *SourceManager) CreateImageInScene(ctx context.Context, scene, name, filePath string, placement Placement) error {
	return m.CreateInScene(ctx, scene, name, KindImage, imageSettings(filePath), placement)
}

// CreateMediaInScene makes a media source in the scene with placement.
func (m *SourceManager) CreateMediaInScene(ctx context.Context, scene, name, filePath string, loop bool, placement Placement) error {
	return m.CreateInScene(ctx, scene, name, KindMedia, mediaSettings(filePath, loop), placement)
}

// CreateColorInScene makes a color source in the scene with placement.
func (m *SourceManager) CreateColorInScene(ctx context.Context, scene, name string, color, width, height int, placement Placement) error {
	return m.CreateInScene(ctx, scene, name, KindColor, colorSettings(color, width, height), placement)
}

// CreateBrowserInScene makes a browser source in the scene with placement.
func (m *SourceManager) CreateBrowserInScene(ctx context.Context, scene, name, url string, width, height int, placement Placement) error {
	return m.CreateInScene(ctx, scene, name, KindBrowser, browserSettings(url, width, height), placement)
}

// AddToScene adds an existing source to a scene as a new scene item and
// applies the given placement.
func (m *SourceManager) AddToScene(ctx context.Context, scene, name string, placement Placement) error {
	if err := requireName("scene name", scene); err != nil {
		return err
	}
	if err := requireName("source name", name); err != nil {
		return err
	}

	names, err := m.Names(ctx)
	if err != nil {
		return err
	}
	if !contains(names, name) {
		return notFound("source", name, names)
	}

	req := map[string]any{"sceneName": scene, "sourceName": name}
	if err := m.client.Call(ctx, "CreateSceneItem", req, nil); err != nil {
		return fmt.Errorf("add source %q to scene %q: %w", name, scene, err)
	}

	if placement.Position == nil && placement.Scale == nil {
		m.log.Info().Str("source", name).Str("scene", scene).Msg("added source to scene")
		return nil
	}
	return m.applyPlacement(ctx, scene, name, placement)
}

// applyPlacement looks up the scene item of a source in a scene and applies
// the placement transform to it.
func (m *SourceManager) applyPlacement(ctx context.Context, scene, name string, placement Placement) error {
	var items struct {
		SceneItems []models.SceneItem `json:"sceneItems"`
	}
	if err := m.client.Call(ctx, "GetSceneItemList", map[string]any{"sceneName": scene}, &items); err != nil {
		return fmt.Errorf("get scene items of %q: %w", scene, err)
	}

	for _, item := range items.SceneItems {
		if item.SourceName != name {
			continue
		}

		transform := map[string]any{}
		if placement.Position != nil {
			transform["positionX"] = placement.Position.X
			transform["positionY"] = placement.Position.Y
		}
		if placement.Scale != nil {
			transform["scaleX"] = placement.Scale.X
			transform["scaleY"] = placement.Scale.Y
		}

		req := map[string]any{
			"sceneName":          scene,
			"sceneItemId":        item.ID,
			"sceneItemTransform": transform,
		}
		if err := m.client.Call(ctx, "SetSceneItemTransform", req, nil); err != nil {
			return fmt.Errorf("set transform of %q in %q: %w", name, scene, err)
		}
		return nil
	}
	return notFound("scene item for source", name, nil)
}

// SetText replaces the text of a text source, keeping its other settings.
func (m *SourceManager) SetText(ctx context.Context, name, text string) error {
	return m.patchSetting(ctx, name, "text", text)
}

// SetImagePath points an image source at a new file.
func (m *SourceManager) SetImagePath(ctx context.Context, name, filePath string) error {
	return m.patchSetting(ctx, name, "file", filePath)
}

// SetMediaPath points a media source at a new file.
func (m *SourceManager) SetMediaPath(ctx context.Context, name, filePath string) error {
	return m.patchSetting(ctx, name, "local_file", filePath)
}

func (m *SourceManager) patchSetting(ctx context.Context, name, key string, value any) error {
	settings, err := m.Settings(ctx, name)
	if err != nil {
		return err
	}
	if settings == nil {
		settings = map[string]any{}
	}
	settings[key] = value
	return m.SetSettings(ctx, name, settings)
}

// Info assembles a source state summary including the distribution of
// sources across kinds.
func (m *SourceManager) Info(ctx context.Context) (models.SourceInfo, error) {
	sources, err := m.List(ctx)
	if err != nil {
		return models.SourceInfo{}, err
	}

	names := make([]string, 0, len(sources))
	kinds := make(map[string]int)
	for _, s := range sources {
		names = append(names, s.Name)
		kinds[s.Kind]++
	}

	return models.SourceInfo{
		TotalSources: len(sources),
		SourceNames:  names,
		SourceKinds:  kinds,
	}, nil
}
