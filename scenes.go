package obsremote

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-obs-remote/logger"
	"github.com/MKhiriev/go-obs-remote/models"
	"github.com/MKhiriev/go-obs-remote/obsws"
)

const (
	minTransitionDuration = 50
	maxTransitionDuration = 20000
)

// SceneManager drives scene listing, switching, creation and studio mode.
type SceneManager struct {
	client obsws.Caller
	log    *logger.Logger
}

func newSceneManager(client obsws.Caller, log *logger.Logger) *SceneManager {
	return &SceneManager{client: client, log: log.GetChildLogger("scenes")}
}

// List returns all scenes in display order.
func (m *SceneManager) List(ctx context.Context) ([]models.Scene, error) {
	var resp struct {
		Scenes []models.Scene `json:"scenes"`
	}
	if err := m.client.Call(ctx, "GetSceneList", nil, &resp); err != nil {
		return nil, fmt.Errorf("get scene list: %w", err)
	}
	return resp.Scenes, nil
}

// Names returns the names of all scenes.
func (m *SceneManager) Names(ctx context.Context) ([]string, error) {
	scenes, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(scenes))
	for _, s := range scenes {
		names = append(names, s.Name)
	}
	return names, nil
}

// Groups returns the names of all groups.
func (m *SceneManager) Groups(ctx context.Context) ([]string, error) {
	var resp struct {
		Groups []string `json:"groups"`
	}
	if err := m.client.Call(ctx, "GetGroupList", nil, &resp); err != nil {
		return nil, fmt.Errorf("get group list: %w", err)
	}
	return resp.Groups, nil
}

// CurrentProgram returns the name of the current program scene.
func (m *SceneManager) CurrentProgram(ctx context.Context) (string, error) {
	var resp struct {
		SceneName string `json:"currentProgramSceneName"`
	}
	if err := m.client.Call(ctx, "GetCurrentProgramScene", nil, &resp); err != nil {
		return "", fmt.Errorf("get current program scene: %w", err)
	}
	return resp.SceneName, nil
}

// CurrentPreview returns the name of the current preview scene. Requires
// studio mode.
func (m *SceneManager) CurrentPreview(ctx context.Context) (string, error) {
	var resp struct {
		SceneName string `json:"currentPreviewSceneName"`
	}
	if err := m.client.Call(ctx, "GetCurrentPreviewScene", nil, &resp); err != nil {
		return "", fmt.Errorf("get current preview scene: %w", err)
	}
	return resp.SceneName, nil
}

// Exists reports whether a scene with the given name exists.
func (m *SceneManager) Exists(ctx context.Context, name string) (bool, error) {
	names, err := m.Names(ctx)
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// SwitchTo makes the named scene the program scene. An unknown name yields
// obsws.ErrResourceNotFound listing the scenes that do exist.
func (m *SceneManager) SwitchTo(ctx context.Context, name string) error {
	if err := requireName("scene name", name); err != nil {
		return err
	}

	names, err := m.Names(ctx)
	if err != nil {
		return err
	}
	if !contains(names, name) {
		return notFound("scene", name, names)
	}

	if err := m.client.Call(ctx, "SetCurrentProgramScene", map[string]any{"sceneName": name}, nil); err != nil {
		return fmt.Errorf("switch to scene %q: %w", name, err)
	}
	m.log.Info().Str("scene", name).Msg("switched program scene")
	return nil
}

// SetPreview makes the named scene the preview scene. Requires studio mode.
func (m *SceneManager) SetPreview(ctx context.Context, name string) error {
	if err := requireName("scene name", name); err != nil {
		return err
	}

	names, err := m.Names(ctx)
	if err != nil {
		return err
	}
	if !contains(names, name) {
		return notFound("scene", name, names)
	}

	if err := m.client.Call(ctx, "SetCurrentPreviewScene", map[string]any{"sceneName": name}, nil); err != nil {
		return fmt.Errorf("set preview scene %q: %w", name, err)
	}
	return nil
}

// Create adds a new scene. An existing name yields
// obsws.ErrResourceAlreadyExists.
func (m *SceneManager) Create(ctx context.Context, name string) error {
	if err := requireName("scene name", name); err != nil {
		return err
	}

	exists, err := m.Exists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return alreadyExists("scene", name)
	}

	if err := m.client.Call(ctx, "CreateScene", map[string]any{"sceneName": name}, nil); err != nil {
		return fmt.Errorf("create scene %q: %w", name, err)
	}
	m.log.Info().Str("scene", name).Msg("created scene")
	return nil
}

// Remove deletes the named scene.
func (m *SceneManager) Remove(ctx context.Context, name string) error {
	if err := requireName("scene name", name); err != nil {
		return err
	}

	names, err := m.Names(ctx)
	if err != nil {
		return err
	}
	if !contains(names, name) {
		return notFound("scene", name, names)
	}

	if err := m.client.Call(ctx, "RemoveScene", map[string]any{"sceneName": name}, nil); err != nil {
		return fmt.Errorf("remove scene %q: %w", name, err)
	}
	m.log.Info().Str("scene", name).Msg("removed scene")
	return nil
}

// Rename changes a scene's name. The new name must not collide with an
// existing scene.
func (m *SceneManager) Rename(ctx context.Context, name, newName string) error {
	if err := requireName("scene name", name); err != nil {
		return err
	}
	if err := requireName("new scene name", newName); err != nil {
		return err
	}

	names, err := m.Names(ctx)
	if err != nil {
		return err
	}
	if !contains(names, name) {
		return notFound("scene", name, names)
	}
	if contains(names, newName) {
		return alreadyExists("scene", newName)
	}

	req := map[string]any{"sceneName": name, "newSceneName": newName}
	if err := m.client.Call(ctx, "SetSceneName", req, nil); err != nil {
		return fmt.Errorf("rename scene %q to %q: %w", name, newName, err)
	}
	return nil
}

// StudioModeEnabled reports whether studio mode is active.
func (m *SceneManager) StudioModeEnabled(ctx context.Context) (bool, error) {
	var resp struct {
		Enabled bool `json:"studioModeEnabled"`
	}
	if err := m.client.Call(ctx, "GetStudioModeEnabled", nil, &resp); err != nil {
		return false, fmt.Errorf("get studio mode: %w", err)
	}
	return resp.Enabled, nil
}

// SetStudioModeEnabled turns studio mode on or off.
func (m *SceneManager) SetStudioModeEnabled(ctx context.Context, enabled bool) error {
	if err := m.client.Call(ctx, "SetStudioModeEnabled", map[string]any{"studioModeEnabled": enabled}, nil); err != nil {
		return fmt.Errorf("set studio mode: %w", err)
	}
	return nil
}

// TriggerTransition runs the studio mode transition, sending the preview
// scene to program. Yields obsws.ErrStudioModeNotActive when studio mode
// is off.
func (m *SceneManager) TriggerTransition(ctx context.Context) error {
	if err := m.client.Call(ctx, "TriggerStudioModeTransition", nil, nil); err != nil {
		return fmt.Errorf("trigger studio mode transition: %w", err)
	}
	return nil
}

// TransitionOverride returns the per-scene transition override. Nil fields
// mean no override is set.
func (m *SceneManager) TransitionOverride(ctx context.Context, name string) (models.TransitionOverride, error) {
	if err := requireName("scene name", name); err != nil {
		return models.TransitionOverride{}, err
	}

	var resp models.TransitionOverride
	if err := m.client.Call(ctx, "GetSceneSceneTransitionOverride", map[string]any{"sceneName": name}, &resp); err != nil {
		return models.TransitionOverride{}, fmt.Errorf("get transition override for %q: %w", name, err)
	}
	return resp, nil
}

// SetTransitionOverride sets the per-scene transition override. Either
// field may be nil to leave it unchanged; a non-nil duration must be within
// 50..20000 ms.
func (m *SceneManager) SetTransitionOverride(ctx context.Context, name string, override models.TransitionOverride) error {
	if err := requireName("scene name", name); err != nil {
		return err
	}
	if override.Duration != nil {
		if d := *override.Duration; d < minTransitionDuration || d > maxTransitionDuration {
			return fmt.Errorf("%w: %d ms (must be %d..%d)", ErrDurationOutOfRange, d, minTransitionDuration, maxTransitionDuration)
		}
	}

	req := map[string]any{"sceneName": name}
	if override.Name != nil {
		req["transitionName"] = *override.Name
	}
	if override.Duration != nil {
		req["transitionDuration"] = *override.Duration
	}
	if err := m.client.Call(ctx, "SetSceneSceneTransitionOverride", req, nil); err != nil {
		return fmt.Errorf("set transition override for %q: %w", name, err)
	}
	return nil
}

// Info assembles a scene state summary. The preview scene is blank when
// studio mode is off.
func (m *SceneManager) Info(ctx context.Context) (models.SceneInfo, error) {
	names, err := m.Names(ctx)
	if err != nil {
		return models.SceneInfo{}, err
	}

	program, err := m.CurrentProgram(ctx)
	if err != nil {
		return models.SceneInfo{}, err
	}

	studioMode, err := m.StudioModeEnabled(ctx)
	if err != nil {
		return models.SceneInfo{}, err
	}

	info := models.SceneInfo{
		CurrentProgram: program,
		StudioMode:     studioMode,
		TotalScenes:    len(names),
		SceneNames:     names,
	}
	if studioMode {
		preview, err := m.CurrentPreview(ctx)
		if err != nil {
			return models.SceneInfo{}, err
		}
		info.CurrentPreview = preview
	}
	return info, nil
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
