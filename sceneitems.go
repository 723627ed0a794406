package obsremote

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-obs-remote/logger"
	"github.com/MKhiriev/go-obs-remote/models"
	"github.com/MKhiriev/go-obs-remote/obsws"
)

// SceneItemManager drives visibility and transforms of items within scenes.
type SceneItemManager struct {
	client obsws.Caller
	log    *logger.Logger
}

func newSceneItemManager(client obsws.Caller, log *logger.Logger) *SceneItemManager {
	return &SceneItemManager{client: client, log: log.GetChildLogger("scene_items")}
}

// List returns all items of the named scene.
func (m *SceneItemManager) List(ctx context.Context, scene string) ([]models.SceneItem, error) {
	if err := requireName("scene name", scene); err != nil {
		return nil, err
	}

	var resp struct {
		SceneItems []models.SceneItem `json:"sceneItems"`
	}
	if err := m.client.Call(ctx, "GetSceneItemList", map[string]any{"sceneName": scene}, &resp); err != nil {
		return nil, fmt.Errorf("get scene items of %q: %w", scene, err)
	}
	return resp.SceneItems, nil
}

// ID returns the scene item ID of a source within a scene. A source not
// present in the scene yields obsws.ErrResourceNotFound.
func (m *SceneItemManager) ID(ctx context.Context, scene, source string) (int, error) {
	if err := requireName("scene name", scene); err != nil {
		return 0, err
	}
	if err := requireName("source name", source); err != nil {
		return 0, err
	}

	var resp struct {
		SceneItemID int `json:"sceneItemId"`
	}
	req := map[string]any{"sceneName": scene, "sourceName": source}
	if err := m.client.Call(ctx, "GetSceneItemId", req, &resp); err != nil {
		return 0, fmt.Errorf("get scene item id of %q in %q: %w", source, scene, err)
	}
	return resp.SceneItemID, nil
}

// Enabled reports whether the scene item is visible.
func (m *SceneItemManager) Enabled(ctx context.Context, scene string, itemID int) (bool, error) {
	if err := requireName("scene name", scene); err != nil {
		return false, err
	}

	var resp struct {
		Enabled bool `json:"sceneItemEnabled"`
	}
	req := map[string]any{"sceneName": scene, "sceneItemId": itemID}
	if err := m.client.Call(ctx, "GetSceneItemEnabled", req, &resp); err != nil {
		return false, fmt.Errorf("get enabled state of item %d in %q: %w", itemID, scene, err)
	}
	return resp.Enabled, nil
}

// SetEnabled shows or hides the scene item.
func (m *SceneItemManager) SetEnabled(ctx context.Context, scene string, itemID int, enabled bool) error {
	if err := requireName("scene name", scene); err != nil {
		return err
	}

	req := map[string]any{"sceneName": scene, "sceneItemId": itemID, "sceneItemEnabled": enabled}
	if err := m.client.Call(ctx, "SetSceneItemEnabled", req, nil); err != nil {
		return fmt.Errorf("set enabled state of item %d in %q: %w", itemID, scene, err)
	}
	m.log.Debug().Str("scene", scene).Int("item", itemID).Bool("enabled", enabled).Msg("set scene item enabled")
	return nil
}

// Show makes the scene item visible.
func (m *SceneItemManager) Show(ctx context.Context, scene string, itemID int) error {
	return m.SetEnabled(ctx, scene, itemID, true)
}

// Hide makes the scene item invisible.
func (m *SceneItemManager) Hide(ctx context.Context, scene string, itemID int) error {
	return m.SetEnabled(ctx, scene, itemID, false)
}

// Toggle flips the visibility of the scene item and returns the new state.
func (m *SceneItemManager) Toggle(ctx context.Context, scene string, itemID int) (bool, error) {
	enabled, err := m.Enabled(ctx, scene, itemID)
	if err != nil {
		return false, err
	}
	if err := m.SetEnabled(ctx, scene, itemID, !enabled); err != nil {
		return false, err
	}
	return !enabled, nil
}

// ShowSource makes the item of the named source visible.
func (m *SceneItemManager) ShowSource(ctx context.Context, scene, source string) error {
	itemID, err := m.ID(ctx, scene, source)
	if err != nil {
		return err
	}
	return m.Show(ctx, scene, itemID)
}

// HideSource makes the item of the named source invisible.
func (m *SceneItemManager) HideSource(ctx context.Context, scene, source string) error {
	itemID, err := m.ID(ctx, scene, source)
	if err != nil {
		return err
	}
	return m.Hide(ctx, scene, itemID)
}

// ToggleSource flips the visibility of the named source's item and returns
// the new state.
func (m *SceneItemManager) ToggleSource(ctx context.Context, scene, source string) (bool, error) {
	itemID, err := m.ID(ctx, scene, source)
	if err != nil {
		return false, err
	}
	return m.Toggle(ctx, scene, itemID)
}

// Transform returns the position/scale/crop transform of the scene item.
func (m *SceneItemManager) Transform(ctx context.Context, scene string, itemID int) (models.SceneItemTransform, error) {
	if err := requireName("scene name", scene); err != nil {
		return models.SceneItemTransform{}, err
	}

	var resp struct {
		Transform models.SceneItemTransform `json:"sceneItemTransform"`
	}
	req := map[string]any{"sceneName": scene, "sceneItemId": itemID}
	if err := m.client.Call(ctx, "GetSceneItemTransform", req, &resp); err != nil {
		return models.SceneItemTransform{}, fmt.Errorf("get transform of item %d in %q: %w", itemID, scene, err)
	}
	return resp.Transform, nil
}

// SetTransform applies a partial transform to the scene item. Only the keys
// present in transform are changed.
func (m *SceneItemManager) SetTransform(ctx context.Context, scene string, itemID int, transform map[string]any) error {
	if err := requireName("scene name", scene); err != nil {
		return err
	}

	req := map[string]any{"sceneName": scene, "sceneItemId": itemID, "sceneItemTransform": transform}
	if err := m.client.Call(ctx, "SetSceneItemTransform", req, nil); err != nil {
		return fmt.Errorf("set transform of item %d in %q: %w", itemID, scene, err)
	}
	return nil
}

// Info assembles a visibility summary of the named scene's items.
func (m *SceneItemManager) Info(ctx context.Context, scene string) (models.SceneItemInfo, error) {
	items, err := m.List(ctx, scene)
	if err != nil {
		return models.SceneItemInfo{}, err
	}

	info := models.SceneItemInfo{
		SceneName:  scene,
		TotalItems: len(items),
		Items:      make([]models.SceneItemSummary, 0, len(items)),
	}
	for _, item := range items {
		if item.Enabled {
			info.EnabledItems++
		} else {
			info.DisabledItems++
		}
		info.Items = append(info.Items, models.SceneItemSummary{
			ID:         item.ID,
			SourceName: item.SourceName,
			Enabled:    item.Enabled,
		})
	}
	return info, nil
}
