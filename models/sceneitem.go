package models

// SceneItem describes one item inside a scene as reported by the
// GetSceneItemList request.
type SceneItem struct {
	ID         int                `json:"sceneItemId"`
	Index      int                `json:"sceneItemIndex"`
	SourceName string             `json:"sourceName"`
	SourceUUID string             `json:"sourceUuid,omitempty"`
	SourceType string             `json:"sourceType,omitempty"`
	InputKind  string             `json:"inputKind,omitempty"`
	Enabled    bool               `json:"sceneItemEnabled"`
	Locked     bool               `json:"sceneItemLocked"`
	Transform  SceneItemTransform `json:"sceneItemTransform"`
}

// SceneItemTransform holds the position/scale/crop information of a scene
// item as reported by GetSceneItemTransform.
type SceneItemTransform struct {
	PositionX    float64 `json:"positionX"`
	PositionY    float64 `json:"positionY"`
	Rotation     float64 `json:"rotation"`
	ScaleX       float64 `json:"scaleX"`
	ScaleY       float64 `json:"scaleY"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	SourceWidth  float64 `json:"sourceWidth"`
	SourceHeight float64 `json:"sourceHeight"`
	CropTop      float64 `json:"cropTop"`
	CropBottom   float64 `json:"cropBottom"`
	CropLeft     float64 `json:"cropLeft"`
	CropRight    float64 `json:"cropRight"`
}

// Vec2 is a two-component vector used for scene item positions and scale
// factors.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SceneItemSummary is a compact per-item view included in [SceneItemInfo].
type SceneItemSummary struct {
	ID         int    `json:"id"`
	SourceName string `json:"source_name"`
	Enabled    bool   `json:"enabled"`
}

// SceneItemInfo is an aggregate summary of the items inside one scene.
type SceneItemInfo struct {
	SceneName     string             `json:"scene_name"`
	TotalItems    int                `json:"total_items"`
	EnabledItems  int                `json:"enabled_items"`
	DisabledItems int                `json:"disabled_items"`
	Items         []SceneItemSummary `json:"items"`
}
