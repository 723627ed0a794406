package models

// Scene describes a single OBS scene as reported by the GetSceneList
// request.
type Scene struct {
	Name  string `json:"sceneName"`
	UUID  string `json:"sceneUuid,omitempty"`
	Index int    `json:"sceneIndex"`
}

// TransitionOverride holds a scene's transition override settings. Both
// fields are nil when the scene has no override configured.
type TransitionOverride struct {
	Name     *string `json:"transitionName"`
	Duration *int    `json:"transitionDuration"`
}

// SceneInfo is an aggregate summary of the scene state, assembled by the
// scene manager from several requests.
type SceneInfo struct {
	CurrentProgram string   `json:"current_program"`
	CurrentPreview string   `json:"current_preview"`
	StudioMode     bool     `json:"studio_mode"`
	TotalScenes    int      `json:"total_scenes"`
	SceneNames     []string `json:"scene_names"`
}
