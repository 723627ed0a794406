package models

// Input describes a single OBS input source as reported by the GetInputList
// request.
type Input struct {
	Name            string `json:"inputName"`
	UUID            string `json:"inputUuid,omitempty"`
	Kind            string `json:"inputKind"`
	UnversionedKind string `json:"unversionedInputKind,omitempty"`
}

// SpecialInputs maps the fixed special-input slots (global audio devices) to
// the names of the inputs occupying them. Slots without a configured device
// are empty strings: the obs-websocket server reports them as JSON null and
// the SDK coalesces null to "".
type SpecialInputs struct {
	Desktop1 string `json:"desktop1"`
	Desktop2 string `json:"desktop2"`
	Mic1     string `json:"mic1"`
	Mic2     string `json:"mic2"`
	Mic3     string `json:"mic3"`
	Mic4     string `json:"mic4"`
}

// CreateInputResult carries the identifiers of an input created via the
// CreateInput request together with its scene item in the target scene.
type CreateInputResult struct {
	InputName   string `json:"input_name"`
	InputKind   string `json:"input_kind"`
	InputUUID   string `json:"input_uuid"`
	SceneItemID int    `json:"scene_item_id"`
}

// InputInfo is an aggregate summary of the input state, assembled by the
// input manager from several requests.
type InputInfo struct {
	TotalInputs      int             `json:"total_inputs"`
	AudioInputs      int             `json:"audio_inputs"`
	AvailableKinds   []string        `json:"available_kinds"`
	InputNames       []string        `json:"input_names"`
	AudioInputNames  []string        `json:"audio_input_names"`
	AudioMuteStatus  map[string]bool `json:"audio_mute_status"`
	KindDistribution map[string]int  `json:"input_kind_distribution"`
}
