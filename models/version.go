package models

// VersionInfo mirrors the GetVersion response.
type VersionInfo struct {
	OBSVersion            string   `json:"obsVersion"`
	OBSWebSocketVersion   string   `json:"obsWebSocketVersion"`
	RPCVersion            int      `json:"rpcVersion"`
	Platform              string   `json:"platform"`
	PlatformDescription   string   `json:"platformDescription"`
	AvailableRequests     []string `json:"availableRequests"`
	SupportedImageFormats []string `json:"supportedImageFormats"`
}

// StatsInfo mirrors the GetStats response.
type StatsInfo struct {
	CPUUsage                         float64 `json:"cpuUsage"`
	MemoryUsage                      float64 `json:"memoryUsage"`
	AvailableDiskSpace               float64 `json:"availableDiskSpace"`
	ActiveFPS                        float64 `json:"activeFps"`
	AverageFrameRenderTime           float64 `json:"averageFrameRenderTime"`
	RenderSkippedFrames              int64   `json:"renderSkippedFrames"`
	RenderTotalFrames                int64   `json:"renderTotalFrames"`
	OutputSkippedFrames              int64   `json:"outputSkippedFrames"`
	OutputTotalFrames                int64   `json:"outputTotalFrames"`
	WebSocketSessionIncomingMessages int64   `json:"webSocketSessionIncomingMessages"`
	WebSocketSessionOutgoingMessages int64   `json:"webSocketSessionOutgoingMessages"`
}

// Status is the full state summary assembled by Remote.Status from all
// manager summaries.
type Status struct {
	Connected  bool           `json:"connected"`
	Version    VersionInfo    `json:"version"`
	Recording  RecordingInfo  `json:"recording"`
	Streaming  StreamingInfo  `json:"streaming"`
	Scenes     SceneInfo      `json:"scenes"`
	Inputs     InputInfo      `json:"inputs"`
	VirtualCam VirtualCamInfo `json:"virtual_camera"`
	Sources    SourceInfo     `json:"sources"`
}

// SourceInfo is an aggregate summary of the source state.
type SourceInfo struct {
	TotalSources int            `json:"total_sources"`
	SourceNames  []string       `json:"source_names"`
	SourceKinds  map[string]int `json:"source_kinds"`
}
