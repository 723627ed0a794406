package models

// RecordStatus mirrors the GetRecordStatus response.
type RecordStatus struct {
	Active   bool   `json:"outputActive"`
	Paused   bool   `json:"outputPaused"`
	Timecode string `json:"outputTimecode"`
	Duration int64  `json:"outputDuration"`
	Bytes    int64  `json:"outputBytes"`
}

// StreamStatus mirrors the GetStreamStatus response.
type StreamStatus struct {
	Active        bool    `json:"outputActive"`
	Reconnecting  bool    `json:"outputReconnecting"`
	Timecode      string  `json:"outputTimecode"`
	Duration      int64   `json:"outputDuration"`
	Congestion    float64 `json:"outputCongestion"`
	Bytes         int64   `json:"outputBytes"`
	SkippedFrames int64   `json:"outputSkippedFrames"`
	TotalFrames   int64   `json:"outputTotalFrames"`
}

// VirtualCamStatus mirrors the GetVirtualCamStatus response.
type VirtualCamStatus struct {
	Active bool `json:"outputActive"`
}

// RecordingInfo is an aggregate summary of the recording output state.
type RecordingInfo struct {
	Recording bool   `json:"recording"`
	Paused    bool   `json:"paused"`
	Duration  int64  `json:"duration"`
	Timecode  string `json:"timecode"`
	Bytes     int64  `json:"bytes"`
}

// StreamingInfo is an aggregate summary of the streaming output state.
type StreamingInfo struct {
	Streaming     bool    `json:"streaming"`
	Reconnecting  bool    `json:"reconnecting"`
	Duration      int64   `json:"duration"`
	Timecode      string  `json:"timecode"`
	BytesSent     int64   `json:"bytes_sent"`
	SkippedFrames int64   `json:"skipped_frames"`
	TotalFrames   int64   `json:"total_frames"`
	Congestion    float64 `json:"congestion"`
	DropRate      float64 `json:"drop_rate"`
}

// VirtualCamInfo is an aggregate summary of the virtual camera output state.
type VirtualCamInfo struct {
	Active bool `json:"active"`
}
