package obsremote

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-obs-remote/logger"
	"github.com/MKhiriev/go-obs-remote/models"
	"github.com/MKhiriev/go-obs-remote/obsws"
)

// StreamingManager drives the stream output.
type StreamingManager struct {
	client obsws.Caller
	log    *logger.Logger
}

func newStreamingManager(client obsws.Caller, log *logger.Logger) *StreamingManager {
	return &StreamingManager{client: client, log: log.GetChildLogger("streaming")}
}

// Status returns the raw stream output status.
func (m *StreamingManager) Status(ctx context.Context) (models.StreamStatus, error) {
	var resp models.StreamStatus
	if err := m.client.Call(ctx, "GetStreamStatus", nil, &resp); err != nil {
		return models.StreamStatus{}, fmt.Errorf("get stream status: %w", err)
	}
	return resp, nil
}

// Active reports whether a stream is running.
func (m *StreamingManager) Active(ctx context.Context) (bool, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return false, err
	}
	return status.Active, nil
}

// Reconnecting reports whether the stream output is reconnecting.
func (m *StreamingManager) Reconnecting(ctx context.Context) (bool, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return false, err
	}
	return status.Reconnecting, nil
}

// Duration returns how long the stream has been running.
func (m *StreamingManager) Duration(ctx context.Context) (time.Duration, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return 0, err
	}
	return time.Duration(status.Duration) * time.Millisecond, nil
}

// Timecode returns the current stream timecode (HH:MM:SS.mmm).
func (m *StreamingManager) Timecode(ctx context.Context) (string, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return "", err
	}
	return status.Timecode, nil
}

// BytesSent returns the number of bytes sent so far.
func (m *StreamingManager) BytesSent(ctx context.Context) (int64, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return 0, err
	}
	return status.Bytes, nil
}

// SkippedFrames returns the number of frames skipped by the encoder.
func (m *StreamingManager) SkippedFrames(ctx context.Context) (int64, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return 0, err
	}
	return status.SkippedFrames, nil
}

// TotalFrames returns the total number of frames delivered to the output.
func (m *StreamingManager) TotalFrames(ctx context.Context) (int64, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return 0, err
	}
	return status.TotalFrames, nil
}

// Congestion returns the output congestion between 0 and 1.
func (m *StreamingManager) Congestion(ctx context.Context) (float64, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return 0, err
	}
	return status.Congestion, nil
}

// Start begins streaming. Starting an active stream yields
// obsws.ErrOutputRunning.
func (m *StreamingManager) Start(ctx context.Context) error {
	if err := m.client.Call(ctx, "StartStream", nil, nil); err != nil {
		return fmt.Errorf("start streaming: %w", err)
	}
	m.log.Info().Msg("streaming started")
	return nil
}

// Stop ends the stream. Stopping an idle output yields
// obsws.ErrOutputNotRunning.
func (m *StreamingManager) Stop(ctx context.Context) error {
	if err := m.client.Call(ctx, "StopStream", nil, nil); err != nil {
		return fmt.Errorf("stop streaming: %w", err)
	}
	m.log.Info().Msg("streaming stopped")
	return nil
}

// Toggle starts or stops the stream and returns the new active state.
func (m *StreamingManager) Toggle(ctx context.Context) (bool, error) {
	var resp struct {
		Active bool `json:"outputActive"`
	}
	if err := m.client.Call(ctx, "ToggleStream", nil, &resp); err != nil {
		return false, fmt.Errorf("toggle streaming: %w", err)
	}
	return resp.Active, nil
}

// SendCaptions pushes CEA-608 caption text to the running stream output.
func (m *StreamingManager) SendCaptions(ctx context.Context, text string) error {
	if err := m.client.Call(ctx, "SendStreamCaption", map[string]any{"captionText": text}, nil); err != nil {
		return fmt.Errorf("send stream caption: %w", err)
	}
	return nil
}

// Info assembles a streaming state summary including the percentage of
// skipped frames.
func (m *StreamingManager) Info(ctx context.Context) (models.StreamingInfo, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return models.StreamingInfo{}, err
	}

	total := status.TotalFrames
	if total < 1 {
		total = 1
	}
	return models.StreamingInfo{
		Streaming:     status.Active,
		Reconnecting:  status.Reconnecting,
		Duration:      status.Duration,
		Timecode:      status.Timecode,
		BytesSent:     status.Bytes,
		SkippedFrames: status.SkippedFrames,
		TotalFrames:   status.TotalFrames,
		Congestion:    status.Congestion,
		DropRate:      float64(status.SkippedFrames) / float64(total) * 100,
	}, nil
}
