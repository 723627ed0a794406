// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package obsremote

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-obs-remote/logger"
	"github.com/MKhiriev/go-obs-remote/models"
	"github.com/MKhiriev/go-obs-remote/obsws"
)

// RecordingManager drives the record output: start/stop/pause, the output
// directory, file splitting and chapters.
type RecordingManager struct {
	client obsws.Caller
	log    *logger.Logger
}

func newRecordingManager(client obsws.Caller, log *logger.Logger) *RecordingManager {
	return &RecordingManager{client: client, log: log.GetChildLogger("recording")}
}

// Status returns the raw record output status.
func (m *RecordingManager) Status(ctx context.Context) (models.RecordStatus, error) {
	var resp models.RecordStatus
	if err := m.client.Call(ctx, "GetRecordStatus", nil, &resp); err != nil {
		return models.RecordStatus{}, fmt.Errorf("get record status: %w", err)
	}
	return resp, nil
}

// Active reports whether a recording is in progress.
func (m *RecordingManager) Active(ctx context.Context) (bool, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return false, err
	}
	return status.Active, nil
}

// Paused reports whether the recording is paused.
func (m *RecordingManager) Paused(ctx context.Context) (bool, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return false, err
	}
	return status.Paused, nil
}

// Duration returns how long the recording has been running.
func (m *RecordingManager) Duration(ctx context.Context) (time.Duration, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return 0, err
	}
	return time.Duration(status.Duration) * time.Millisecond, nil
}

// Timecode returns the current recording timecode (HH:MM:SS.mmm).
func (m *RecordingManager) Timecode(ctx context.Context) (string, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return "", err
	}
	return status.Timecode, nil
}

// Bytes returns the number of bytes written so far.
func (m *RecordingManager) Bytes(ctx context.Context) (int64, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return 0, err
	}
	return status.Bytes, nil
}

// Start begins recording. Recording while already active yields
// obsws.ErrOutputRunning.
func (m *RecordingManager) Start(ctx context.Context) error {
	if err := m.client.Call(ctx, "StartRecord", nil, nil); err != nil {
		return fmt.Errorf("start recording: %w", err)
	}
	m.log.Info().Msg("recording started")
	return nil
}

// Stop ends the recording and returns the path of the written file.
// Stopping an idle output yields obsws.ErrOutputNotRunning.
func (m *RecordingManager) Stop(ctx context.Context) (string, error) {
	var resp struct {
		OutputPath string `json:"outputPath"`
	}
	if err := m.client.Call(ctx, "StopRecord", nil, &resp); err != nil {
		return "", fmt.Errorf("stop recording: %w", err)
	}
	m.log.Info().Str("path", resp.OutputPath).Msg("recording stopped")
	return resp.OutputPath, nil
}

// Toggle starts or stops the recording and returns the new active state.
func (m *RecordingManager) Toggle(ctx context.Context) (bool, error) {
	var resp struct {
		Active bool `json:"outputActive"`
	}
	if err := m.client.Call(ctx, "ToggleRecord", nil, &resp); err != nil {
		return false, fmt.Errorf("toggle recording: %w", err)
	}
	return resp.Active, nil
}

// Pause pauses the recording.
func (m *RecordingManager) Pause(ctx context.Context) error {
	if err := m.client.Call(ctx, "PauseRecord", nil, nil); err != nil {
		return fmt.Errorf("pause recording: %w", err)
	}
	return nil
}

// Resume continues a paused recording.
func (m *RecordingManager) Resume(ctx context.Context) error {
	if err := m.client.Call(ctx, "ResumeRecord", nil, nil); err != nil {
		return fmt.Errorf("resume recording: %w", err)
	}
	return nil
}

// Directory returns the directory new recordings are written to.
func (m *RecordingManager) Directory(ctx context.Context) (string, error) {
	var resp struct {
		Directory string `json:"recordDirectory"`
	}
	if err := m.client.Call(ctx, "GetRecordDirectory", nil, &resp); err != nil {
		return "", fmt.Errorf("get record directory: %w", err)
	}
	return resp.Directory, nil
}

// SetDirectory changes the directory new recordings are written to. The
// directory must already exist on the OBS host.
func (m *RecordingManager) SetDirectory(ctx context.Context, dir string) error {
	if err := requireName("record directory", dir); err != nil {
		return err
	}

	if err := m.client.Call(ctx, "SetRecordDirectory", map[string]any{"recordDirectory": dir}, nil); err != nil {
		return fmt.Errorf("set record directory: %w", err)
	}
	m.log.Info().Str("dir", dir).Msg("record directory changed")
	return nil
}

// SplitFile ends the current recording file and starts a new one without
// interrupting the recording. Requires an active, unpaused recording.
func (m *RecordingManager) SplitFile(ctx context.Context) error {
	if err := m.client.Call(ctx, "SplitRecordFile", nil, nil); err != nil {
		return fmt.Errorf("split record file: %w", err)
	}
	return nil
}

// CreateChapter writes a chapter marker into the current recording file.
// An empty name lets OBS number the chapter. Only supported by the
// Hybrid MP4 output format.
func (m *RecordingManager) CreateChapter(ctx context.Context, name string) error {
	req := map[string]any{}
	if name != "" {
		req["chapterName"] = name
	}
	if err := m.client.Call(ctx, "CreateRecordChapter", req, nil); err != nil {
		return fmt.Errorf("create record chapter: %w", err)
	}
	return nil
}

// QuickRecord records for the given duration and returns the path of the
// written file. A non-empty dir is applied as the record directory before
// starting. The call blocks for the whole duration; cancelling ctx stops
// the recording early and still returns the partial file's path.
func (m *RecordingManager) QuickRecord(ctx context.Context, duration time.Duration, dir string) (string, error) {
	if duration <= 0 {
		return "", fmt.Errorf("%w: duration must be positive", obsws.ErrInvalidParameter)
	}

	if dir != "" {
		if err := m.SetDirectory(ctx, dir); err != nil {
			return "", err
		}
	}

	if err := m.Start(ctx); err != nil {
		return "", err
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}

	// Stop must run even when ctx is done, otherwise the recording
	// keeps going.
	path, err := m.Stop(context.WithoutCancel(ctx))
	if err != nil {
		return "", err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return path, ctxErr
	}
	return path, nil
}

// Info assembles a recording state summary.
func (m *RecordingManager) Info(ctx context.Context) (models.RecordingInfo, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return models.RecordingInfo{}, err
	}
	return models.RecordingInfo{
		Recording: status.Active,
		Paused:    status.Paused,
		Duration:  status.Duration,
		Timecode:  status.Timecode,
		Bytes:     status.Bytes,
	}, nil
}
