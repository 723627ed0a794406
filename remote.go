// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package obsremote is a convenience SDK for driving OBS Studio over the
// obs-websocket v5 protocol. A Remote owns one connection and hands out
// managers grouped by concern: scenes, inputs, sources, scene items,
// recording, streaming and the virtual camera. Every manager method is a
// thin wrapper around a single protocol request with light validation and
// response reshaping; failures come back as wrapped obsws sentinel errors.
package obsremote

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-obs-remote/config"
	"github.com/MKhiriev/go-obs-remote/logger"
	"github.com/MKhiriev/go-obs-remote/models"
	"github.com/MKhiriev/go-obs-remote/obsws"
)

// Remote is the entry point of the SDK. The zero value is not usable;
// construct with New.
type Remote struct {
	cfg    *config.Config
	log    *logger.Logger
	client *obsws.Client

	scenes     *SceneManager
	inputs     *InputManager
	sources    *SourceManager
	sceneItems *SceneItemManager
	recording  *RecordingManager
	streaming  *StreamingManager
	virtualCam *VirtualCamManager
}

// New builds a Remote from the given config. A nil cfg falls back to
// config.Default(), a nil log to a no-op logger.
func New(cfg *config.Config, log *logger.Logger) *Remote {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.Nop()
	}

	client := obsws.New(cfg, log)

	return &Remote{
		cfg:        cfg,
		log:        log,
		client:     client,
		scenes:     newSceneManager(client, log),
		inputs:     newInputManager(client, log),
		sources:    newSourceManager(client, log),
		sceneItems: newSceneItemManager(client, log),
		recording:  newRecordingManager(client, log),
		streaming:  newStreamingManager(client, log),
		virtualCam: newVirtualCamManager(client, log),
	}
}

// Connect dials OBS and performs the Identify handshake.
func (r *Remote) Connect(ctx context.Context) error {
	return r.client.Connect(ctx)
}

// Disconnect closes the connection. Safe to call when not connected.
func (r *Remote) Disconnect() error {
	return r.client.Disconnect()
}

func (r *Remote) IsConnected() bool {
	return r.client.IsConnected()
}

func (r *Remote) Scenes() *SceneManager         { return r.scenes }
func (r *Remote) Inputs() *InputManager         { return r.inputs }
func (r *Remote) Sources() *SourceManager       { return r.sources }
func (r *Remote) SceneItems() *SceneItemManager { return r.sceneItems }
func (r *Remote) Recording() *RecordingManager  { return r.recording }
func (r *Remote) Streaming() *StreamingManager  { return r.streaming }
func (r *Remote) VirtualCam() *VirtualCamManager {
	return r.virtualCam
}

// Version reports OBS and obs-websocket version information.
func (r *Remote) Version(ctx context.Context) (models.VersionInfo, error) {
	return r.client.Version(ctx)
}

// Stats reports OBS runtime statistics.
func (r *Remote) Stats(ctx context.Context) (models.StatsInfo, error) {
	return r.client.Stats(ctx)
}

// OnEvent registers a handler for every OBS event. The returned function
// removes the handler.
func (r *Remote) OnEvent(handler obsws.EventHandler) (off func()) {
	return r.client.OnEvent(handler)
}

// OnEventType registers a handler for one event type, e.g.
// "CurrentProgramSceneChanged".
func (r *Remote) OnEventType(eventType string, handler obsws.EventHandler) (off func()) {
	return r.client.OnEventType(eventType, handler)
}

// Status assembles a full state summary from all managers.
func (r *Remote) Status(ctx context.Context) (models.Status, error) {
	if !r.client.IsConnected() {
		return models.Status{}, obsws.ErrNotConnected
	}

	status := models.Status{Connected: true}

	version, err := r.Version(ctx)
	if err != nil {
		return status, fmt.Errorf("get version: %w", err)
	}
	status.Version = version

	recording, err := r.recording.Info(ctx)
	if err != nil {
		return status, fmt.Errorf("get recording info: %w", err)
	}
	status.Recording = recording

	streaming, err := r.streaming.Info(ctx)
	if err != nil {
		return status, fmt.Errorf("get streaming info: %w", err)
	}
	status.Streaming = streaming

	scenes, err := r.scenes.Info(ctx)
	if err != nil {
		return status, fmt.Errorf("get scene info: %w", err)
	}
	status.Scenes = scenes

	inputs, err := r.inputs.Info(ctx)
	if err != nil {
		return status, fmt.Errorf("get input info: %w", err)
	}
	status.Inputs = inputs

	sources, err := r.sources.Info(ctx)
	if err != nil {
		return status, fmt.Errorf("get source info: %w", err)
	}
	status.Sources = sources

	vcam, err := r.virtualCam.Info(ctx)
	if err != nil {
		return status, fmt.Errorf("get virtual camera info: %w", err)
	}
	status.VirtualCam = vcam

	return status, nil
}
