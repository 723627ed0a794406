package obsremote

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-obs-remote/logger"
	"github.com/MKhiriev/go-obs-remote/models"
	"github.com/MKhiriev/go-obs-remote/obsws"
)

// VirtualCamManager drives the virtual camera output.
type VirtualCamManager struct {
	client obsws.Caller
	log    *logger.Logger
}

func newVirtualCamManager(client obsws.Caller, log *logger.Logger) *VirtualCamManager {
	return &VirtualCamManager{client: client, log: log.GetChildLogger("virtual_cam")}
}

// Status returns the raw virtual camera status.
func (m *VirtualCamManager) Status(ctx context.Context) (models.VirtualCamStatus, error) {
	var resp models.VirtualCamStatus
	if err := m.client.Call(ctx, "GetVirtualCamStatus", nil, &resp); err != nil {
		return models.VirtualCamStatus{}, fmt.Errorf("get virtual camera status: %w", err)
	}
	return resp, nil
}

// Active reports whether the virtual camera is running.
func (m *VirtualCamManager) Active(ctx context.Context) (bool, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return false, err
	}
	return status.Active, nil
}

// Start turns the virtual camera on. Starting an active camera yields
// obsws.ErrOutputRunning.
func (m *VirtualCamManager) Start(ctx context.Context) error {
	if err := m.client.Call(ctx, "StartVirtualCam", nil, nil); err != nil {
		return fmt.Errorf("start virtual camera: %w", err)
	}
	m.log.Info().Msg("virtual camera started")
	return nil
}

// Stop turns the virtual camera off. Stopping an idle camera yields
// obsws.ErrOutputNotRunning.
func (m *VirtualCamManager) Stop(ctx context.Context) error {
	if err := m.client.Call(ctx, "StopVirtualCam", nil, nil); err != nil {
		return fmt.Errorf("stop virtual camera: %w", err)
	}
	m.log.Info().Msg("virtual camera stopped")
	return nil
}

// Toggle flips the virtual camera state and returns the new active state.
func (m *VirtualCamManager) Toggle(ctx context.Context) (bool, error) {
	var resp struct {
		Active bool `json:"outputActive"`
	}
	if err := m.client.Call(ctx, "ToggleVirtualCam", nil, &resp); err != nil {
		return false, fmt.Errorf("toggle virtual camera: %w", err)
	}
	return resp.Active, nil
}

// Info assembles a virtual camera state summary.
func (m *VirtualCamManager) Info(ctx context.Context) (models.VirtualCamInfo, error) {
	status, err := m.Status(ctx)
	if err != nil {
		return models.VirtualCamInfo{}, err
	}
	return models.VirtualCamInfo{Active: status.Active}, nil
}
