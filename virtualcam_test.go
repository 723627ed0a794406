package obsremote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-obs-remote/internal/mock"
	"github.com/MKhiriev/go-obs-remote/logger"
	"github.com/MKhiriev/go-obs-remote/obsws"
)

func newTestVirtualCamManager(t *testing.T) (*VirtualCamManager, *mock.MockCaller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	caller := mock.NewMockCaller(ctrl)
	return newVirtualCamManager(caller, logger.Nop()), caller
}

func TestVirtualCamManager_Active(t *testing.T) {
	// Arrange
	m, caller := newTestVirtualCamManager(t)
	caller.EXPECT().
		Call(gomock.Any(), "GetVirtualCamStatus", nil, gomock.Any()).
		DoAndReturn(respond(`{"outputActive":true}`))

	// Act
	active, err := m.Active(context.Background())

	// Assert
	require.NoError(t, err)
	assert.True(t, active)
}

func TestVirtualCamManager_StartStop_ErrorsMapped(t *testing.T) {
	// Arrange
	m, caller := newTestVirtualCamManager(t)
	gomock.InOrder(
		caller.EXPECT().
			Call(gomock.Any(), "StartVirtualCam", nil, nil).
			Return(obsws.ErrOutputRunning),
		caller.EXPECT().
			Call(gomock.Any(), "StopVirtualCam", nil, nil).
			Return(obsws.ErrOutputNotRunning),
	)

	// Act & Assert
	require.ErrorIs(t, m.Start(context.Background()), obsws.ErrOutputRunning)
	require.ErrorIs(t, m.Stop(context.Background()), obsws.ErrOutputNotRunning)
}

func TestVirtualCamManager_Toggle(t *testing.T) {
	// Arrange
	m, caller := newTestVirtualCamManager(t)
	caller.EXPECT().
		Call(gomock.Any(), "ToggleVirtualCam", nil, gomock.Any()).
		DoAndReturn(respond(`{"outputActive":true}`))

	// Act
	active, err := m.Toggle(context.Background())

	// Assert
	require.NoError(t, err)
	assert.True(t, active)
}

func TestVirtualCamManager_Info(t *testing.T) {
	// Arrange
	m, caller := newTestVirtualCamManager(t)
	caller.EXPECT().
		Call(gomock.Any(), "GetVirtualCamStatus", nil, gomock.Any()).
		DoAndReturn(respond(`{"outputActive":false}`))

	// Act
	info, err := m.Info(context.Background())

	// Assert
	require.NoError(t, err)
	assert.False(t, info.Active)
}
