package obsremote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-obs-remote/internal/mock"
	"github.com/MKhiriev/go-obs-remote/logger"
	"github.com/MKhiriev/go-obs-remote/obsws"
)

func newTestRecordingManager(t *testing.T) (*RecordingManager, *mock.MockCaller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	caller := mock.NewMockCaller(ctrl)
	return newRecordingManager(caller, logger.Nop()), caller
}

func TestRecordingManager_Status(t *testing.T) {
	// Arrange
	m, caller := newTestRecordingManager(t)
	caller.EXPECT().
		Call(gomock.Any(), "GetRecordStatus", nil, gomock.Any()).
		DoAndReturn(respond(`{
			"outputActive":true,
			"outputPaused":false,
			"outputTimecode":"00:05:30.000",
			"outputDuration":330000,
			"outputBytes":52428800
		}`))

	// Act
	status, err := m.Status(context.Background())

	// Assert
	require.NoError(t, err)
	assert.True(t, status.Active)
	assert.False(t, status.Paused)
	assert.Equal(t, "00:05:30.000", status.Timecode)
	assert.Equal(t, int64(330000), status.Duration)
	assert.Equal(t, int64(52428800), status.Bytes)
}

func TestRecordingManager_Duration(t *testing.T) {
	// Arrange
	m, caller := newTestRecordingManager(t)
	caller.EXPECT().
		Call(gomock.Any(), "GetRecordStatus", nil, gomock.Any()).
		DoAndReturn(respond(`{"outputActive":true,"outputDuration":330000}`))

	// Act
	duration, err := m.Duration(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute+30*time.Second, duration)
}

func TestRecordingManager_Start_AlreadyRunning(t *testing.T) {
	// Arrange
	m, caller := newTestRecordingManager(t)
	caller.EXPECT().
		Call(gomock.Any(), "StartRecord", nil, nil).
		Return(obsws.ErrOutputRunning)

	// Act
	err := m.Start(context.Background())

	// Assert
	require.ErrorIs(t, err, obsws.ErrOutputRunning)
}

func TestRecordingManager_Stop_ReturnsOutputPath(t *testing.T) {
	// Arrange
	m, caller := newTestRecordingManager(t)
	caller.EXPECT().
		Call(gomock.Any(), "StopRecord", nil, gomock.Any()).
		DoAndReturn(respond(`{"outputPath":"/home/obs/videos/2026-08-26.mkv"}`))

	// Act
	path, err := m.Stop(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/home/obs/videos/2026-08-26.mkv", path)
}

func TestRecordingManager_Stop_NotRunning(t *testing.T) {
	// Arrange
	m, caller := newTestRecordingManager(t)
	caller.EXPECT().
		Call(gomock.Any(), "StopRecord", nil, gomock.Any()).
		Return(obsws.ErrOutputNotRunning)

	// Act
	_, err := m.Stop(context.Background())

	// Assert
	require.ErrorIs(t, err, obsws.ErrOutputNotRunning)
}

func TestRecordingManager_Toggle(t *testing.T) {
	// Arrange
	m, caller := newTestRecordingManager(t)
	caller.EXPECT().
		Call(gomock.Any(), "ToggleRecord", nil, gomock.Any()).
		DoAndReturn(respond(`{"outputActive":true}`))

	// Act
	active, err := m.Toggle(context.Background())

	// Assert
	require.NoError(t, err)
	assert.True(t, active)
}

func TestRecordingManager_Directory(t *testing.T) {
	// Arrange
	m, caller := newTestRecordingManager(t)
	gomock.InOrder(
		caller.EXPECT().
			Call(gomock.Any(), "GetRecordDirectory", nil, gomock.Any()).
			DoAndReturn(respond(`{"recordDirectory":"/home/obs/videos"}`)),
		caller.EXPECT().
			Call(gomock.Any(), "SetRecordDirectory", map[string]any{"recordDirectory": "/mnt/storage"}, nil).
			Return(nil),
	)

	// Act
	dir, err := m.Directory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/home/obs/videos", dir)

	// Assert
	require.NoError(t, m.SetDirectory(context.Background(), "/mnt/storage"))
	require.ErrorIs(t, m.SetDirectory(context.Background(), "  "), ErrNameRequired)
}

func TestRecordingManager_CreateChapter(t *testing.T) {
	// Arrange
	m, caller := newTestRecordingManager(t)
	gomock.InOrder(
		caller.EXPECT().
			Call(gomock.Any(), "CreateRecordChapter", map[string]any{"chapterName": "Intro"}, nil).
			Return(nil),
		// An empty name lets OBS number the chapter
		caller.EXPECT().
			Call(gomock.Any(), "CreateRecordChapter", map[string]any{}, nil).
			Return(nil),
	)

	// Act & Assert
	require.NoError(t, m.CreateChapter(context.Background(), "Intro"))
	require.NoError(t, m.CreateChapter(context.Background(), ""))
}

func TestRecordingManager_QuickRecord(t *testing.T) {
	// Arrange
	m, caller := newTestRecordingManager(t)
	gomock.InOrder(
		caller.EXPECT().
			Call(gomock.Any(), "SetRecordDirectory", map[string]any{"recordDirectory": "/tmp/recordings"}, nil).
			Return(nil),
		caller.EXPECT().
			Call(gomock.Any(), "StartRecord", nil, nil).
			Return(nil),
		caller.EXPECT().
			Call(gomock.Any(), "StopRecord", nil, gomock.Any()).
			DoAndReturn(respond(`{"outputPath":"/tmp/recordings/clip.mkv"}`)),
	)

	// Act
	start := time.Now()
	path, err := m.QuickRecord(context.Background(), 50*time.Millisecond, "/tmp/recordings")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/tmp/recordings/clip.mkv", path)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestRecordingManager_QuickRecord_NonPositiveDuration(t *testing.T) {
	m, _ := newTestRecordingManager(t)

	_, err := m.QuickRecord(context.Background(), 0, "")
	require.ErrorIs(t, err, obsws.ErrInvalidParameter)
}

func TestRecordingManager_Info(t *testing.T) {
	// Arrange
	m, caller := newTestRecordingManager(t)
	caller.EXPECT().
		Call(gomock.Any(), "GetRecordStatus", nil, gomock.Any()).
		DoAndReturn(respond(`{
			"outputActive":true,
			"outputPaused":true,
			"outputTimecode":"00:01:00.000",
			"outputDuration":60000,
			"outputBytes":1048576
		}`))

	// Act
	info, err := m.Info(context.Background())

	// Assert
	require.NoError(t, err)
	assert.True(t, info.Recording)
	assert.True(t, info.Paused)
	assert.Equal(t, int64(60000), info.Duration)
	assert.Equal(t, "00:01:00.000", info.Timecode)
	assert.Equal(t, int64(1048576), info.Bytes)
}
