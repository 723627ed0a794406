package obsremote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-obs-remote/internal/mock"
	"github.com/MKhiriev/go-obs-remote/logger"
	"github.com/MKhiriev/go-obs-remote/models"
	"github.com/MKhiriev/go-obs-remote/obsws"
)

func newTestSourceManager(t *testing.T) (*SourceManager, *mock.MockCaller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	caller := mock.NewMockCaller(ctrl)
	return newSourceManager(caller, logger.Nop()), caller
}

const sourceListJSON = `{"inputs":[
	{"inputName":"Logo","inputKind":"image_source"},
	{"inputName":"Ticker","inputKind":"text_gdiplus_v2"}
]}`

// ── Typed creators ───────────────────────────────────────────────────────────

func TestSourceManager_CreateText_SettingsPayload(t *testing.T) {
	// Arrange
	m, caller := newTestSourceManager(t)
	gomock.InOrder(
		caller.EXPECT().
			Call(gomock.Any(), "GetInputList", nil, gomock.Any()).
			DoAndReturn(respond(sourceListJSON)),
		caller.EXPECT().
			Call(gomock.Any(), "CreateInput", map[string]any{
				"sceneName": "Main",
				"inputName": "Title",
				"inputKind": KindText,
				"inputSettings": map[string]any{
					"text": "Hello",
					"font": map[string]any{
						"face":  "Arial",
						"size":  48,
						"style": "",
					},
					"color":       0xFFFFFF,
					"opacity":     100,
					"outline":     false,
					"drop_shadow": false,
				},
			}, nil).
			Return(nil),
	)

	// Act & Assert
	require.NoError(t, m.CreateText(context.Background(), "Main", "Title", "Hello", 48, 0xFFFFFF))
}

func TestSourceManager_CreateColor_SettingsPayload(t *testing.T) {
	// Arrange
	m, caller := newTestSourceManager(t)
	gomock.InOrder(
		caller.EXPECT().
			Call(gomock.Any(), "GetInputList", nil, gomock.Any()).
			DoAndReturn(respond(sourceListJSON)),
		caller.EXPECT().
			Call(gomock.Any(), "CreateInput", map[string]any{
				"sceneName": "Main",
				"inputName": "Backdrop",
				"inputKind": KindColor,
				"inputSettings": map[string]any{
					"color":  models.RGBToBGR(0x336699),
					"width":  1920,
					"height": 1080,
				},
			}, nil).
			Return(nil),
	)

	// Act & Assert
	require.NoError(t, m.CreateColor(context.Background(), "Main", "Backdrop", models.RGBToBGR(0x336699), 1920, 1080))
}

func TestSourceManager_Create_DuplicateName(t *testing.T) {
	// Arrange
	m, caller := newTestSourceManager(t)
	caller.EXPECT().
		Call(gomock.Any(), "GetInputList", nil, gomock.Any()).
		DoAndReturn(respond(sourceListJSON))

	// Act
	err := m.Create(context.Background(), "Main", "Logo", KindImage, nil)

	// Assert
	require.ErrorIs(t, err, obsws.ErrResourceAlreadyExists)
}

func TestSourceManager_Create_Validation(t *testing.T) {
	m, _ := newTestSourceManager(t)
	ctx := context.Background()

	require.ErrorIs(t, m.Create(ctx, "", "Logo", KindImage, nil), ErrNameRequired)
	require.ErrorIs(t, m.Create(ctx, "Main", "", KindImage, nil), ErrNameRequired)
	require.ErrorIs(t, m.Create(ctx, "Main", "Logo", "", nil), ErrNameRequired)
}

// ── AddToScene ───────────────────────────────────────────────────────────────

func TestSourceManager_AddToScene_WithPlacement(t *testing.T) {
	// Arrange
	m, caller := newTestSourceManager(t)
	gomock.InOrder(
		caller.EXPECT().
			Call(gomock.Any(), "GetInputList", nil, gomock.Any()).
			DoAndReturn(respond(sourceListJSON)),
		caller.EXPECT().
			Call(gomock.Any(), "CreateSceneItem", map[string]any{"sceneName": "Main", "sourceName": "Logo"}, nil).
			Return(nil),
		caller.EXPECT().
			Call(gomock.Any(), "GetSceneItemList", map[string]any{"sceneName": "Main"}, gomock.Any()).
			DoAndReturn(respond(`{"sceneItems":[
				{"sceneItemId":3,"sourceName":"Ticker"},
				{"sceneItemId":5,"sourceName":"Logo"}
			]}`)),
		caller.EXPECT().
			Call(gomock.Any(), "SetSceneItemTransform", map[string]any{
				"sceneName":   "Main",
				"sceneItemId": 5,
				"sceneItemTransform": map[string]any{
					"positionX": 100.0,
					"positionY": 200.0,
					"scaleX":    0.5,
					"scaleY":    0.5,
				},
			}, nil).
			Return(nil),
	)

	// Act
	err := m.AddToScene(context.Background(), "Main", "Logo", Placement{
		Position: &models.Vec2{X: 100, Y: 200},
		Scale:    &models.Vec2{X: 0.5, Y: 0.5},
	})

	// Assert
	require.NoError(t, err)
}

func TestSourceManager_AddToScene_UnknownSource(t *testing.T) {
	// Arrange
	m, caller := newTestSourceManager(t)
	caller.EXPECT().
		Call(gomock.Any(), "GetInputList", nil, gomock.Any()).
		DoAndReturn(respond(sourceListJSON))

	// Act
	err := m.AddToScene(context.Background(), "Main", "Ghost", Placement{})

	// Assert
	require.ErrorIs(t, err, obsws.ErrResourceNotFound)
}

// ── Settings patching ────────────────────────────────────────────────────────

func TestSourceManager_SetText_KeepsOtherSettings(t *testing.T) {
	// Arrange
	m, caller := newTestSourceManager(t)
	gomock.InOrder(
		caller.EXPECT().
			Call(gomock.Any(), "GetInputSettings", map[string]any{"inputName": "Ticker"}, gomock.Any()).
			DoAndReturn(respond(`{"inputSettings":{"text":"old","color":255}}`)),
		caller.EXPECT().
			Call(gomock.Any(), "SetInputSettings", map[string]any{
				"inputName": "Ticker",
				"inputSettings": map[string]any{
					"text":  "new headline",
					"color": 255.0,
				},
			}, nil).
			Return(nil),
	)

	// Act & Assert
	require.NoError(t, m.SetText(context.Background(), "Ticker", "new headline"))
}

// ── Info ─────────────────────────────────────────────────────────────────────

func TestSourceManager_Info(t *testing.T) {
	// Arrange
	m, caller := newTestSourceManager(t)
	caller.EXPECT().
		Call(gomock.Any(), "GetInputList", nil, gomock.Any()).
		DoAndReturn(respond(sourceListJSON))

	// Act
	info, err := m.Info(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, info.TotalSources)
	assert.Equal(t, []string{"Logo", "Ticker"}, info.SourceNames)
	assert.Equal(t, map[string]int{"image_source": 1, "text_gdiplus_v2": 1}, info.SourceKinds)
}
