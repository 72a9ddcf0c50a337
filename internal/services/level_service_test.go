package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zafert/pointr-challenge/internal/constants"
	"github.com/Zafert/pointr-challenge/internal/dtos"
	"github.com/Zafert/pointr-challenge/internal/repositories"
	"github.com/Zafert/pointr-challenge/internal/utils"
)

func newTestLevelService() *levelService {
	return &levelService{
		repo: repositories.NewLevelRepository(),
		now:  func() time.Time { return fixedNow },
	}
}

func TestCreateLevelAcceptsFloorZero(t *testing.T) {
	svc := newTestLevelService()

	level, err := svc.CreateLevel(context.Background(), dtos.CreateLevelRequest{
		Name:        "Ground",
		BuildingID:  "b1",
		FloorNumber: utils.Ptr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, level.FloorNumber)
	assert.Equal(t, "", level.Description)
	assert.Nil(t, level.MapData)
	assert.Nil(t, level.Coordinates)
	assert.Equal(t, fixedNow, level.UpdatedAt)
}

func TestCreateLevelValidation(t *testing.T) {
	svc := newTestLevelService()

	cases := []dtos.CreateLevelRequest{
		{BuildingID: "b1", FloorNumber: utils.Ptr(1)},
		{Name: "L", FloorNumber: utils.Ptr(1)},
		{Name: "L", BuildingID: "b1"},
	}
	for _, req := range cases {
		_, err := svc.CreateLevel(context.Background(), req)
		assert.True(t, utils.IsAppErrorCode(err, utils.ErrCodeValidation))
		assert.Equal(t, constants.MsgLevelRequired, err.Error())
	}
}

func TestCreateLevelMapData(t *testing.T) {
	svc := newTestLevelService()

	level, err := svc.CreateLevel(context.Background(), dtos.CreateLevelRequest{
		Name:        "L1",
		BuildingID:  "b1",
		FloorNumber: utils.Ptr(1),
		MapData:     json.RawMessage(`{"type":"FeatureCollection","features":[]}`),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(level.MapData))

	falsy, err := svc.CreateLevel(context.Background(), dtos.CreateLevelRequest{
		Name:        "L2",
		BuildingID:  "b1",
		FloorNumber: utils.Ptr(2),
		MapData:     json.RawMessage(`""`),
	})
	require.NoError(t, err)
	assert.Nil(t, falsy.MapData)
}

func TestImportLevelsRejectsEmptyInput(t *testing.T) {
	svc := newTestLevelService()

	for _, in := range []string{"", "null", "[]", `{"name":"L"}`, `"levels"`} {
		result, err := svc.ImportLevels(context.Background(), json.RawMessage(in))
		assert.Nil(t, result, "input %q", in)
		assert.True(t, utils.IsAppErrorCode(err, utils.ErrCodeValidation), "input %q", in)
		assert.Equal(t, constants.MsgBulkEmpty, err.Error())
	}

	levels, err := svc.ListLevels(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, levels)
}

func TestImportLevelsPartialFailure(t *testing.T) {
	ctx := context.Background()
	svc := newTestLevelService()

	in := json.RawMessage(`[
		{"name":"L0","buildingId":"b1","floorNumber":0},
		{"buildingId":"b1","floorNumber":1},
		{"name":"L2","buildingId":"b1","floorNumber":2}
	]`)

	result, err := svc.ImportLevels(ctx, in)
	require.NoError(t, err)
	assert.True(t, result.HasErrors())
	assert.Equal(t, 2, result.ImportedCount())
	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, []string{"Level 2: Missing required fields (name, buildingId, floorNumber)"}, result.Errors)

	stored, err := svc.ListLevels(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "L0", stored[0].Name)
	assert.Equal(t, "L2", stored[1].Name)
}

func TestImportLevelsInvalidElement(t *testing.T) {
	svc := newTestLevelService()

	result, err := svc.ImportLevels(context.Background(), json.RawMessage(`[42, {"name":"L","buildingId":"b","floorNumber":"one"}, null]`))
	require.NoError(t, err)
	assert.Equal(t, 0, result.ImportedCount())
	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, []string{
		"Level 1: Invalid level object",
		"Level 2: Invalid level object",
		"Level 3: Missing required fields (name, buildingId, floorNumber)",
	}, result.Errors)
}

func TestImportLevelsAllValid(t *testing.T) {
	ctx := context.Background()
	svc := newTestLevelService()

	result, err := svc.ImportLevels(ctx, json.RawMessage(`[
		{"name":"A","buildingId":"b1","floorNumber":1,"mapData":0},
		{"name":"B","buildingId":"b2","floorNumber":-1,"mapData":{"rooms":3}}
	]`))
	require.NoError(t, err)
	assert.False(t, result.HasErrors())
	assert.NotNil(t, result.Errors)
	require.Len(t, result.Imported, 2)
	assert.NotEqual(t, result.Imported[0].ID, result.Imported[1].ID)
	assert.Nil(t, result.Imported[0].MapData)
	assert.JSONEq(t, `{"rooms":3}`, string(result.Imported[1].MapData))

	b2, err := svc.ListLevels(ctx, "b2")
	require.NoError(t, err)
	require.Len(t, b2, 1)
	assert.Equal(t, -1, b2[0].FloorNumber)
}

func TestDeleteLevel(t *testing.T) {
	ctx := context.Background()
	svc := newTestLevelService()

	level, err := svc.CreateLevel(ctx, dtos.CreateLevelRequest{Name: "L", BuildingID: "b", FloorNumber: utils.Ptr(3)})
	require.NoError(t, err)

	deleted, err := svc.DeleteLevel(ctx, level.ID)
	require.NoError(t, err)
	assert.Equal(t, level.ID, deleted.ID)

	_, err = svc.GetLevel(ctx, level.ID)
	assert.True(t, utils.IsAppErrorCode(err, utils.ErrCodeNotFound))
	_, err = svc.DeleteLevel(ctx, level.ID)
	assert.Equal(t, constants.MsgLevelNotFound, err.Error())
}
