package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"rentdesk/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	folder, filename, body string
}

func (f *fakeUploader) Upload(ctx context.Context, folder, filename string, file io.Reader) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.folder, f.filename, f.body = folder, filename, string(data)
	return "https://cdn.example.com/" + folder + "/" + filename, nil
}

func TestBuildingCRUD(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.admin.CreateBuilding(env.ctx, BuildingInput{Name: "  ", Address: "x"})
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
	_, err = env.admin.CreateBuilding(env.ctx, BuildingInput{Name: "B1", Address: "x", ContactEmail: "nope"})
	assert.Equal(t, errors.ErrCodeInvalidEmail, errors.CodeOf(err))

	b, err := env.admin.CreateBuilding(env.ctx, BuildingInput{Name: "B1", Address: "1 Main St", ContactEmail: "Office@B1.com"})
	require.NoError(t, err)
	assert.Equal(t, "office@b1.com", b.ContactEmail)

	b, err = env.admin.UpdateBuilding(env.ctx, b.ID, BuildingInput{Name: "B1 North", Address: "1 Main St"})
	require.NoError(t, err)
	assert.Equal(t, "B1 North", b.Name)

	list, err := env.admin.ListBuildings(env.ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "B1 North", list[0].Name)

	_, err = env.admin.UpdateBuilding(env.ctx, 999, BuildingInput{Name: "x", Address: "y"})
	assert.ErrorIs(t, err, errors.ErrBuildingNotFound)
	assert.ErrorIs(t, env.admin.DeleteBuilding(env.ctx, 999), errors.ErrBuildingNotFound)
}

func TestSetBuildingImage(t *testing.T) {
	env := newTestEnv(t)
	b := env.building(t, "B1")

	_, err := env.admin.SetBuildingImage(env.ctx, b.ID, "front.jpg", strings.NewReader("img"))
	assert.Equal(t, errors.KindUnavailable, errors.KindOf(err))

	up := &fakeUploader{}
	svc := NewBuildingService(env.opts, up)
	updated, err := svc.SetImage(env.ctx, b.ID, "front.jpg", strings.NewReader("img"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/buildings/front.jpg", updated.Image)
	assert.Equal(t, "buildings", up.folder)
	assert.Equal(t, "img", up.body)

	_, err = svc.SetImage(env.ctx, 999, "front.jpg", strings.NewReader("img"))
	assert.ErrorIs(t, err, errors.ErrBuildingNotFound)
}
