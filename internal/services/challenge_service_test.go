package services

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// pngBase64 рисует простое изображение заданного размера
func pngBase64(t *testing.T, width, height int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, height/2, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestAddImageBuildsThumbnail(t *testing.T) {
	env := newTestEnv(t)
	challenges := NewChallengeService(env.challengeRepo, zap.NewNop())

	img, err := challenges.AddImage("diagram.png", pngBase64(t, 800, 600))
	require.NoError(t, err)
	require.NotEmpty(t, img.ID)
	require.NotEmpty(t, img.Thumbnail)

	// Миниатюра вписана в 300x300 с сохранением пропорций
	raw, err := base64.StdEncoding.DecodeString(img.Thumbnail)
	require.NoError(t, err)
	thumb, _, err := image.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Equal(t, 300, thumb.Bounds().Dx())
	require.Equal(t, 225, thumb.Bounds().Dy())
}

func TestAddImageKeepsOriginalWhenThumbnailFails(t *testing.T) {
	env := newTestEnv(t)
	challenges := NewChallengeService(env.challengeRepo, zap.NewNop())

	data := base64.StdEncoding.EncodeToString([]byte("not an image"))
	img, err := challenges.AddImage("broken.png", data)
	require.NoError(t, err)
	require.Equal(t, data, img.Data)
	require.Empty(t, img.Thumbnail)

	stored, err := env.challengeRepo.GetByID(img.ID)
	require.NoError(t, err)
	require.Equal(t, data, stored.Data)
}

func TestChallengeLibraryListAndDelete(t *testing.T) {
	env := newTestEnv(t)
	challenges := NewChallengeService(env.challengeRepo, zap.NewNop())

	img, err := challenges.AddImage("diagram.png", pngBase64(t, 100, 100))
	require.NoError(t, err)

	list, err := challenges.List()
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, challenges.Delete(img.ID))

	list, err = challenges.List()
	require.NoError(t, err)
	require.Empty(t, list)
}
