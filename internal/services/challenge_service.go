package services

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"

	"studyport/internal/models"
	"studyport/internal/repository"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"
)

// ChallengeService управляет библиотекой изображений для генерации
// вопросов по диаграммам. Библиотека общая для всех групп.
type ChallengeService interface {
	AddImage(name, dataBase64 string) (*models.ChallengeImage, error)
	List() ([]models.ChallengeImage, error)
	Delete(id string) error
}

type challengeService struct {
	challengeRepo repository.ChallengeImageRepository
	logger        *zap.Logger
}

// NewChallengeService создает новый сервис библиотеки изображений
func NewChallengeService(challengeRepo repository.ChallengeImageRepository, logger *zap.Logger) ChallengeService {
	return &challengeService{challengeRepo: challengeRepo, logger: logger}
}

// AddImage сохраняет изображение и его уменьшенную копию для списка.
// Сбой построения миниатюры не мешает сохранению оригинала.
func (s *challengeService) AddImage(name, dataBase64 string) (*models.ChallengeImage, error) {
	img := &models.ChallengeImage{
		Name: name,
		Data: dataBase64,
	}

	thumbnail, err := makeThumbnail(dataBase64)
	if err != nil {
		s.logger.Warn("failed to create thumbnail", zap.String("name", name), zap.Error(err))
	} else {
		img.Thumbnail = thumbnail
	}

	if err := s.challengeRepo.Put(img); err != nil {
		return nil, fmt.Errorf("failed to store challenge image: %w", err)
	}
	return img, nil
}

// makeThumbnail строит миниатюру до 300px по большей стороне
func makeThumbnail(dataBase64 string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(dataBase64)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse image: %w", err)
	}

	thumbnail := imaging.Fit(src, 300, 300, imaging.Lanczos)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, thumbnail, &jpeg.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// List получает всю библиотеку
func (s *challengeService) List() ([]models.ChallengeImage, error) {
	return s.challengeRepo.List()
}

// Delete удаляет изображение из библиотеки
func (s *challengeService) Delete(id string) error {
	return s.challengeRepo.Delete(id)
}
