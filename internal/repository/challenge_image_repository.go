package repository

import (
	"studyport/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChallengeImageRepository интерфейс для работы с библиотекой изображений
type ChallengeImageRepository interface {
	Put(image *models.ChallengeImage) error
	PutMany(images []models.ChallengeImage) error
	GetByID(id string) (*models.ChallengeImage, error)
	Delete(id string) error
	List() ([]models.ChallengeImage, error)
}

type challengeImageRepository struct {
	db *gorm.DB
}

// NewChallengeImageRepository создает новый репозиторий изображений
func NewChallengeImageRepository(db *gorm.DB) ChallengeImageRepository {
	return &challengeImageRepository{db: db}
}

func (r *challengeImageRepository) Put(image *models.ChallengeImage) error {
	if image.ID == "" {
		image.ID = uuid.New().String()
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(image).Error
}

func (r *challengeImageRepository) PutMany(images []models.ChallengeImage) error {
	for i := range images {
		if err := r.Put(&images[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *challengeImageRepository) GetByID(id string) (*models.ChallengeImage, error) {
	var image models.ChallengeImage
	err := r.db.First(&image, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *challengeImageRepository) Delete(id string) error {
	return r.db.Delete(&models.ChallengeImage{}, "id = ?", id).Error
}

// List получает всю библиотеку: изображения общие для всех групп
func (r *challengeImageRepository) List() ([]models.ChallengeImage, error) {
	var images []models.ChallengeImage
	err := r.db.Find(&images).Error
	return images, err
}
