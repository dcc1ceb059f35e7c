package repository

import (
	"studyport/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SyllabusPortionRepository интерфейс для работы с разделами программы
type SyllabusPortionRepository interface {
	Put(portion *models.SyllabusPortion) error
	PutMany(portions []models.SyllabusPortion) error
	GetByID(id string) (*models.SyllabusPortion, error)
	Delete(id string) error
	ListByBatch(batchID string) ([]models.SyllabusPortion, error)
}

type syllabusPortionRepository struct {
	db *gorm.DB
}

// NewSyllabusPortionRepository создает новый репозиторий разделов программы
func NewSyllabusPortionRepository(db *gorm.DB) SyllabusPortionRepository {
	return &syllabusPortionRepository{db: db}
}

func (r *syllabusPortionRepository) Put(portion *models.SyllabusPortion) error {
	if portion.ID == "" {
		portion.ID = uuid.New().String()
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(portion).Error
}

func (r *syllabusPortionRepository) PutMany(portions []models.SyllabusPortion) error {
	for i := range portions {
		if err := r.Put(&portions[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *syllabusPortionRepository) GetByID(id string) (*models.SyllabusPortion, error) {
	var portion models.SyllabusPortion
	err := r.db.First(&portion, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &portion, nil
}

func (r *syllabusPortionRepository) Delete(id string) error {
	return r.db.Delete(&models.SyllabusPortion{}, "id = ?", id).Error
}

func (r *syllabusPortionRepository) ListByBatch(batchID string) ([]models.SyllabusPortion, error) {
	var portions []models.SyllabusPortion
	err := r.db.Where("batch_id = ?", batchID).Find(&portions).Error
	return portions, err
}
