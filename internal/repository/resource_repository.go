package repository

import (
	"studyport/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BatchResourceRepository интерфейс для работы с ресурсами групп
type BatchResourceRepository interface {
	Put(resource *models.BatchResource) error
	PutMany(resources []models.BatchResource) error
	GetByID(id string) (*models.BatchResource, error)
	Delete(id string) error
	ListByBatch(batchID string) ([]models.BatchResource, error)
	ListByBatchTopic(batchID, topicID string) ([]models.BatchResource, error)
	SaveList(resources []models.BatchResource) error
}

// batchResourceRepository реализация репозитория ресурсов
type batchResourceRepository struct {
	db *gorm.DB
}

// NewBatchResourceRepository создает новый репозиторий ресурсов
func NewBatchResourceRepository(db *gorm.DB) BatchResourceRepository {
	return &batchResourceRepository{db: db}
}

// Put сохраняет ресурс: вставка или полная замена по ID
func (r *batchResourceRepository) Put(resource *models.BatchResource) error {
	if resource.ID == "" {
		resource.ID = uuid.New().String()
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(resource).Error
}

// PutMany сохраняет ресурсы по одному
func (r *batchResourceRepository) PutMany(resources []models.BatchResource) error {
	for i := range resources {
		if err := r.Put(&resources[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetByID получает ресурс по ID
func (r *batchResourceRepository) GetByID(id string) (*models.BatchResource, error) {
	var resource models.BatchResource
	err := r.db.First(&resource, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &resource, nil
}

// Delete удаляет ресурс
func (r *batchResourceRepository) Delete(id string) error {
	return r.db.Delete(&models.BatchResource{}, "id = ?", id).Error
}

// ListByBatch получает все ресурсы группы независимо от темы
func (r *batchResourceRepository) ListByBatch(batchID string) ([]models.BatchResource, error) {
	var resources []models.BatchResource
	err := r.db.Where("batch_id = ?", batchID).Find(&resources).Error
	return resources, err
}

// ListByBatchTopic получает ресурсы группы по теме.
// Пустой topicID — сигнальное значение "вся группа".
func (r *batchResourceRepository) ListByBatchTopic(batchID, topicID string) ([]models.BatchResource, error) {
	if topicID == "" {
		return r.ListByBatch(batchID)
	}
	var resources []models.BatchResource
	err := r.db.Where("batch_id = ? AND topic_id = ?", batchID, topicID).Find(&resources).Error
	return resources, err
}

// SaveList сохраняет список поэлементно, без общей транзакции
func (r *batchResourceRepository) SaveList(resources []models.BatchResource) error {
	return r.PutMany(resources)
}
