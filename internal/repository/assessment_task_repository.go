package repository

import (
	"studyport/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AssessmentTaskRepository интерфейс для работы с заданиями
type AssessmentTaskRepository interface {
	Put(task *models.AssessmentTask) error
	PutMany(tasks []models.AssessmentTask) error
	GetByID(id string) (*models.AssessmentTask, error)
	Delete(id string) error
	ListByBatch(batchID string) ([]models.AssessmentTask, error)
	ListByBatchCategory(batchID, category string) ([]models.AssessmentTask, error)
}

type assessmentTaskRepository struct {
	db *gorm.DB
}

// NewAssessmentTaskRepository создает новый репозиторий заданий
func NewAssessmentTaskRepository(db *gorm.DB) AssessmentTaskRepository {
	return &assessmentTaskRepository{db: db}
}

func (r *assessmentTaskRepository) Put(task *models.AssessmentTask) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(task).Error
}

func (r *assessmentTaskRepository) PutMany(tasks []models.AssessmentTask) error {
	for i := range tasks {
		if err := r.Put(&tasks[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *assessmentTaskRepository) GetByID(id string) (*models.AssessmentTask, error) {
	var task models.AssessmentTask
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *assessmentTaskRepository) Delete(id string) error {
	return r.db.Delete(&models.AssessmentTask{}, "id = ?", id).Error
}

func (r *assessmentTaskRepository) ListByBatch(batchID string) ([]models.AssessmentTask, error) {
	var tasks []models.AssessmentTask
	err := r.db.Where("batch_id = ?", batchID).Find(&tasks).Error
	return tasks, err
}

func (r *assessmentTaskRepository) ListByBatchCategory(batchID, category string) ([]models.AssessmentTask, error) {
	var tasks []models.AssessmentTask
	err := r.db.Where("batch_id = ? AND category = ?", batchID, category).Find(&tasks).Error
	return tasks, err
}
