package repository

import (
	"studyport/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PeerMarkingRepository интерфейс для работы с задачами взаимной проверки
type PeerMarkingRepository interface {
	Put(task *models.PeerMarkingTask) error
	PutMany(tasks []models.PeerMarkingTask) error
	GetByID(id string) (*models.PeerMarkingTask, error)
	Delete(id string) error
	ListByBatch(batchID string) ([]models.PeerMarkingTask, error)
	ListByMarker(markerID string) ([]models.PeerMarkingTask, error)
	ListByStudent(studentID string) ([]models.PeerMarkingTask, error)
}

type peerMarkingRepository struct {
	db *gorm.DB
}

// NewPeerMarkingRepository создает новый репозиторий взаимной проверки
func NewPeerMarkingRepository(db *gorm.DB) PeerMarkingRepository {
	return &peerMarkingRepository{db: db}
}

func (r *peerMarkingRepository) Put(task *models.PeerMarkingTask) error {
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(task).Error
}

func (r *peerMarkingRepository) PutMany(tasks []models.PeerMarkingTask) error {
	for i := range tasks {
		if err := r.Put(&tasks[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *peerMarkingRepository) GetByID(id string) (*models.PeerMarkingTask, error) {
	var task models.PeerMarkingTask
	err := r.db.First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *peerMarkingRepository) Delete(id string) error {
	return r.db.Delete(&models.PeerMarkingTask{}, "id = ?", id).Error
}

func (r *peerMarkingRepository) ListByBatch(batchID string) ([]models.PeerMarkingTask, error) {
	var tasks []models.PeerMarkingTask
	err := r.db.Where("batch_id = ?", batchID).Find(&tasks).Error
	return tasks, err
}

func (r *peerMarkingRepository) ListByMarker(markerID string) ([]models.PeerMarkingTask, error) {
	var tasks []models.PeerMarkingTask
	err := r.db.Where("assigned_marker_id = ?", markerID).Find(&tasks).Error
	return tasks, err
}

func (r *peerMarkingRepository) ListByStudent(studentID string) ([]models.PeerMarkingTask, error) {
	var tasks []models.PeerMarkingTask
	err := r.db.Where("student_id = ?", studentID).Find(&tasks).Error
	return tasks, err
}
