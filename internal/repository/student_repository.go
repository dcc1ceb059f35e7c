package repository

import (
	"studyport/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StudentRepository интерфейс для работы с учениками
type StudentRepository interface {
	Create(student *models.Student) error
	GetByID(id string) (*models.Student, error)
	GetByUsername(username string) (*models.Student, error)
	Put(student *models.Student) error
	PutMany(students []models.Student) error
	Delete(id string) error
	List() ([]models.Student, error)
	ListByBatch(batchID string) ([]models.Student, error)
}

// studentRepository реализация репозитория учеников
type studentRepository struct {
	db *gorm.DB
}

// NewStudentRepository создает новый репозиторий учеников
func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

// Create создает нового ученика
func (r *studentRepository) Create(student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.New().String()
	}
	return r.db.Create(student).Error
}

// GetByID получает ученика по ID
func (r *studentRepository) GetByID(id string) (*models.Student, error) {
	var student models.Student
	err := r.db.First(&student, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetByUsername получает ученика по имени пользователя
func (r *studentRepository) GetByUsername(username string) (*models.Student, error) {
	var student models.Student
	err := r.db.Where("username = ?", username).First(&student).Error
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// Put сохраняет запись ученика целиком: вставка или полная замена
// по первичному ключу, частичных обновлений нет
func (r *studentRepository) Put(student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.New().String()
	}
	return r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(student).Error
}

// PutMany сохраняет записи по одной; прерванная на середине запись
// оставляет частичный результат — принятый компромисс
func (r *studentRepository) PutMany(students []models.Student) error {
	for i := range students {
		if err := r.Put(&students[i]); err != nil {
			return err
		}
	}
	return nil
}

// Delete удаляет ученика
func (r *studentRepository) Delete(id string) error {
	return r.db.Delete(&models.Student{}, "id = ?", id).Error
}

// List получает всех учеников
func (r *studentRepository) List() ([]models.Student, error) {
	var students []models.Student
	err := r.db.Find(&students).Error
	return students, err
}

// ListByBatch получает учеников одной группы
func (r *studentRepository) ListByBatch(batchID string) ([]models.Student, error) {
	var students []models.Student
	err := r.db.Where("batch = ?", batchID).Find(&students).Error
	return students, err
}
