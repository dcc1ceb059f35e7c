package services

import (
	"fmt"

	"studyport/internal/models"
	"studyport/internal/repository"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StudentService управляет записями учеников
type StudentService interface {
	CreateStudent(username, password string, curriculum models.Curriculum, batch string) (*models.Student, error)
	GetStudent(id string) (*models.Student, error)
	SaveStudent(student *models.Student) error
	DeleteStudent(id string) error
	ListByBatch(batchID string) ([]models.Student, error)
	List() ([]models.Student, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
}

// NewStudentService создает новый сервис учеников
func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

// CreateStudent создает ученика и заполняет темы из шаблона программы
func (s *studentService) CreateStudent(username, password string, curriculum models.Curriculum, batch string) (*models.Student, error) {
	student := &models.Student{
		ID:         uuid.New().String(),
		Username:   username,
		Password:   password,
		Curriculum: curriculum,
		Batch:      batch,
		Topics:     datatypes.NewJSONSlice(models.TopicTemplate(curriculum)),
	}
	if err := s.studentRepo.Create(student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	return student, nil
}

// GetStudent получает ученика по ID
func (s *studentService) GetStudent(id string) (*models.Student, error) {
	return s.studentRepo.GetByID(id)
}

// SaveStudent сохраняет запись ученика целиком
func (s *studentService) SaveStudent(student *models.Student) error {
	return s.studentRepo.Put(student)
}

// DeleteStudent удаляет ученика
func (s *studentService) DeleteStudent(id string) error {
	return s.studentRepo.Delete(id)
}

// ListByBatch получает учеников группы
func (s *studentService) ListByBatch(batchID string) ([]models.Student, error) {
	return s.studentRepo.ListByBatch(batchID)
}

// List получает всех учеников
func (s *studentService) List() ([]models.Student, error) {
	return s.studentRepo.List()
}
