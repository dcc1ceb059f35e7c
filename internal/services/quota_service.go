package services

import (
	"fmt"
	"time"

	"studyport/internal/models"
	"studyport/internal/repository"

	"gorm.io/datatypes"
)

// QuotaKind определяет, какой дневной счетчик проверяется
type QuotaKind string

const (
	QuotaAI          QuotaKind = "ai"
	QuotaEmpowerment QuotaKind = "empowerment"
)

// QuotaResult — итог проверки квоты. Исчерпание квоты — не ошибка,
// а обычный отказ, который вызывающая сторона обрабатывает мягко.
type QuotaResult struct {
	Allowed   bool `json:"allowed"`
	Remaining int  `json:"remaining"`
}

// QuotaService ведет дневные счетчики использования платных функций
type QuotaService interface {
	CheckAndIncrement(kind QuotaKind, studentID string, limit int) (QuotaResult, error)
}

type quotaService struct {
	studentRepo repository.StudentRepository
}

// NewQuotaService создает новый сервис квот
func NewQuotaService(studentRepo repository.StudentRepository) QuotaService {
	return &quotaService{studentRepo: studentRepo}
}

// CheckAndIncrement проверяет дневной лимит и при разрешении увеличивает
// счетчик с сохранением полной записи ученика. Сравнение дат идет по
// локальному календарю устройства, без нормализации часового пояса —
// граница дня у каждого устройства своя, поведение сохранено как есть.
// При отказе ничего не сохраняется.
func (s *quotaService) CheckAndIncrement(kind QuotaKind, studentID string, limit int) (QuotaResult, error) {
	student, err := s.studentRepo.GetByID(studentID)
	if err != nil {
		return QuotaResult{}, fmt.Errorf("failed to load student: %w", err)
	}

	var counter models.UsageCounter
	switch kind {
	case QuotaAI:
		counter = student.AIUsage.Data()
	case QuotaEmpowerment:
		counter = student.EmpowermentUsage.Data()
	default:
		return QuotaResult{}, fmt.Errorf("unknown quota kind: %s", kind)
	}

	today := time.Now().Format("2006-01-02")
	if counter.Date != today {
		counter = models.UsageCounter{Date: today, Count: 0}
	}

	if counter.Count >= limit {
		return QuotaResult{Allowed: false, Remaining: 0}, nil
	}

	remaining := limit - counter.Count - 1
	counter.Count++

	switch kind {
	case QuotaAI:
		student.AIUsage = datatypes.NewJSONType(counter)
	case QuotaEmpowerment:
		student.EmpowermentUsage = datatypes.NewJSONType(counter)
	}

	if err := s.studentRepo.Put(student); err != nil {
		return QuotaResult{}, fmt.Errorf("failed to persist counter: %w", err)
	}

	return QuotaResult{Allowed: true, Remaining: remaining}, nil
}
