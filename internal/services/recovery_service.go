package services

import (
	"studyport/internal/repository"

	"go.uber.org/zap"
)

// RecoveryService реализует самовосстановление: если у авторизованного
// ученика локальная запись пуста, состояние автоматически поднимается
// из облачного эха ранее выгруженных данных.
type RecoveryService interface {
	EnsureStudentData(session *Session, studentID string) bool
}

type recoveryService struct {
	studentRepo repository.StudentRepository
	sync        SyncService
	logger      *zap.Logger
}

// NewRecoveryService создает новый сервис восстановления
func NewRecoveryService(studentRepo repository.StudentRepository, sync SyncService, logger *zap.Logger) RecoveryService {
	return &recoveryService{
		studentRepo: studentRepo,
		sync:        sync,
		logger:      logger,
	}
}

// EnsureStudentData проверяет локальную запись ученика при входе в его
// раздел и при пустом состоянии забирает запись из облака с полной
// заменой. Возвращает true, если восстановление выполнено и данные
// нужно перечитать.
//
// Правила:
//   - администратора восстановление не касается;
//   - срабатывает только когда и assessments, и termAssessments пусты —
//     непустая локальная запись никогда не затирается устаревшим эхом;
//   - повторный запуск без изменений в облаке ничего не меняет;
//   - любой сбой проглатывается и логируется: восстановление — улучшение
//     поверх системы, которая обязана работать и без облака.
func (s *recoveryService) EnsureStudentData(session *Session, studentID string) bool {
	if session.IsAdmin() {
		return false
	}

	student, err := s.studentRepo.GetByID(studentID)
	if err != nil {
		s.logger.Warn("recovery skipped: failed to load local student",
			zap.String("studentId", studentID), zap.Error(err))
		return false
	}

	if student.HasProgress() {
		return false
	}

	result := s.sync.PullStudent(student.Batch, student.ID)
	if !result.OK() {
		s.logger.Warn("recovery pull failed",
			zap.String("studentId", studentID),
			zap.String("error", result.Error))
		return false
	}

	restored, err := s.studentRepo.GetByID(studentID)
	if err != nil {
		s.logger.Warn("recovery verification failed",
			zap.String("studentId", studentID), zap.Error(err))
		return false
	}
	if !restored.HasProgress() {
		// Облако тоже пустое — восстанавливать нечего
		return false
	}

	s.logger.Info("student data restored from cloud",
		zap.String("studentId", studentID),
		zap.Int("assessments", len(restored.Assessments)),
		zap.Int("termAssessments", len(restored.TermAssessments)))
	return true
}
