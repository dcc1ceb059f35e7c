package services

import (
	"errors"
	"fmt"

	"studyport/internal/models"
	"studyport/internal/repository"

	"go.uber.org/zap"
)

// Ошибки взаимной проверки
var (
	ErrNotAssignedMarker = errors.New("only the assigned marker can advance the task")
	ErrInvalidTransition = errors.New("task is already completed")
)

// PeerMarkingService управляет задачами взаимной проверки работ
type PeerMarkingService interface {
	CreateTask(batchID, studentID, markerID, scriptURL, schemeURL string) (*models.PeerMarkingTask, error)
	AdvanceStatus(session *Session, taskID string) (*models.PeerMarkingTask, error)
	ListByBatch(batchID string) ([]models.PeerMarkingTask, error)
	ListForMarker(markerID string) ([]models.PeerMarkingTask, error)
}

type peerMarkingService struct {
	markingRepo repository.PeerMarkingRepository
	sync        SyncService
	logger      *zap.Logger
}

// NewPeerMarkingService создает новый сервис взаимной проверки
func NewPeerMarkingService(markingRepo repository.PeerMarkingRepository, sync SyncService, logger *zap.Logger) PeerMarkingService {
	return &peerMarkingService{
		markingRepo: markingRepo,
		sync:        sync,
		logger:      logger,
	}
}

// CreateTask создает задачу в начальном состоянии Pending
func (s *peerMarkingService) CreateTask(batchID, studentID, markerID, scriptURL, schemeURL string) (*models.PeerMarkingTask, error) {
	task := &models.PeerMarkingTask{
		BatchID:          batchID,
		StudentID:        studentID,
		AssignedMarkerID: markerID,
		ScriptURL:        scriptURL,
		SchemeURL:        schemeURL,
		Status:           models.MarkingPending,
	}
	if err := s.markingRepo.Put(task); err != nil {
		return nil, fmt.Errorf("failed to create marking task: %w", err)
	}
	return task, nil
}

// AdvanceStatus переводит задачу в следующее состояние цепочки
// Pending -> Marking -> Completed. Продвигать может только назначенный
// проверяющий; сдавший работу ученик сам себя не продвигает. Обратных
// переходов нет, Completed — терминальное состояние.
func (s *peerMarkingService) AdvanceStatus(session *Session, taskID string) (*models.PeerMarkingTask, error) {
	task, err := s.markingRepo.GetByID(taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to load marking task: %w", err)
	}

	if !session.IsAdmin() && session.StudentID != task.AssignedMarkerID {
		return nil, ErrNotAssignedMarker
	}

	next, ok := task.NextStatus()
	if !ok {
		return nil, ErrInvalidTransition
	}

	task.Status = next
	if err := s.markingRepo.Put(task); err != nil {
		return nil, fmt.Errorf("failed to persist marking task: %w", err)
	}

	// Изменение состояния уходит полной заменой списка задач группы;
	// сбой облака не откатывает локальное состояние
	if result := s.sync.PushPeerMarking(task.BatchID); !result.OK() {
		s.logger.Warn("marking task saved locally, cloud push failed",
			zap.String("taskId", task.ID),
			zap.String("batchId", task.BatchID),
			zap.String("error", result.Error))
	}

	return task, nil
}

// ListByBatch получает задачи группы
func (s *peerMarkingService) ListByBatch(batchID string) ([]models.PeerMarkingTask, error) {
	return s.markingRepo.ListByBatch(batchID)
}

// ListForMarker получает задачи, назначенные проверяющему
func (s *peerMarkingService) ListForMarker(markerID string) ([]models.PeerMarkingTask, error) {
	return s.markingRepo.ListByMarker(markerID)
}
