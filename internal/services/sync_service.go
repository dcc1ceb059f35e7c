package services

import (
	"time"

	"studyport/internal/models"
	"studyport/internal/repository"
	"studyport/pkg/cloud"
	"studyport/pkg/database"

	"go.uber.org/zap"
)

// StudentSyncResult — итог выгрузки одного ученика в составной операции
type StudentSyncResult struct {
	StudentID string       `json:"studentId"`
	Result    cloud.Result `json:"result"`
}

// SyncService реализует политики синхронизации с облаком.
// Все методы возвращают результат-значение и никогда не паникуют:
// неудачная синхронизация — обычный исход, о котором сообщают один раз.
type SyncService interface {
	Ping() cloud.Result

	PushBatchResources(batchID string) cloud.Result
	PullBatchResources(batchID string) cloud.Result

	PushAssessmentTasks(batchID string) cloud.Result
	PullAssessmentTasks(batchID string) cloud.Result

	PushChallengeLibrary() cloud.Result
	PullChallengeLibrary() cloud.Result

	PushPeerMarking(batchID string) cloud.Result
	PullPeerMarking(batchID string) cloud.Result

	PushStudent(studentID string) cloud.Result
	PullStudent(batchID, studentID string) cloud.Result
	PullBatchStudents(batchID string) cloud.Result
	PushBatchStudents(batchID string) []StudentSyncResult

	UploadStoredFile(fileID string) cloud.Result

	LogReflection(studentID string, row map[string]interface{}) cloud.Result
	DeleteReflectionRows(studentID string, match map[string]string) cloud.Result

	BackupDatabase() cloud.Result
	RestoreBackup() cloud.Result
}

type syncService struct {
	client        *cloud.Client
	store         *database.Database
	studentRepo   repository.StudentRepository
	resourceRepo  repository.BatchResourceRepository
	taskRepo      repository.AssessmentTaskRepository
	challengeRepo repository.ChallengeImageRepository
	markingRepo   repository.PeerMarkingRepository
	fileRepo      repository.FileRepository
	logger        *zap.Logger
}

// NewSyncService создает новый сервис синхронизации
func NewSyncService(
	client *cloud.Client,
	store *database.Database,
	studentRepo repository.StudentRepository,
	resourceRepo repository.BatchResourceRepository,
	taskRepo repository.AssessmentTaskRepository,
	challengeRepo repository.ChallengeImageRepository,
	markingRepo repository.PeerMarkingRepository,
	fileRepo repository.FileRepository,
	logger *zap.Logger,
) SyncService {
	return &syncService{
		client:        client,
		store:         store,
		studentRepo:   studentRepo,
		resourceRepo:  resourceRepo,
		taskRepo:      taskRepo,
		challengeRepo: challengeRepo,
		markingRepo:   markingRepo,
		fileRepo:      fileRepo,
		logger:        logger,
	}
}

// Ping проверяет связь с облаком
func (s *syncService) Ping() cloud.Result {
	return s.client.Ping()
}

// PushBatchResources выгружает полный список ресурсов группы.
// Облако слепо заменяет то, что хранило для этой группы: у удаленной
// стороны нет транзакций, поэтому частичные обновления небезопасны
// и единственная доступная модель — замена документа целиком.
func (s *syncService) PushBatchResources(batchID string) cloud.Result {
	resources, err := s.resourceRepo.ListByBatch(batchID)
	if err != nil {
		return cloud.Errorf("failed to load local resources: %v", err)
	}
	return s.client.SyncBatchResources(batchID, resources)
}

// PullBatchResources забирает список ресурсов группы и вливает его
// в локальное хранилище: совпавшие по ключу записи заменяются целиком
func (s *syncService) PullBatchResources(batchID string) cloud.Result {
	result := s.client.GetBatchResources(batchID)
	if !result.OK() {
		return result
	}

	var resources []models.BatchResource
	if err := result.DecodeData(&resources); err != nil {
		return cloud.Errorf("failed to decode resources: %v", err)
	}
	if err := s.resourceRepo.PutMany(resources); err != nil {
		return cloud.Errorf("failed to store resources: %v", err)
	}
	return result
}

// PushAssessmentTasks выгружает полный список заданий группы
func (s *syncService) PushAssessmentTasks(batchID string) cloud.Result {
	tasks, err := s.taskRepo.ListByBatch(batchID)
	if err != nil {
		return cloud.Errorf("failed to load local tasks: %v", err)
	}
	return s.client.SyncAssessmentTasks(batchID, tasks)
}

// PullAssessmentTasks забирает задания группы с заменой локальных копий
func (s *syncService) PullAssessmentTasks(batchID string) cloud.Result {
	result := s.client.GetAssessmentTasks(batchID)
	if !result.OK() {
		return result
	}

	var tasks []models.AssessmentTask
	if err := result.DecodeData(&tasks); err != nil {
		return cloud.Errorf("failed to decode tasks: %v", err)
	}
	if err := s.taskRepo.PutMany(tasks); err != nil {
		return cloud.Errorf("failed to store tasks: %v", err)
	}
	return result
}

// PushChallengeLibrary выгружает общую библиотеку изображений
func (s *syncService) PushChallengeLibrary() cloud.Result {
	images, err := s.challengeRepo.List()
	if err != nil {
		return cloud.Errorf("failed to load local challenge library: %v", err)
	}
	return s.client.SyncChallengeLibrary(images)
}

// PullChallengeLibrary забирает библиотеку изображений
func (s *syncService) PullChallengeLibrary() cloud.Result {
	result := s.client.GetChallengeLibrary()
	if !result.OK() {
		return result
	}

	var images []models.ChallengeImage
	if err := result.DecodeData(&images); err != nil {
		return cloud.Errorf("failed to decode challenge library: %v", err)
	}
	if err := s.challengeRepo.PutMany(images); err != nil {
		return cloud.Errorf("failed to store challenge library: %v", err)
	}
	return result
}

// PushPeerMarking выгружает полный список задач взаимной проверки группы.
// Облачного действия для одной задачи нет: любое изменение состояния
// уходит заменой всего списка.
func (s *syncService) PushPeerMarking(batchID string) cloud.Result {
	tasks, err := s.markingRepo.ListByBatch(batchID)
	if err != nil {
		return cloud.Errorf("failed to load local marking tasks: %v", err)
	}
	return s.client.SyncPeerMarking(batchID, tasks)
}

// PullPeerMarking забирает список задач взаимной проверки группы
func (s *syncService) PullPeerMarking(batchID string) cloud.Result {
	result := s.client.GetPeerMarking(batchID)
	if !result.OK() {
		return result
	}

	var tasks []models.PeerMarkingTask
	if err := result.DecodeData(&tasks); err != nil {
		return cloud.Errorf("failed to decode marking tasks: %v", err)
	}
	if err := s.markingRepo.PutMany(tasks); err != nil {
		return cloud.Errorf("failed to store marking tasks: %v", err)
	}
	return result
}

// PushStudent выгружает полную запись одного ученика
func (s *syncService) PushStudent(studentID string) cloud.Result {
	student, err := s.studentRepo.GetByID(studentID)
	if err != nil {
		return cloud.Errorf("failed to load local student: %v", err)
	}
	return s.client.SyncStudent(student.Batch, student.ID, student)
}

// PullStudent забирает запись ученика и полностью заменяет локальную.
// Слияния по полям нет: что вернуло облако, то и становится правдой.
func (s *syncService) PullStudent(batchID, studentID string) cloud.Result {
	result := s.client.GetStudentSync(batchID, studentID)
	if !result.OK() {
		return result
	}

	var student models.Student
	if err := result.DecodeData(&student); err != nil {
		return cloud.Errorf("failed to decode student: %v", err)
	}
	// Успешный ответ без записи — "не найдено", локальное состояние не трогаем
	if student.ID == "" {
		return result
	}
	if err := s.studentRepo.Put(&student); err != nil {
		return cloud.Errorf("failed to store student: %v", err)
	}
	return result
}

// PullBatchStudents забирает записи всех учеников группы
func (s *syncService) PullBatchStudents(batchID string) cloud.Result {
	result := s.client.GetBatchStudents(batchID)
	if !result.OK() {
		return result
	}

	var students []models.Student
	if err := result.DecodeData(&students); err != nil {
		return cloud.Errorf("failed to decode students: %v", err)
	}
	if err := s.studentRepo.PutMany(students); err != nil {
		return cloud.Errorf("failed to store students: %v", err)
	}
	return result
}

// PushBatchStudents выгружает учеников группы по одному, строго
// последовательно, и накапливает индивидуальные результаты.
// Атомарности нет: сбой на середине оставляет часть учеников
// синхронизированной, это видно в итоговом списке.
func (s *syncService) PushBatchStudents(batchID string) []StudentSyncResult {
	students, err := s.studentRepo.ListByBatch(batchID)
	if err != nil {
		return []StudentSyncResult{{Result: cloud.Errorf("failed to load local students: %v", err)}}
	}

	results := make([]StudentSyncResult, 0, len(students))
	for i := range students {
		result := s.client.SyncStudent(students[i].Batch, students[i].ID, &students[i])
		if !result.OK() {
			s.logger.Warn("student push failed",
				zap.String("studentId", students[i].ID),
				zap.String("error", result.Error))
		}
		results = append(results, StudentSyncResult{StudentID: students[i].ID, Result: result})
	}
	return results
}

// UploadStoredFile выгружает файл из blob-хранилища и оставляет в
// записи только ссылку: содержимое не хранится в двух местах
func (s *syncService) UploadStoredFile(fileID string) cloud.Result {
	file, err := s.fileRepo.GetByID(fileID)
	if err != nil {
		return cloud.Errorf("failed to load local file: %v", err)
	}

	result := s.client.UploadFile(file.Name, file.MimeType, file.Data)
	if !result.OK() {
		return result
	}

	var uploaded cloud.UploadedFile
	if err := result.DecodeData(&uploaded); err != nil {
		return cloud.Errorf("failed to decode upload response: %v", err)
	}

	file.URL = uploaded.URL
	file.Data = ""
	if err := s.fileRepo.Put(file); err != nil {
		return cloud.Errorf("failed to store file reference: %v", err)
	}
	return result
}

// LogReflection дописывает строку в облачный журнал рефлексий.
// Клиент ничего не читает назад: отправили и забыли.
func (s *syncService) LogReflection(studentID string, row map[string]interface{}) cloud.Result {
	return s.client.LogReflection(studentID, row)
}

// DeleteReflectionRows удаляет строки журнала по ученику и условиям
func (s *syncService) DeleteReflectionRows(studentID string, match map[string]string) cloud.Result {
	return s.client.DeleteRow(studentID, match)
}

// BackupDatabase выгружает снимок всей локальной базы в облако
// и запоминает время последней резервной копии
func (s *syncService) BackupDatabase() cloud.Result {
	doc, err := s.store.Export()
	if err != nil {
		return cloud.Errorf("failed to export local database: %v", err)
	}

	result := s.client.BackupDB(doc)
	if !result.OK() {
		return result
	}

	if err := s.store.PutSetting(database.SettingLastBackup, time.Now().Format(time.RFC3339)); err != nil {
		s.logger.Warn("failed to record backup timestamp", zap.Error(err))
	}
	return result
}

// RestoreBackup забирает последний снимок и восстанавливает из него
// локальную базу: целевые коллекции очищаются и заполняются заново
func (s *syncService) RestoreBackup() cloud.Result {
	result := s.client.GetBackup()
	if !result.OK() {
		return result
	}

	var doc database.ExportDocument
	if err := result.DecodeData(&doc); err != nil {
		return cloud.Errorf("failed to decode backup: %v", err)
	}
	if err := s.store.Import(&doc); err != nil {
		return cloud.Errorf("failed to restore backup: %v", err)
	}
	return result
}
