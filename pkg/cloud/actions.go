package cloud

// Action — имя действия облачного сервиса. Словарь закрыт:
// неизвестное действие отклоняется до сетевого вызова.
type Action string

const (
	ActionPing Action = "ping"

	ActionUploadFile Action = "upload_file"

	ActionSyncBatchResources Action = "sync_batch_resources"
	ActionGetBatchResources  Action = "get_batch_resources"

	ActionSyncAssessmentTasks Action = "sync_assessment_tasks"
	ActionGetAssessmentTasks  Action = "get_assessment_tasks"

	ActionSyncChallengeLibrary Action = "sync_challenge_library"
	ActionGetChallengeLibrary  Action = "get_challenge_library"

	ActionSyncPeerMarking Action = "sync_peer_marking"
	ActionGetPeerMarking  Action = "get_peer_marking"

	ActionStudentSync      Action = "student_sync"
	ActionGetStudentSync   Action = "get_student_sync"
	ActionGetBatchStudents Action = "get_batch_students"

	ActionLogReflection Action = "log_reflection"
	ActionDeleteRow     Action = "delete_row"

	ActionBackupDB  Action = "backup_db"
	ActionGetBackup Action = "get_backup"
)

var validActions = map[Action]struct{}{
	ActionPing:                 {},
	ActionUploadFile:           {},
	ActionSyncBatchResources:   {},
	ActionGetBatchResources:    {},
	ActionSyncAssessmentTasks:  {},
	ActionGetAssessmentTasks:   {},
	ActionSyncChallengeLibrary: {},
	ActionGetChallengeLibrary:  {},
	ActionSyncPeerMarking:      {},
	ActionGetPeerMarking:       {},
	ActionStudentSync:          {},
	ActionGetStudentSync:       {},
	ActionGetBatchStudents:     {},
	ActionLogReflection:        {},
	ActionDeleteRow:            {},
	ActionBackupDB:             {},
	ActionGetBackup:            {},
}

// Valid проверяет, входит ли действие в словарь
func (a Action) Valid() bool {
	_, ok := validActions[a]
	return ok
}

// UploadedFile — ответ действия upload_file
type UploadedFile struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}

// Ping проверяет доступность облачного сервиса
func (c *Client) Ping() Result {
	return c.Send(Request{Action: ActionPing})
}

// UploadFile выгружает файл (base64) и возвращает ссылку на него
func (c *Client) UploadFile(filename, mimeType, dataBase64 string) Result {
	return c.Send(Request{
		Action:   ActionUploadFile,
		Filename: filename,
		MimeType: mimeType,
		Data:     dataBase64,
	})
}

// SyncBatchResources полностью заменяет список ресурсов группы в облаке
func (c *Client) SyncBatchResources(batchID string, resources interface{}) Result {
	return c.Send(Request{Action: ActionSyncBatchResources, BatchID: batchID, Data: resources})
}

// GetBatchResources запрашивает список ресурсов группы
func (c *Client) GetBatchResources(batchID string) Result {
	return c.Send(Request{Action: ActionGetBatchResources, BatchID: batchID})
}

// SyncAssessmentTasks полностью заменяет список заданий группы в облаке
func (c *Client) SyncAssessmentTasks(batchID string, tasks interface{}) Result {
	return c.Send(Request{Action: ActionSyncAssessmentTasks, BatchID: batchID, Data: tasks})
}

// GetAssessmentTasks запрашивает список заданий группы
func (c *Client) GetAssessmentTasks(batchID string) Result {
	return c.Send(Request{Action: ActionGetAssessmentTasks, BatchID: batchID})
}

// SyncChallengeLibrary полностью заменяет общую библиотеку изображений
func (c *Client) SyncChallengeLibrary(images interface{}) Result {
	return c.Send(Request{Action: ActionSyncChallengeLibrary, Data: images})
}

// GetChallengeLibrary запрашивает общую библиотеку изображений
func (c *Client) GetChallengeLibrary() Result {
	return c.Send(Request{Action: ActionGetChallengeLibrary})
}

// SyncPeerMarking полностью заменяет список задач взаимной проверки группы
func (c *Client) SyncPeerMarking(batchID string, tasks interface{}) Result {
	return c.Send(Request{Action: ActionSyncPeerMarking, BatchID: batchID, Data: tasks})
}

// GetPeerMarking запрашивает список задач взаимной проверки группы
func (c *Client) GetPeerMarking(batchID string) Result {
	return c.Send(Request{Action: ActionGetPeerMarking, BatchID: batchID})
}

// SyncStudent выгружает полную запись ученика, затирая облачную копию
func (c *Client) SyncStudent(batchID, studentID string, student interface{}) Result {
	return c.Send(Request{Action: ActionStudentSync, BatchID: batchID, StudentID: studentID, Data: student})
}

// GetStudentSync запрашивает запись ученика. Облако может поднять
// данные из внешней таблицы-первоисточника; клиент принимает ответ
// как авторитетный без дополнительных проверок.
func (c *Client) GetStudentSync(batchID, studentID string) Result {
	return c.Send(Request{Action: ActionGetStudentSync, BatchID: batchID, StudentID: studentID})
}

// GetBatchStudents запрашивает записи всех учеников группы
func (c *Client) GetBatchStudents(batchID string) Result {
	return c.Send(Request{Action: ActionGetBatchStudents, BatchID: batchID})
}

// LogReflection дописывает строку в журнал рефлексий (без чтения назад)
func (c *Client) LogReflection(studentID string, row interface{}) Result {
	return c.Send(Request{Action: ActionLogReflection, StudentID: studentID, Data: row})
}

// DeleteRow удаляет строки журнала, совпавшие по ученику и полям match;
// в data возвращается число удаленных строк
func (c *Client) DeleteRow(studentID string, match map[string]string) Result {
	return c.Send(Request{Action: ActionDeleteRow, StudentID: studentID, Data: match})
}

// BackupDB выгружает снимок всей локальной базы
func (c *Client) BackupDB(snapshot interface{}) Result {
	return c.Send(Request{Action: ActionBackupDB, Data: snapshot})
}

// GetBackup запрашивает последний снимок локальной базы
func (c *Client) GetBackup() Result {
	return c.Send(Request{Action: ActionGetBackup})
}
