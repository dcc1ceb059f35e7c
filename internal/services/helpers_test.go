package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"studyport/internal/repository"
	"studyport/pkg/cloud"
	"studyport/pkg/database"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// cloudEnvelope — конверт запроса, как его видит облачный сервис
type cloudEnvelope struct {
	Action    string          `json:"action"`
	Secret    string          `json:"secret"`
	BatchID   string          `json:"batchId"`
	StudentID string          `json:"studentId"`
	Filename  string          `json:"filename"`
	Data      json.RawMessage `json:"data"`
}

// fakeCloud — облачный сервис в памяти для тестов: хранит документы
// по областям и заменяет их целиком, как настоящий.
type fakeCloud struct {
	mu       sync.Mutex
	server   *httptest.Server
	lists    map[string]json.RawMessage // "действие/группа" -> документ
	students map[string]json.RawMessage // "группа/ученик" -> запись
	backup   json.RawMessage

	failAll      bool            // каждый вызов отвечает ошибкой
	failStudents map[string]bool // student_sync падает для этих учеников
}

func newFakeCloud(t *testing.T) *fakeCloud {
	t.Helper()
	f := &fakeCloud{
		lists:        make(map[string]json.RawMessage),
		students:     make(map[string]json.RawMessage),
		failStudents: make(map[string]bool),
	}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeCloud) handle(w http.ResponseWriter, r *http.Request) {
	var env cloudEnvelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		f.respond(w, `"error"`, "bad request", nil)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failAll {
		f.respond(w, `"error"`, "service unavailable", nil)
		return
	}

	switch env.Action {
	case "ping":
		f.respond(w, `"success"`, "", nil)

	case "sync_batch_resources", "sync_assessment_tasks", "sync_peer_marking":
		f.lists[env.Action+"/"+env.BatchID] = env.Data
		f.respond(w, `"success"`, "", nil)
	case "sync_challenge_library":
		f.lists["sync_challenge_library"] = env.Data
		f.respond(w, `"success"`, "", nil)

	case "get_batch_resources":
		f.respond(w, `"success"`, "", f.lists["sync_batch_resources/"+env.BatchID])
	case "get_assessment_tasks":
		f.respond(w, `"success"`, "", f.lists["sync_assessment_tasks/"+env.BatchID])
	case "get_peer_marking":
		f.respond(w, `"success"`, "", f.lists["sync_peer_marking/"+env.BatchID])
	case "get_challenge_library":
		f.respond(w, `"success"`, "", f.lists["sync_challenge_library"])

	case "student_sync":
		if f.failStudents[env.StudentID] {
			f.respond(w, `"error"`, "quota exceeded", nil)
			return
		}
		f.students[env.BatchID+"/"+env.StudentID] = env.Data
		f.respond(w, `"success"`, "", nil)
	case "get_student_sync":
		f.respond(w, `"success"`, "", f.students[env.BatchID+"/"+env.StudentID])
	case "get_batch_students":
		var records []string
		for key, record := range f.students {
			if strings.HasPrefix(key, env.BatchID+"/") {
				records = append(records, string(record))
			}
		}
		f.respond(w, `"success"`, "", json.RawMessage("["+strings.Join(records, ",")+"]"))

	case "upload_file":
		f.respond(w, `"success"`, "", json.RawMessage(
			`{"url":"https://files.example/`+env.Filename+`","id":"remote-file-1"}`))

	case "log_reflection":
		f.respond(w, `"success"`, "", nil)
	case "delete_row":
		f.respond(w, `"success"`, "", json.RawMessage(`1`))

	case "backup_db":
		f.backup = env.Data
		f.respond(w, `"success"`, "", nil)
	case "get_backup":
		f.respond(w, `"success"`, "", f.backup)

	default:
		f.respond(w, `"error"`, "unknown action: "+env.Action, nil)
	}
}

func (f *fakeCloud) respond(w http.ResponseWriter, result, errMsg string, data json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	payload := map[string]interface{}{"result": json.RawMessage(result)}
	if errMsg != "" {
		payload["error"] = errMsg
	}
	if data != nil {
		payload["data"] = data
	}
	json.NewEncoder(w).Encode(payload)
}

// list возвращает документ области как нормализованный JSON
func (f *fakeCloud) list(t *testing.T, key string) []map[string]interface{} {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.lists[key]
	if !ok {
		return nil
	}
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// testEnv — общая обвязка сервисных тестов: локальное хранилище
// во временном каталоге плюс облачный сервис в памяти.
type testEnv struct {
	store *database.Database
	cloud *fakeCloud

	studentRepo   repository.StudentRepository
	resourceRepo  repository.BatchResourceRepository
	taskRepo      repository.AssessmentTaskRepository
	challengeRepo repository.ChallengeImageRepository
	markingRepo   repository.PeerMarkingRepository
	fileRepo      repository.FileRepository

	sync SyncService
}

func newTestClient(store *database.Database) *cloud.Client {
	return cloud.NewClient(store, "test_secret")
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := database.Open(filepath.Join(t.TempDir(), "studyport.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	fake := newFakeCloud(t)
	require.NoError(t, store.PutSetting(database.SettingCloudEndpoint, fake.server.URL))

	env := &testEnv{
		store:         store,
		cloud:         fake,
		studentRepo:   repository.NewStudentRepository(store.DB),
		resourceRepo:  repository.NewBatchResourceRepository(store.DB),
		taskRepo:      repository.NewAssessmentTaskRepository(store.DB),
		challengeRepo: repository.NewChallengeImageRepository(store.DB),
		markingRepo:   repository.NewPeerMarkingRepository(store.DB),
		fileRepo:      repository.NewFileRepository(store.DB),
	}
	env.sync = NewSyncService(
		newTestClient(store), store,
		env.studentRepo, env.resourceRepo, env.taskRepo,
		env.challengeRepo, env.markingRepo, env.fileRepo,
		zap.NewNop(),
	)
	return env
}
