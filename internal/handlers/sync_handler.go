package handlers

import (
	"net/http"

	"studyport/internal/services"
	"studyport/pkg/database"

	"github.com/gin-gonic/gin"
)

// SyncHandler представляет обработчик операций синхронизации.
// Результаты отдаются как есть: неудачная синхронизация — обычный
// ответ с result="error", не HTTP-ошибка.
type SyncHandler struct {
	syncService services.SyncService
	store       *database.Database
}

// NewSyncHandler создает новый обработчик синхронизации
func NewSyncHandler(syncService services.SyncService, store *database.Database) *SyncHandler {
	return &SyncHandler{syncService: syncService, store: store}
}

// Ping проверяет связь с облаком
func (h *SyncHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.Ping())
}

// PushResources выгружает ресурсы группы
func (h *SyncHandler) PushResources(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.PushBatchResources(c.Query("batchId")))
}

// PullResources забирает ресурсы группы
func (h *SyncHandler) PullResources(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.PullBatchResources(c.Query("batchId")))
}

// PushTasks выгружает задания группы
func (h *SyncHandler) PushTasks(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.PushAssessmentTasks(c.Query("batchId")))
}

// PullTasks забирает задания группы
func (h *SyncHandler) PullTasks(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.PullAssessmentTasks(c.Query("batchId")))
}

// PushChallenges выгружает библиотеку изображений
func (h *SyncHandler) PushChallenges(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.PushChallengeLibrary())
}

// PullChallenges забирает библиотеку изображений
func (h *SyncHandler) PullChallenges(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.PullChallengeLibrary())
}

// PushMarking выгружает задачи взаимной проверки группы
func (h *SyncHandler) PushMarking(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.PushPeerMarking(c.Query("batchId")))
}

// PullMarking забирает задачи взаимной проверки группы
func (h *SyncHandler) PullMarking(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.PullPeerMarking(c.Query("batchId")))
}

// PushStudent выгружает запись одного ученика
func (h *SyncHandler) PushStudent(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.PushStudent(c.Param("id")))
}

// PullStudent забирает запись одного ученика с полной заменой локальной
func (h *SyncHandler) PullStudent(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.PullStudent(c.Query("batchId"), c.Param("id")))
}

// PushBatchStudents выгружает учеников группы по одному и возвращает
// индивидуальные результаты; отката при частичном сбое нет
func (h *SyncHandler) PushBatchStudents(c *gin.Context) {
	results := h.syncService.PushBatchStudents(c.Query("batchId"))
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// PullBatchStudents забирает записи всех учеников группы
func (h *SyncHandler) PullBatchStudents(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.PullBatchStudents(c.Query("batchId")))
}

// UploadFile выгружает файл из blob-хранилища в облако
func (h *SyncHandler) UploadFile(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.UploadStoredFile(c.Param("id")))
}

// LogReflectionRequest представляет строку журнала рефлексий
type LogReflectionRequest struct {
	StudentID string                 `json:"studentId" binding:"required"`
	Row       map[string]interface{} `json:"row" binding:"required"`
}

// LogReflection дописывает строку в облачный журнал
func (h *SyncHandler) LogReflection(c *gin.Context) {
	var req LogReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.syncService.LogReflection(req.StudentID, req.Row))
}

// DeleteReflectionRequest представляет запрос удаления строк журнала
type DeleteReflectionRequest struct {
	StudentID string            `json:"studentId" binding:"required"`
	Match     map[string]string `json:"match" binding:"required"`
}

// DeleteReflection удаляет строки журнала по условиям
func (h *SyncHandler) DeleteReflection(c *gin.Context) {
	var req DeleteReflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.syncService.DeleteReflectionRows(req.StudentID, req.Match))
}

// Backup выгружает снимок локальной базы в облако
func (h *SyncHandler) Backup(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.BackupDatabase())
}

// Restore восстанавливает локальную базу из облачного снимка
func (h *SyncHandler) Restore(c *gin.Context) {
	c.JSON(http.StatusOK, h.syncService.RestoreBackup())
}

// Export отдает снимок локальной базы файлом
func (h *SyncHandler) Export(c *gin.Context) {
	doc, err := h.store.Export()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Import восстанавливает локальную базу из файла снимка:
// целевые коллекции очищаются и заполняются записями документа
func (h *SyncHandler) Import(c *gin.Context) {
	var doc database.ExportDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.Import(&doc); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ResetDatabase полностью очищает локальное хранилище
func (h *SyncHandler) ResetDatabase(c *gin.Context) {
	if err := h.store.ClearAll(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetSetting возвращает настройку по ключу
func (h *SyncHandler) GetSetting(c *gin.Context) {
	value, err := h.store.GetSetting(c.Param("key"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "setting not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": c.Param("key"), "value": value})
}

// PutSettingRequest представляет запрос записи настройки
type PutSettingRequest struct {
	Value string `json:"value"`
}

// PutSetting записывает настройку; смена адреса облака действует
// со следующего запроса синхронизации, без перезапуска
func (h *SyncHandler) PutSetting(c *gin.Context) {
	var req PutSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.store.PutSetting(c.Param("key"), req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
