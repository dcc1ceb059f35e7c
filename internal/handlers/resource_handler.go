package handlers

import (
	"net/http"

	"studyport/internal/models"
	"studyport/internal/repository"
	"studyport/internal/services"

	"github.com/gin-gonic/gin"
)

// ResourceHandler представляет обработчик ресурсов, заданий,
// разделов программы и библиотеки изображений
type ResourceHandler struct {
	resourceRepo     repository.BatchResourceRepository
	taskRepo         repository.AssessmentTaskRepository
	syllabusRepo     repository.SyllabusPortionRepository
	challengeService services.ChallengeService
	markingService   services.PeerMarkingService
}

// NewResourceHandler создает новый обработчик ресурсов
func NewResourceHandler(
	resourceRepo repository.BatchResourceRepository,
	taskRepo repository.AssessmentTaskRepository,
	syllabusRepo repository.SyllabusPortionRepository,
	challengeService services.ChallengeService,
	markingService services.PeerMarkingService,
) *ResourceHandler {
	return &ResourceHandler{
		resourceRepo:     resourceRepo,
		taskRepo:         taskRepo,
		syllabusRepo:     syllabusRepo,
		challengeService: challengeService,
		markingService:   markingService,
	}
}

// ListResources возвращает ресурсы группы; пустой topicId — вся группа
func (h *ResourceHandler) ListResources(c *gin.Context) {
	resources, err := h.resourceRepo.ListByBatchTopic(c.Query("batchId"), c.Query("topicId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"resources": resources})
}

// SaveResource сохраняет ресурс
func (h *ResourceHandler) SaveResource(c *gin.Context) {
	var resource models.BatchResource
	if err := c.ShouldBindJSON(&resource); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.resourceRepo.Put(&resource); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"resource": resource})
}

// DeleteResource удаляет ресурс
func (h *ResourceHandler) DeleteResource(c *gin.Context) {
	if err := h.resourceRepo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListTasks возвращает задания группы, с фильтром по категории
func (h *ResourceHandler) ListTasks(c *gin.Context) {
	batchID := c.Query("batchId")
	category := c.Query("category")

	var (
		tasks []models.AssessmentTask
		err   error
	)
	if category != "" {
		tasks, err = h.taskRepo.ListByBatchCategory(batchID, category)
	} else {
		tasks, err = h.taskRepo.ListByBatch(batchID)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// SaveTask сохраняет задание (схема оценивания не отдается ученикам,
// за это отвечает вызывающая сторона интерфейса)
func (h *ResourceHandler) SaveTask(c *gin.Context) {
	var task models.AssessmentTask
	if err := c.ShouldBindJSON(&task); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.taskRepo.Put(&task); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

// DeleteTask удаляет задание
func (h *ResourceHandler) DeleteTask(c *gin.Context) {
	if err := h.taskRepo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListSyllabus возвращает разделы программы группы
func (h *ResourceHandler) ListSyllabus(c *gin.Context) {
	portions, err := h.syllabusRepo.ListByBatch(c.Query("batchId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"portions": portions})
}

// SaveSyllabus сохраняет раздел программы
func (h *ResourceHandler) SaveSyllabus(c *gin.Context) {
	var portion models.SyllabusPortion
	if err := c.ShouldBindJSON(&portion); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.syllabusRepo.Put(&portion); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"portion": portion})
}

// DeleteSyllabus удаляет раздел программы
func (h *ResourceHandler) DeleteSyllabus(c *gin.Context) {
	if err := h.syllabusRepo.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// AddChallengeImageRequest представляет запрос добавления изображения
type AddChallengeImageRequest struct {
	Name string `json:"name" binding:"required"`
	Data string `json:"data" binding:"required"` // base64
}

// AddChallengeImage добавляет изображение в библиотеку
func (h *ResourceHandler) AddChallengeImage(c *gin.Context) {
	var req AddChallengeImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	image, err := h.challengeService.AddImage(req.Name, req.Data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image": image})
}

// ListChallengeImages возвращает библиотеку изображений
func (h *ResourceHandler) ListChallengeImages(c *gin.Context) {
	images, err := h.challengeService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"images": images})
}

// DeleteChallengeImage удаляет изображение из библиотеки
func (h *ResourceHandler) DeleteChallengeImage(c *gin.Context) {
	if err := h.challengeService.Delete(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateMarkingTaskRequest представляет запрос создания задачи проверки
type CreateMarkingTaskRequest struct {
	BatchID   string `json:"batchId" binding:"required"`
	StudentID string `json:"studentId" binding:"required"`
	MarkerID  string `json:"markerId" binding:"required"`
	ScriptURL string `json:"scriptUrl"`
	SchemeURL string `json:"schemeUrl"`
}

// CreateMarkingTask создает задачу взаимной проверки
func (h *ResourceHandler) CreateMarkingTask(c *gin.Context) {
	var req CreateMarkingTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.markingService.CreateTask(req.BatchID, req.StudentID, req.MarkerID, req.ScriptURL, req.SchemeURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": task})
}

// AdvanceMarkingTask переводит задачу проверки в следующее состояние
func (h *ResourceHandler) AdvanceMarkingTask(c *gin.Context) {
	session := currentSession(c)

	task, err := h.markingService.AdvanceStatus(session, c.Param("id"))
	if err != nil {
		switch err {
		case services.ErrNotAssignedMarker:
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case services.ErrInvalidTransition:
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": task})
}

// ListMarkingTasks возвращает задачи проверки группы
func (h *ResourceHandler) ListMarkingTasks(c *gin.Context) {
	tasks, err := h.markingService.ListByBatch(c.Query("batchId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}
