package handlers

import (
	"net/http"

	"studyport/internal/models"
	"studyport/internal/services"

	"github.com/gin-gonic/gin"
)

// StudentHandler представляет обработчик записей учеников
type StudentHandler struct {
	studentService   services.StudentService
	recoveryService  services.RecoveryService
	quotaService     services.QuotaService
	aiLimit          int
	empowermentLimit int
}

// NewStudentHandler создает новый обработчик учеников
func NewStudentHandler(
	studentService services.StudentService,
	recoveryService services.RecoveryService,
	quotaService services.QuotaService,
	aiLimit, empowermentLimit int,
) *StudentHandler {
	return &StudentHandler{
		studentService:   studentService,
		recoveryService:  recoveryService,
		quotaService:     quotaService,
		aiLimit:          aiLimit,
		empowermentLimit: empowermentLimit,
	}
}

// CreateStudentRequest представляет запрос создания ученика
type CreateStudentRequest struct {
	Username   string            `json:"username" binding:"required"`
	Password   string            `json:"password" binding:"required"`
	Curriculum models.Curriculum `json:"curriculum" binding:"required"`
	Batch      string            `json:"batch" binding:"required"`
}

// CreateStudent создает ученика (операция администратора)
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	student, err := h.studentService.CreateStudent(req.Username, req.Password, req.Curriculum, req.Batch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"student": student})
}

// GetStudent возвращает запись ученика. Перед чтением запускается
// самовосстановление: пустая локальная запись авторизованного ученика
// автоматически поднимается из облака.
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id := c.Param("id")
	session := currentSession(c)

	restored := h.recoveryService.EnsureStudentData(session, id)

	student, err := h.studentService.GetStudent(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"student": student, "restored": restored})
}

// SaveStudent сохраняет запись ученика целиком
func (h *StudentHandler) SaveStudent(c *gin.Context) {
	var student models.Student
	if err := c.ShouldBindJSON(&student); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if student.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "student id is required"})
		return
	}

	if err := h.studentService.SaveStudent(&student); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"student": student})
}

// DeleteStudent удаляет ученика (операция администратора)
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	if err := h.studentService.DeleteStudent(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListStudents возвращает учеников группы или всех
func (h *StudentHandler) ListStudents(c *gin.Context) {
	batchID := c.Query("batchId")

	var (
		students []models.Student
		err      error
	)
	if batchID != "" {
		students, err = h.studentService.ListByBatch(batchID)
	} else {
		students, err = h.studentService.List()
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"students": students})
}

// CheckQuota проверяет и увеличивает дневной счетчик функции.
// Исчерпанная квота — не ошибка: ответ 200 с allowed=false.
func (h *StudentHandler) CheckQuota(c *gin.Context) {
	session := currentSession(c)

	kind := services.QuotaKind(c.Param("kind"))
	limit := h.aiLimit
	if kind == services.QuotaEmpowerment {
		limit = h.empowermentLimit
	}

	result, err := h.quotaService.CheckAndIncrement(kind, session.StudentID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
