package models

import "time"

// ResourceCategory определяет тип учебного ресурса
type ResourceCategory string

const (
	ResourceStudyMaterial ResourceCategory = "study_material"
	ResourceTermSyllabus  ResourceCategory = "term_syllabus"
	ResourceAssessment    ResourceCategory = "assessment"
)

// BatchResource представляет ссылку на внешний файл, привязанный к группе.
// Пустой TopicID означает ресурс уровня всей группы.
type BatchResource struct {
	ID       string           `json:"id" gorm:"primaryKey"`
	Title    string           `json:"title"`
	URL      string           `json:"url"`
	Category ResourceCategory `json:"category"`
	BatchID  string           `json:"batchId" gorm:"index"`
	TopicID  string           `json:"topicId" gorm:"index"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName задает имя таблицы ресурсов
func (BatchResource) TableName() string { return "batch_resources" }

// AssessmentTask представляет задание, созданное преподавателем.
// Схема оценивания хранится как base64 и никогда не показывается ученикам.
type AssessmentTask struct {
	ID               string `json:"id" gorm:"primaryKey"`
	BatchID          string `json:"batchId" gorm:"index"`
	Category         string `json:"category"`
	Title            string `json:"title"`
	QuestionPaperURL string `json:"questionPaperUrl"`
	MarkingScheme    string `json:"markingScheme"`
	MarkingSchemeMime string `json:"markingSchemeMime"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName задает имя таблицы заданий
func (AssessmentTask) TableName() string { return "assessment_tasks" }

// SyllabusPortion представляет раздел программы, вынесенный на экзамен
type SyllabusPortion struct {
	ID          string `json:"id" gorm:"primaryKey"`
	BatchID     string `json:"batchId" gorm:"index"`
	TopicID     string `json:"topicId"`
	Title       string `json:"title"`
	Description string `json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName задает имя таблицы разделов программы
func (SyllabusPortion) TableName() string { return "syllabus_portions" }

// ChallengeImage представляет изображение для генерации вопросов по диаграммам.
// Библиотека общая для всех групп.
type ChallengeImage struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Name      string `json:"name"`
	Data      string `json:"data"`      // base64
	Thumbnail string `json:"thumbnail"` // base64, уменьшенная копия

	CreatedAt time.Time `json:"createdAt"`
}

// TableName задает имя таблицы изображений
func (ChallengeImage) TableName() string { return "challenge_images" }

// StoredFile представляет файл во встроенном blob-хранилище
type StoredFile struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
	URL      string `json:"url"`  // ссылка после выгрузки в облако

	CreatedAt time.Time `json:"createdAt"`
}

// TableName задает имя таблицы файлов
func (StoredFile) TableName() string { return "files" }

// Setting представляет пару ключ-значение настроек приложения
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey"`
	Value string `json:"value"`
}

// TableName задает имя таблицы настроек
func (Setting) TableName() string { return "settings" }
