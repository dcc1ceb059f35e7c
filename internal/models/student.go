package models

import (
	"time"

	"gorm.io/datatypes"
)

// Curriculum определяет учебную программу ученика
type Curriculum string

const (
	CurriculumIGCSE Curriculum = "IGCSE"
	CurriculumMYP   Curriculum = "MYP"
)

// UsageCounter представляет дневной счетчик использования функции
type UsageCounter struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Assessment представляет результат контрольной работы
type Assessment struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Topic      string  `json:"topic"`
	Percentage float64 `json:"percentage"`
	Date       string  `json:"date"`
}

// TermAssessment представляет результат итоговой работы за семестр
type TermAssessment struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Term       string  `json:"term"`
	Percentage float64 `json:"percentage"`
	Date       string  `json:"date"`
}

// TopicProgress представляет прогресс ученика по теме программы
type TopicProgress struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"` // "not_started", "in_progress", "completed"
}

// AttendanceRecord представляет отметку посещаемости
type AttendanceRecord struct {
	Date   string `json:"date"`
	Status string `json:"status"` // "present", "absent", "late"
}

// TuitionTask представляет задание, выданное на занятии
type TuitionTask struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Done  bool   `json:"done"`
}

// TuitionReflection представляет рефлексию ученика после занятия
type TuitionReflection struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Text string `json:"text"`
}

// TuitionWork представляет ссылку на выполненную работу
type TuitionWork struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// ChatMessage представляет сообщение в истории AI-репетитора
type ChatMessage struct {
	Role    string `json:"role"` // "user", "assistant"
	Content string `json:"content"`
	Time    string `json:"time"`
}

// ATLSkill представляет оценку учебного навыка (Approaches to Learning)
type ATLSkill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// IBAttribute представляет качество из профиля IB Learner
type IBAttribute struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

// VocabEntry представляет слово из личного словаря ученика
type VocabEntry struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
	Date    string `json:"date"`
}

// BehaviorRecord представляет запись о поведении
type BehaviorRecord struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Note     string `json:"note"`
}

// PredictedGradeLog представляет запись прогнозируемой оценки
type PredictedGradeLog struct {
	Date    string `json:"date"`
	Subject string `json:"subject"`
	Grade   string `json:"grade"`
}

// SchoolReport представляет ссылку на школьный отчет
type SchoolReport struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Date  string `json:"date"`
}

// ChallengeRecord представляет результат игрового задания
type ChallengeRecord struct {
	ID    string `json:"id"`
	Date  string `json:"date"`
	Topic string `json:"topic"`
	Score int    `json:"score"`
}

// Student представляет ученика — центральную сущность системы.
// Все вложенные коллекции хранятся как JSON-колонки: запись всегда
// заменяется целиком, частичных обновлений на уровне хранилища нет.
type Student struct {
	ID       string `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex"`
	// Пароль хранится открытым текстом — известная слабость, сохранена намеренно
	Password   string     `json:"password"`
	Curriculum Curriculum `json:"curriculum"`
	Batch      string     `json:"batch" gorm:"index"`

	Assessments        datatypes.JSONSlice[Assessment]        `json:"assessments"`
	TermAssessments    datatypes.JSONSlice[TermAssessment]    `json:"termAssessments"`
	Topics             datatypes.JSONSlice[TopicProgress]     `json:"topics"`
	Attendance         datatypes.JSONSlice[AttendanceRecord]  `json:"attendance"`
	TuitionTasks       datatypes.JSONSlice[TuitionTask]       `json:"tuitionTasks"`
	TuitionReflections datatypes.JSONSlice[TuitionReflection] `json:"tuitionReflections"`
	TuitionWork        datatypes.JSONSlice[TuitionWork]       `json:"tuitionWork"`
	ChatHistory        datatypes.JSONSlice[ChatMessage]       `json:"chatHistory"`
	ATLSkills          datatypes.JSONSlice[ATLSkill]          `json:"atlSkills"`
	IBAttributes       datatypes.JSONSlice[IBAttribute]       `json:"ibAttributes"`
	VocabList          datatypes.JSONSlice[VocabEntry]        `json:"vocabList"`
	BehaviorRecords    datatypes.JSONSlice[BehaviorRecord]    `json:"behaviorRecords"`
	PredictedGradeLogs datatypes.JSONSlice[PredictedGradeLog] `json:"predictedGradeLogs"`
	SchoolReports      datatypes.JSONSlice[SchoolReport]      `json:"schoolReports"`
	ChallengeHistory   datatypes.JSONSlice[ChallengeRecord]   `json:"challengeHistory"`

	ChallengePoints  int                              `json:"challengePoints"`
	AIUsage          datatypes.JSONType[UsageCounter] `json:"aiUsage"`
	EmpowermentUsage datatypes.JSONType[UsageCounter] `json:"empowermentUsage"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName задает имя таблицы учеников
func (Student) TableName() string { return "students" }

// HasProgress сообщает, есть ли у ученика хоть какие-то результаты.
// Пустые assessments и termAssessments — признак потерянного локального
// состояния, по которому запускается восстановление из облака.
func (s *Student) HasProgress() bool {
	return len(s.Assessments) > 0 || len(s.TermAssessments) > 0
}
