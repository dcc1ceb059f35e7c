package models

import "time"

// MarkingStatus определяет состояние задачи взаимной проверки
type MarkingStatus string

const (
	MarkingPending    MarkingStatus = "Pending"
	MarkingInProgress MarkingStatus = "Marking"
	MarkingCompleted  MarkingStatus = "Completed"
)

// PeerMarkingTask представляет задачу взаимной проверки: один ученик
// сдает работу, другой ученик той же группы назначается проверяющим.
type PeerMarkingTask struct {
	ID               string        `json:"id" gorm:"primaryKey"`
	BatchID          string        `json:"batchId" gorm:"index"`
	StudentID        string        `json:"studentId" gorm:"index"`
	AssignedMarkerID string        `json:"assignedMarkerId" gorm:"index"`
	ScriptURL        string        `json:"scriptUrl"`
	SchemeURL        string        `json:"schemeUrl"`
	Status           MarkingStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName задает имя таблицы взаимной проверки
func (PeerMarkingTask) TableName() string { return "peer_marking" }

// NextStatus возвращает следующее состояние в линейной цепочке
// Pending -> Marking -> Completed. Из Completed переходов нет.
func (t *PeerMarkingTask) NextStatus() (MarkingStatus, bool) {
	switch t.Status {
	case MarkingPending:
		return MarkingInProgress, true
	case MarkingInProgress:
		return MarkingCompleted, true
	default:
		return t.Status, false
	}
}
