package database

import (
	"time"

	"studyport/internal/models"
)

// ExportDocument представляет полный снимок локального хранилища
// в формате файла экспорта/резервной копии.
type ExportDocument struct {
	Version          int                      `json:"version"`
	Date             string                   `json:"date"`
	Students         []models.Student         `json:"students"`
	BatchResources   []models.BatchResource   `json:"batch_resources"`
	AssessmentTasks  []models.AssessmentTask  `json:"assessment_tasks"`
	SyllabusPortions []models.SyllabusPortion `json:"syllabus_portions"`
	PeerMarking      []models.PeerMarkingTask `json:"peer_marking"`
}

// Export собирает снимок всех коллекций хранилища
func (d *Database) Export() (*ExportDocument, error) {
	doc := &ExportDocument{
		Version: SchemaVersion,
		Date:    time.Now().Format(time.RFC3339),
	}

	if err := d.DB.Find(&doc.Students).Error; err != nil {
		return nil, err
	}
	if err := d.DB.Find(&doc.BatchResources).Error; err != nil {
		return nil, err
	}
	if err := d.DB.Find(&doc.AssessmentTasks).Error; err != nil {
		return nil, err
	}
	if err := d.DB.Find(&doc.SyllabusPortions).Error; err != nil {
		return nil, err
	}
	if err := d.DB.Find(&doc.PeerMarking).Error; err != nil {
		return nil, err
	}

	return doc, nil
}

// Import восстанавливает хранилище из снимка. Каждая целевая коллекция
// сначала очищается, затем вставляются записи документа: отсутствующее
// в документе поле оставляет коллекцию пустой, прежнее содержимое
// не сохраняется.
func (d *Database) Import(doc *ExportDocument) error {
	type collection struct {
		model   interface{}
		records func() error
	}

	collections := []collection{
		{&models.Student{}, func() error { return createAll(d, doc.Students) }},
		{&models.BatchResource{}, func() error { return createAll(d, doc.BatchResources) }},
		{&models.AssessmentTask{}, func() error { return createAll(d, doc.AssessmentTasks) }},
		{&models.SyllabusPortion{}, func() error { return createAll(d, doc.SyllabusPortions) }},
		{&models.PeerMarkingTask{}, func() error { return createAll(d, doc.PeerMarking) }},
	}

	for _, c := range collections {
		if err := d.DB.Where("1 = 1").Delete(c.model).Error; err != nil {
			return err
		}
		if err := c.records(); err != nil {
			return err
		}
	}

	return nil
}

// createAll вставляет записи по одной; пустой список — допустимый снимок
func createAll[T any](d *Database, records []T) error {
	for i := range records {
		if err := d.DB.Create(&records[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
