package database

import (
	"path/filepath"
	"testing"

	"studyport/internal/models"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) (*Database, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "studyport.db")
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, path
}

func TestOpenIsIdempotent(t *testing.T) {
	db, path := openTestDB(t)

	var before int64
	require.NoError(t, db.DB.Model(&models.Student{}).Count(&before).Error)
	require.NoError(t, db.Close())

	// Повторное открытие не должно дублировать демо-учеников
	db2, err := Open(path)
	require.NoError(t, err)
	defer db2.Close()

	var after int64
	require.NoError(t, db2.DB.Model(&models.Student{}).Count(&after).Error)
	require.Equal(t, before, after)

	version, err := db2.GetSetting(SettingSchemaVersion)
	require.NoError(t, err)
	require.Equal(t, "3", version)
}

func TestSeedDoesNotOverwriteSettings(t *testing.T) {
	db, path := openTestDB(t)

	require.NoError(t, db.PutSetting(SettingAdminPassword, "changed"))
	require.NoError(t, db.PutSetting(SettingCloudEndpoint, "http://example.com"))
	require.NoError(t, db.Close())

	db2, err := Open(path)
	require.NoError(t, err)
	defer db2.Close()

	password, err := db2.GetSetting(SettingAdminPassword)
	require.NoError(t, err)
	require.Equal(t, "changed", password)

	endpoint, err := db2.GetSetting(SettingCloudEndpoint)
	require.NoError(t, err)
	require.Equal(t, "http://example.com", endpoint)
}

func TestGetSettingNotFound(t *testing.T) {
	db, _ := openTestDB(t)

	_, err := db.GetSetting("does-not-exist")
	require.ErrorIs(t, err, ErrSettingNotFound)
}

func TestSeedStudentsHaveTopicTemplates(t *testing.T) {
	db, _ := openTestDB(t)

	var student models.Student
	require.NoError(t, db.DB.First(&student, "id = ?", "demo-igcse").Error)
	require.Equal(t, models.CurriculumIGCSE, student.Curriculum)
	require.NotEmpty(t, student.Topics)
	require.Equal(t, "not_started", student.Topics[0].Status)
}

func TestClearAllWipesEveryCollection(t *testing.T) {
	db, _ := openTestDB(t)

	require.NoError(t, db.DB.Create(&models.BatchResource{ID: "r1", BatchID: "b1"}).Error)
	require.NoError(t, db.ClearAll())

	var students, resources, settings int64
	require.NoError(t, db.DB.Model(&models.Student{}).Count(&students).Error)
	require.NoError(t, db.DB.Model(&models.BatchResource{}).Count(&resources).Error)
	require.NoError(t, db.DB.Model(&models.Setting{}).Count(&settings).Error)
	require.Zero(t, students)
	require.Zero(t, resources)
	require.Zero(t, settings)
}

func TestExportImportRoundTrip(t *testing.T) {
	db, _ := openTestDB(t)

	require.NoError(t, db.DB.Create(&models.BatchResource{
		ID: "r1", Title: "Worksheet", BatchID: "b1", Category: models.ResourceStudyMaterial,
	}).Error)
	require.NoError(t, db.DB.Create(&models.PeerMarkingTask{
		ID: "m1", BatchID: "b1", StudentID: "s1", AssignedMarkerID: "s2", Status: models.MarkingPending,
	}).Error)

	doc, err := db.Export()
	require.NoError(t, err)
	require.Equal(t, SchemaVersion, doc.Version)
	require.NotEmpty(t, doc.Date)

	// Портим состояние и восстанавливаем из снимка
	require.NoError(t, db.DB.Create(&models.BatchResource{ID: "r2", BatchID: "b2"}).Error)

	require.NoError(t, db.Import(doc))

	var resources []models.BatchResource
	require.NoError(t, db.DB.Find(&resources).Error)
	require.Len(t, resources, 1)
	require.Equal(t, "r1", resources[0].ID)

	var tasks []models.PeerMarkingTask
	require.NoError(t, db.DB.Find(&tasks).Error)
	require.Len(t, tasks, 1)
	require.Equal(t, models.MarkingPending, tasks[0].Status)

	var students []models.Student
	require.NoError(t, db.DB.Find(&students).Error)
	require.Len(t, students, len(doc.Students))
}

func TestImportMissingFieldLeavesCollectionEmpty(t *testing.T) {
	db, _ := openTestDB(t)

	require.NoError(t, db.DB.Create(&models.BatchResource{ID: "r1", BatchID: "b1"}).Error)

	// Снимок без ресурсов: после импорта коллекция должна опустеть
	doc := &ExportDocument{Version: SchemaVersion}
	require.NoError(t, db.Import(doc))

	var count int64
	require.NoError(t, db.DB.Model(&models.BatchResource{}).Count(&count).Error)
	require.Zero(t, count)
}
