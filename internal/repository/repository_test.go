package repository

import (
	"path/filepath"
	"testing"

	"studyport/internal/models"
	"studyport/pkg/database"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *database.Database {
	t.Helper()
	store, err := database.Open(filepath.Join(t.TempDir(), "studyport.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStudentPutIsUpsert(t *testing.T) {
	repo := NewStudentRepository(openTestStore(t).DB)

	require.NoError(t, repo.Put(&models.Student{ID: "s1", Username: "arman.k", Batch: "fm5-25"}))

	// Повторная запись с тем же ключом заменяет, а не дублирует
	require.NoError(t, repo.Put(&models.Student{ID: "s1", Username: "arman.k", Batch: "fm6-25"}))

	stored, err := repo.GetByID("s1")
	require.NoError(t, err)
	require.Equal(t, "fm6-25", stored.Batch)

	students, err := repo.List()
	require.NoError(t, err)
	// Два демо-ученика из заполнения базы плюс один наш
	require.Len(t, students, 3)
}

func TestStudentPutAssignsID(t *testing.T) {
	repo := NewStudentRepository(openTestStore(t).DB)

	student := &models.Student{Username: "arman.k", Batch: "fm5-25"}
	require.NoError(t, repo.Put(student))
	require.NotEmpty(t, student.ID)
}

func TestStudentPutManyMixedInsertUpdate(t *testing.T) {
	repo := NewStudentRepository(openTestStore(t).DB)

	require.NoError(t, repo.Put(&models.Student{ID: "s1", Username: "u1", Batch: "old"}))
	require.NoError(t, repo.PutMany([]models.Student{
		{ID: "s1", Username: "u1", Batch: "new"},
		{ID: "s2", Username: "u2", Batch: "new"},
	}))

	updated, err := repo.GetByID("s1")
	require.NoError(t, err)
	require.Equal(t, "new", updated.Batch)

	inserted, err := repo.GetByID("s2")
	require.NoError(t, err)
	require.Equal(t, "u2", inserted.Username)
}

func TestResourceListByBatchTopic(t *testing.T) {
	repo := NewBatchResourceRepository(openTestStore(t).DB)

	require.NoError(t, repo.Put(&models.BatchResource{ID: "r1", BatchID: "b1", TopicID: "topic-1"}))
	require.NoError(t, repo.Put(&models.BatchResource{ID: "r2", BatchID: "b1", TopicID: "topic-2"}))
	require.NoError(t, repo.Put(&models.BatchResource{ID: "r3", BatchID: "b1"}))

	byTopic, err := repo.ListByBatchTopic("b1", "topic-1")
	require.NoError(t, err)
	require.Len(t, byTopic, 1)
	require.Equal(t, "r1", byTopic[0].ID)

	// Пустая тема — запрос всей группы, а не поиск пустого значения
	all, err := repo.ListByBatchTopic("b1", "")
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestResourceSaveList(t *testing.T) {
	repo := NewBatchResourceRepository(openTestStore(t).DB)

	require.NoError(t, repo.SaveList([]models.BatchResource{
		{ID: "r1", BatchID: "b1", Title: "One"},
		{BatchID: "b1", Title: "Two"},
	}))

	list, err := repo.ListByBatch("b1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, r := range list {
		require.NotEmpty(t, r.ID)
	}
}

func TestMarkingListFilters(t *testing.T) {
	repo := NewPeerMarkingRepository(openTestStore(t).DB)

	require.NoError(t, repo.Put(&models.PeerMarkingTask{
		ID: "m1", BatchID: "b1", StudentID: "s1", AssignedMarkerID: "s2", Status: models.MarkingPending,
	}))
	require.NoError(t, repo.Put(&models.PeerMarkingTask{
		ID: "m2", BatchID: "b1", StudentID: "s2", AssignedMarkerID: "s1", Status: models.MarkingPending,
	}))
	require.NoError(t, repo.Put(&models.PeerMarkingTask{
		ID: "m3", BatchID: "b2", StudentID: "s3", AssignedMarkerID: "s4", Status: models.MarkingPending,
	}))

	byBatch, err := repo.ListByBatch("b1")
	require.NoError(t, err)
	require.Len(t, byBatch, 2)

	byMarker, err := repo.ListByMarker("s2")
	require.NoError(t, err)
	require.Len(t, byMarker, 1)
	require.Equal(t, "m1", byMarker[0].ID)

	byStudent, err := repo.ListByStudent("s2")
	require.NoError(t, err)
	require.Len(t, byStudent, 1)
	require.Equal(t, "m2", byStudent[0].ID)
}

func TestTaskListByBatchCategory(t *testing.T) {
	repo := NewAssessmentTaskRepository(openTestStore(t).DB)

	require.NoError(t, repo.Put(&models.AssessmentTask{ID: "t1", BatchID: "b1", Category: "topic"}))
	require.NoError(t, repo.Put(&models.AssessmentTask{ID: "t2", BatchID: "b1", Category: "term"}))

	tasks, err := repo.ListByBatchCategory("b1", "topic")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "t1", tasks[0].ID)
}
