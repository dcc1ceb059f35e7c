package models

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestMarkingStatusChain(t *testing.T) {
	task := &PeerMarkingTask{Status: MarkingPending}

	next, ok := task.NextStatus()
	require.True(t, ok)
	require.Equal(t, MarkingInProgress, next)

	task.Status = next
	next, ok = task.NextStatus()
	require.True(t, ok)
	require.Equal(t, MarkingCompleted, next)

	task.Status = next
	_, ok = task.NextStatus()
	require.False(t, ok)
}

func TestHasProgress(t *testing.T) {
	var student Student
	require.False(t, student.HasProgress())

	student.Assessments = datatypes.NewJSONSlice([]Assessment{{Title: "Quiz 1"}})
	require.True(t, student.HasProgress())

	student = Student{TermAssessments: datatypes.NewJSONSlice([]TermAssessment{{Title: "Term 1"}})}
	require.True(t, student.HasProgress())

	// Остальные коллекции прогрессом не считаются
	student = Student{ChatHistory: datatypes.NewJSONSlice([]ChatMessage{{Role: "user"}})}
	require.False(t, student.HasProgress())
}

func TestTopicTemplate(t *testing.T) {
	igcse := TopicTemplate(CurriculumIGCSE)
	myp := TopicTemplate(CurriculumMYP)

	require.NotEmpty(t, igcse)
	require.NotEmpty(t, myp)
	require.NotEqual(t, len(igcse), len(myp))
	require.Equal(t, "topic-1", igcse[0].ID)
	require.Equal(t, "not_started", igcse[0].Status)
}
