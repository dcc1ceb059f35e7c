package services

import (
	"testing"

	"studyport/internal/models"

	"github.com/stretchr/testify/require"
)

func TestCreateStudentSeedsCurriculumTopics(t *testing.T) {
	env := newTestEnv(t)
	students := NewStudentService(env.studentRepo)

	student, err := students.CreateStudent("arman.k", "secret", models.CurriculumIGCSE, "fm5-25")
	require.NoError(t, err)
	require.NotEmpty(t, student.ID)
	require.NotEmpty(t, student.Topics)
	for _, topic := range student.Topics {
		require.Equal(t, "not_started", topic.Status)
	}

	// У разных программ разные наборы тем
	other, err := students.CreateStudent("diya.s", "secret", models.CurriculumMYP, "fm5-25")
	require.NoError(t, err)
	require.NotEqual(t, len(student.Topics), len(other.Topics))
}

func TestSaveStudentOverwritesWholeRecord(t *testing.T) {
	env := newTestEnv(t)
	students := NewStudentService(env.studentRepo)

	student, err := students.CreateStudent("arman.k", "secret", models.CurriculumIGCSE, "fm5-25")
	require.NoError(t, err)

	student.ChallengePoints = 120
	require.NoError(t, students.SaveStudent(student))

	stored, err := students.GetStudent(student.ID)
	require.NoError(t, err)
	require.Equal(t, 120, stored.ChallengePoints)
}

func TestListByBatch(t *testing.T) {
	env := newTestEnv(t)
	students := NewStudentService(env.studentRepo)

	_, err := students.CreateStudent("arman.k", "secret", models.CurriculumIGCSE, "fm5-25")
	require.NoError(t, err)
	_, err = students.CreateStudent("diya.s", "secret", models.CurriculumMYP, "fm6-25")
	require.NoError(t, err)

	batch, err := students.ListByBatch("fm5-25")
	require.NoError(t, err)
	require.Len(t, batch, 1)
	require.Equal(t, "arman.k", batch[0].Username)
}
