package services

import (
	"testing"

	"studyport/internal/models"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMarkingEnv(t *testing.T) (*testEnv, PeerMarkingService) {
	env := newTestEnv(t)
	return env, NewPeerMarkingService(env.markingRepo, env.sync, zap.NewNop())
}

func TestCreateTaskStartsPending(t *testing.T) {
	_, marking := newMarkingEnv(t)

	task, err := marking.CreateTask("fm5-25", "s1", "s2", "https://files.example/script.pdf", "https://files.example/scheme.pdf")
	require.NoError(t, err)
	require.NotEmpty(t, task.ID)
	require.Equal(t, models.MarkingPending, task.Status)
}

func TestAdvanceStatusWalksChain(t *testing.T) {
	_, marking := newMarkingEnv(t)

	task, err := marking.CreateTask("fm5-25", "s1", "s2", "", "")
	require.NoError(t, err)
	marker := studentSession("s2")

	task, err = marking.AdvanceStatus(marker, task.ID)
	require.NoError(t, err)
	require.Equal(t, models.MarkingInProgress, task.Status)

	task, err = marking.AdvanceStatus(marker, task.ID)
	require.NoError(t, err)
	require.Equal(t, models.MarkingCompleted, task.Status)

	// Completed — терминальное состояние, дальше хода нет
	_, err = marking.AdvanceStatus(marker, task.ID)
	require.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAdvanceStatusRejectsNonMarker(t *testing.T) {
	env, marking := newMarkingEnv(t)

	task, err := marking.CreateTask("fm5-25", "s1", "s2", "", "")
	require.NoError(t, err)

	// Сдавший работу ученик сам себя не продвигает
	_, err = marking.AdvanceStatus(studentSession("s1"), task.ID)
	require.ErrorIs(t, err, ErrNotAssignedMarker)

	stored, err := env.markingRepo.GetByID(task.ID)
	require.NoError(t, err)
	require.Equal(t, models.MarkingPending, stored.Status)
}

func TestAdvanceStatusAllowsAdmin(t *testing.T) {
	_, marking := newMarkingEnv(t)

	task, err := marking.CreateTask("fm5-25", "s1", "s2", "", "")
	require.NoError(t, err)

	admin := &Session{ID: "admin-session", Role: RoleAdmin}
	task, err = marking.AdvanceStatus(admin, task.ID)
	require.NoError(t, err)
	require.Equal(t, models.MarkingInProgress, task.Status)
}

func TestAdvanceStatusPushesBatchList(t *testing.T) {
	env, marking := newMarkingEnv(t)

	task, err := marking.CreateTask("fm5-25", "s1", "s2", "", "")
	require.NoError(t, err)

	_, err = marking.AdvanceStatus(studentSession("s2"), task.ID)
	require.NoError(t, err)

	// Изменение уходит в облако заменой всего списка группы
	remote := env.cloud.list(t, "sync_peer_marking/fm5-25")
	require.Len(t, remote, 1)
	require.Equal(t, task.ID, remote[0]["id"])
	require.Equal(t, string(models.MarkingInProgress), remote[0]["status"])
}

func TestAdvanceStatusSurvivesCloudOutage(t *testing.T) {
	env, marking := newMarkingEnv(t)

	task, err := marking.CreateTask("fm5-25", "s1", "s2", "", "")
	require.NoError(t, err)
	env.cloud.failAll = true

	// Локальное состояние меняется даже когда облако лежит
	task, err = marking.AdvanceStatus(studentSession("s2"), task.ID)
	require.NoError(t, err)
	require.Equal(t, models.MarkingInProgress, task.Status)

	stored, err := env.markingRepo.GetByID(task.ID)
	require.NoError(t, err)
	require.Equal(t, models.MarkingInProgress, stored.Status)
}

func TestListForMarker(t *testing.T) {
	_, marking := newMarkingEnv(t)

	_, err := marking.CreateTask("fm5-25", "s1", "s2", "", "")
	require.NoError(t, err)
	_, err = marking.CreateTask("fm5-25", "s3", "s4", "", "")
	require.NoError(t, err)

	tasks, err := marking.ListForMarker("s2")
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "s1", tasks[0].StudentID)
}
