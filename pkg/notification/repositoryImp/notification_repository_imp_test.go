package repositoryImp_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cropcal/entities"
	"cropcal/pkg/notification/repositoryImp"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Notification{}))
	return db
}

func notif(userID, priority string) *entities.Notification {
	return &entities.Notification{
		UserID:       userID,
		CalendarID:   "CAL1",
		Crop:         "Tomato",
		ActivityName: "Transplanting",
		ActivityDate: "2025-01-26",
		ReminderType: entities.ReminderOneDayBefore,
		Priority:     priority,
		Title:        "Tomorrow: Transplanting",
		Body:         "Tomato: transplant seedlings",
	}
}

func TestCreateAndList(t *testing.T) {
	repo := repositoryImp.New(testDB(t))

	require.NoError(t, repo.Create(notif("U1", entities.PriorityHigh)))
	require.NoError(t, repo.Create(notif("U1", entities.PriorityUrgent)))
	require.NoError(t, repo.Create(notif("U2", entities.PriorityMedium)))

	out, err := repo.ListByUser("U1", true, 0)
	require.NoError(t, err)
	assert.Len(t, out, 2)

	out, err = repo.ListByUser("U1", true, 1)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestMarkRead(t *testing.T) {
	repo := repositoryImp.New(testDB(t))

	n := notif("U1", entities.PriorityHigh)
	require.NoError(t, repo.Create(n))
	require.NoError(t, repo.MarkRead(n.ID))

	unread, err := repo.ListByUser("U1", true, 0)
	require.NoError(t, err)
	assert.Empty(t, unread)

	all, err := repo.ListByUser("U1", false, 0)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, all[0].Read)
	assert.NotNil(t, all[0].ReadAt)
}

func TestCountUnread(t *testing.T) {
	repo := repositoryImp.New(testDB(t))

	require.NoError(t, repo.Create(notif("U1", entities.PriorityHigh)))
	require.NoError(t, repo.Create(notif("U1", entities.PriorityUrgent)))
	read := notif("U1", entities.PriorityUrgent)
	require.NoError(t, repo.Create(read))
	require.NoError(t, repo.MarkRead(read.ID))

	total, urgent, err := repo.CountUnread("U1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.EqualValues(t, 1, urgent)
}
