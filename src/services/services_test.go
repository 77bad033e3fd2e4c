package services

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"socialnet/src/models"
)

// newTestDB opens a private in-memory database and migrates the schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Friendship{},
		&models.FriendRequest{},
		&models.Message{},
		&models.Notification{},
	)
	require.NoError(t, err)

	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()

	user := models.User{
		Name:     username,
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Roles:    []string{"ROLE_USER"},
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// dispatchRecorder captures pushed events per target email
type dispatchRecorder struct {
	mu     sync.Mutex
	events map[string][]any
}

func newDispatchRecorder() *dispatchRecorder {
	return &dispatchRecorder{events: make(map[string][]any)}
}

func (r *dispatchRecorder) SendToUser(email string, payload any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[email] = append(r.events[email], payload)
}

func (r *dispatchRecorder) eventsFor(email string) []any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[email]
}

func newTestServices(t *testing.T) (*gorm.DB, *FriendService, *MessageService, *NotificationService, *dispatchRecorder) {
	t.Helper()

	db := newTestDB(t)
	recorder := newDispatchRecorder()
	notifications := NewNotificationService(db)
	friends := NewFriendService(db, notifications, recorder)
	messages := NewMessageService(db, friends, recorder)
	return db, friends, messages, notifications, recorder
}

// befriend wires a friendship edge directly, bypassing the request flow
func befriend(t *testing.T, friends *FriendService, a, b models.User) {
	t.Helper()
	require.NoError(t, friends.Befriend(a.ID, b.ID))
}
