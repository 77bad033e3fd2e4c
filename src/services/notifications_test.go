package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialnet/src/models"
)

func TestNotificationsForUserNewestFirst(t *testing.T) {
	db, _, _, notifications, _ := newTestServices(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	_, err := notifications.Create(alice.ID, models.NotificationTypeFriendRequest, "older", "/friend/requests", &bob.ID, nil)
	require.NoError(t, err)
	_, err = notifications.Create(alice.ID, models.NotificationTypeFriendRequestAccepted, "newer", "/friend", &bob.ID, nil)
	require.NoError(t, err)
	_, err = notifications.Create(bob.ID, models.NotificationTypeFriendRequest, "for bob", "", nil, nil)
	require.NoError(t, err)

	stored, err := notifications.ForUser(alice.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, "newer", stored[0].Message)
	assert.Equal(t, "older", stored[1].Message)
}

func TestNotificationMarkReadTargetOnly(t *testing.T) {
	db, _, _, notifications, _ := newTestServices(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	created, err := notifications.Create(alice.ID, models.NotificationTypeFriendRequest, "hello", "", &bob.ID, nil)
	require.NoError(t, err)

	// another user cannot even learn the record exists
	_, err = notifications.MarkRead(bob, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = notifications.MarkRead(alice, 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := notifications.MarkRead(alice, created.ID)
	require.NoError(t, err)
	assert.True(t, updated.Read)

	count, err := notifications.UnreadCount(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestNotificationUnreadCount(t *testing.T) {
	db, _, _, notifications, _ := newTestServices(t)
	alice := createUser(t, db, "alice")

	count, err := notifications.UnreadCount(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	first, err := notifications.Create(alice.ID, models.NotificationTypeFriendRequest, "one", "", nil, nil)
	require.NoError(t, err)
	_, err = notifications.Create(alice.ID, models.NotificationTypeFriendRequest, "two", "", nil, nil)
	require.NoError(t, err)

	count, err = notifications.UnreadCount(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, err = notifications.MarkRead(alice, first.ID)
	require.NoError(t, err)

	count, err = notifications.UnreadCount(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestNotificationDeleteTargetOnly(t *testing.T) {
	db, _, _, notifications, _ := newTestServices(t)
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	created, err := notifications.Create(alice.ID, models.NotificationTypeFriendRequest, "hello", "", nil, nil)
	require.NoError(t, err)

	assert.ErrorIs(t, notifications.Delete(bob, created.ID), ErrNotFound)

	require.NoError(t, notifications.Delete(alice, created.ID))

	stored, err := notifications.ForUser(alice.ID)
	require.NoError(t, err)
	assert.Empty(t, stored)

	assert.ErrorIs(t, notifications.Delete(alice, created.ID), ErrNotFound)
}
