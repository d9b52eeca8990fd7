package services

import (
	"errors"
	"testing"

	"github.com/roxyukipookie/CampusCart-Online-Marketplace-System/models"
)

type capturingPublisher struct {
	username string
	events   []interface{}
}

func (p *capturingPublisher) PublishToUser(username string, event interface{}) {
	p.username = username
	p.events = append(p.events, event)
}

func TestCreateNotificationPublishes(t *testing.T) {
	db := setupTestDB(t)
	publisher := &capturingPublisher{}
	svc := NewNotificationService(db, publisher)
	seedUser(t, db, "kaye")

	notification, err := svc.Create("Your product 'Lamp' has been approved!", "info", "kaye")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if notification.IsRead {
		t.Fatal("new notification must start unread")
	}
	if publisher.username != "kaye" || len(publisher.events) != 1 {
		t.Fatalf("expected one push to kaye, got %d to %q", len(publisher.events), publisher.username)
	}
}

func TestCreateNotificationUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db, nil)

	if _, err := svc.Create("hello", "info", "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestGetForUserNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db, nil)
	seedUser(t, db, "kaye")

	for _, message := range []string{"first", "second", "third"} {
		if _, err := svc.Create(message, "info", "kaye"); err != nil {
			t.Fatalf("create %s: %v", message, err)
		}
	}

	notifications, err := svc.GetForUser("kaye")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(notifications) != 3 {
		t.Fatalf("want 3 notifications, got %d", len(notifications))
	}
	if notifications[0].Message != "third" {
		t.Fatalf("want newest first, got %q", notifications[0].Message)
	}
}

func TestGetForUserUnknown(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db, nil)

	if _, err := svc.GetForUser("ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestMarkAllRead(t *testing.T) {
	db := setupTestDB(t)
	svc := NewNotificationService(db, nil)
	seedUser(t, db, "kaye")
	seedUser(t, db, "lloyd")

	for i := 0; i < 2; i++ {
		if _, err := svc.Create("for kaye", "info", "kaye"); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	if _, err := svc.Create("for lloyd", "info", "lloyd"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.MarkAllRead("kaye"); err != nil {
		t.Fatalf("mark all read: %v", err)
	}

	var unread int64
	db.Model(&models.Notification{}).Where("user_username = ? AND is_read = ?", "kaye", false).Count(&unread)
	if unread != 0 {
		t.Fatalf("want 0 unread for kaye, got %d", unread)
	}
	db.Model(&models.Notification{}).Where("user_username = ? AND is_read = ?", "lloyd", false).Count(&unread)
	if unread != 1 {
		t.Fatalf("other user's notifications must stay unread, got %d", unread)
	}
}
