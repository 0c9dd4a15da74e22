package sqlite

import (
	"context"
	"testing"

	"deskblog/internal/model"
)

func TestCreateComment(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", "a@x.com")
	post := createTestPost(t, db, alice.ID, "Hi")

	comment := &model.Comment{PostID: post.ID, UserID: alice.ID, Text: "Nice!"}
	if err := db.CreateComment(context.Background(), comment); err != nil {
		t.Fatalf("CreateComment() error = %v", err)
	}

	if comment.ID == 0 {
		t.Error("CreateComment() did not set comment.ID")
	}
	if comment.CreatedAt.IsZero() {
		t.Error("CreateComment() did not set comment.CreatedAt")
	}
}

func TestCreateCommentDanglingPost(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", "a@x.com")

	comment := &model.Comment{PostID: 999, UserID: alice.ID, Text: "into the void"}
	if err := db.CreateComment(context.Background(), comment); err == nil {
		t.Error("CreateComment() on a missing post should trip the foreign key")
	}
}

func TestListByPostNewestFirst(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", "a@x.com")
	bob := createTestUser(t, db, "bob", "b@x.com")
	post := createTestPost(t, db, alice.ID, "Hi")
	other := createTestPost(t, db, alice.ID, "Other")

	for _, c := range []*model.Comment{
		{PostID: post.ID, UserID: alice.ID, Text: "first"},
		{PostID: post.ID, UserID: bob.ID, Text: "second"},
		{PostID: other.ID, UserID: bob.ID, Text: "elsewhere"},
	} {
		if err := db.CreateComment(context.Background(), c); err != nil {
			t.Fatalf("CreateComment() error = %v", err)
		}
	}

	comments, err := db.ListByPost(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("ListByPost() error = %v", err)
	}

	if len(comments) != 2 {
		t.Fatalf("len(comments) = %d, want 2", len(comments))
	}
	if comments[0].Text != "second" || comments[1].Text != "first" {
		t.Errorf("order = %q, %q; want second, first", comments[0].Text, comments[1].Text)
	}
	if comments[0].Username != "bob" {
		t.Errorf("Username = %q, want %q", comments[0].Username, "bob")
	}
}

func TestListByPostEmpty(t *testing.T) {
	db := newTestDB(t)
	alice := createTestUser(t, db, "alice", "a@x.com")
	post := createTestPost(t, db, alice.ID, "quiet")

	comments, err := db.ListByPost(context.Background(), post.ID)
	if err != nil {
		t.Fatalf("ListByPost() error = %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("len(comments) = %d, want 0", len(comments))
	}
}
