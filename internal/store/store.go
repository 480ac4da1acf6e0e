// ABOUTME: Store interface and data types for hatchboard persistence
// ABOUTME: Defines User, Project, Message structs and the record store contract

package store

import (
	"context"
	"errors"
	"time"
)

// ErrUserNotFound is returned when a requested user does not exist.
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when trying to create a user with an existing email.
var ErrEmailExists = errors.New("email already registered")

// ErrProjectNotFound is returned when a requested project does not exist.
var ErrProjectNotFound = errors.New("project not found")

// User is an identity record. Password holds the bcrypt hash, never plaintext.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}

// Project is a user-owned project listing.
type Project struct {
	ID          string
	Title       string
	Description string
	UserID      string
	CreatedAt   time.Time
}

// Message is a direct message between two users about a project.
type Message struct {
	ID          string
	Message     string
	SenderID    string
	ReceiverID  string
	SenderEmail string
	ProjectID   string
	SenderName  string
	CreatedAt   time.Time
}

// Store defines the interface for user, project, and message persistence.
type Store interface {
	// Users
	CreateUser(ctx context.Context, user *User) error
	GetUser(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateUser(ctx context.Context, user *User) error

	// Projects
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id string) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	ListProjectsByUser(ctx context.Context, userID string) ([]*Project, error)
	UpdateProject(ctx context.Context, id, title, description string) error
	DeleteProject(ctx context.Context, id string) error

	// Messages
	CreateMessage(ctx context.Context, msg *Message) error
	ListMessagesForUser(ctx context.Context, userID string) ([]*Message, error)

	// Close releases any resources held by the store
	Close() error
}
