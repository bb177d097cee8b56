package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scribeapp/scribe-be/internal/auth"
	"github.com/scribeapp/scribe-be/internal/models"
)

// PostServiceProvider defines the interface for post services.
type PostServiceProvider interface {
	CreatePost(title, content, authorID string) (models.Post, error)
	GetAllPosts() ([]models.Post, error)
	GetPostByID(id string) (models.Post, error)
	UpdatePost(id, callerID, title, content string) (models.Post, error)
	DeletePost(id, callerID string) error
}

// PostService provides business logic for post management. Update and delete
// are restricted to the recorded author; reads are public.
type PostService struct {
	db     *sql.DB
	events EventServiceProvider
}

// NewPostService creates a new PostService.
func NewPostService(db *sql.DB, events EventServiceProvider) *PostService {
	return &PostService{db: db, events: events}
}

const postSelect = `
	SELECT p.id, p.title, p.content, p.author_id, p.created_at, p.updated_at,
	       u.id, u.username, u.email
	FROM posts p
	JOIN users u ON u.id = p.author_id`

// CreatePost stores a new post with the caller as its author.
func (s *PostService) CreatePost(title, content, authorID string) (models.Post, error) {
	if title == "" || content == "" {
		return models.Post{}, fmt.Errorf("%w: title and content are required", ErrValidation)
	}

	now := time.Now().UTC()
	post := models.Post{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := s.db.Exec("INSERT INTO posts(id, title, content, author_id, created_at, updated_at) VALUES(?, ?, ?, ?, ?, ?)",
		post.ID, post.Title, post.Content, post.AuthorID, post.CreatedAt, post.UpdatedAt)
	if err != nil {
		return models.Post{}, err
	}

	s.events.Record("post.create", "info", "post "+post.ID+" created", &authorID)

	return s.GetPostByID(post.ID)
}

// GetAllPosts retrieves all posts, newest first, with authors resolved.
func (s *PostService) GetAllPosts() ([]models.Post, error) {
	rows, err := s.db.Query(postSelect + " ORDER BY p.created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

// GetPostByID retrieves a single post with its author resolved.
func (s *PostService) GetPostByID(id string) (models.Post, error) {
	row := s.db.QueryRow(postSelect+" WHERE p.id = ?", id)
	post, err := scanPost(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Post{}, fmt.Errorf("%w: post %s", ErrNotFound, id)
		}
		return models.Post{}, err
	}
	return post, nil
}

// UpdatePost applies a partial update to a post owned by the caller. Empty
// fields keep their current value.
func (s *PostService) UpdatePost(id, callerID, title, content string) (models.Post, error) {
	post, err := s.GetPostByID(id)
	if err != nil {
		return models.Post{}, err
	}

	if !auth.IsOwner(post.AuthorID, callerID) {
		return models.Post{}, fmt.Errorf("%w: you can only update your own posts", ErrForbidden)
	}

	if title != "" {
		post.Title = title
	}
	if content != "" {
		post.Content = content
	}
	post.UpdatedAt = time.Now().UTC()

	_, err = s.db.Exec("UPDATE posts SET title = ?, content = ?, updated_at = ? WHERE id = ?",
		post.Title, post.Content, post.UpdatedAt, post.ID)
	if err != nil {
		return models.Post{}, err
	}

	s.events.Record("post.update", "info", "post "+post.ID+" updated", &callerID)

	return post, nil
}

// DeletePost removes a post owned by the caller.
func (s *PostService) DeletePost(id, callerID string) error {
	post, err := s.GetPostByID(id)
	if err != nil {
		return err
	}

	if !auth.IsOwner(post.AuthorID, callerID) {
		return fmt.Errorf("%w: you can only delete your own posts", ErrForbidden)
	}

	if _, err := s.db.Exec("DELETE FROM posts WHERE id = ?", post.ID); err != nil {
		return err
	}

	s.events.Record("post.delete", "info", "post "+post.ID+" deleted", &callerID)
	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	err := row.Scan(&post.ID, &post.Title, &post.Content, &post.AuthorID,
		&post.CreatedAt, &post.UpdatedAt,
		&post.Author.ID, &post.Author.Username, &post.Author.Email)
	return post, err
}
