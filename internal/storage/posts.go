package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Shubham-Khatrii/budgetwise/internal/model"
)

// Posts returns the community feed, newest first.
func (s *Store) Posts(ctx context.Context) ([]model.CommunityPost, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, author_name, author_avatar, author_initials, timestamp, content, likes, comments, shares
		FROM posts
		ORDER BY rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var posts []model.CommunityPost
	for rows.Next() {
		var p model.CommunityPost
		if err := rows.Scan(&p.ID, &p.Author.Name, &p.Author.Avatar, &p.Author.Initials,
			&p.Timestamp, &p.Content, &p.Likes, &p.Comments, &p.Shares); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

// AddCommunityPost publishes a post to the feed as the configured current
// user, timestamped "Just now" with zero counters, and prepends it.
func (s *Store) AddCommunityPost(ctx context.Context, content string) (*model.CommunityPost, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	post := &model.CommunityPost{
		ID:        uuid.NewString(),
		Author:    s.user,
		Timestamp: "Just now",
		Content:   content,
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO posts (id, author_name, author_avatar, author_initials, timestamp, content, likes, comments, shares)
		 VALUES (?, ?, ?, ?, ?, ?, 0, 0, 0)`,
		post.ID, post.Author.Name, post.Author.Avatar, post.Author.Initials,
		post.Timestamp, post.Content); err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	s.toaster.Success("Your post has been shared with the community")

	slog.Debug("published post", "id", post.ID)
	return post, nil
}

// LikePost increments a post's like counter. There is no per-user tracking
// or toggle: repeated calls keep incrementing. Unknown ids are a silent
// no-op.
func (s *Store) LikePost(ctx context.Context, postID string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE posts SET likes = likes + 1 WHERE id = ?`, postID); err != nil {
		return fmt.Errorf("failed to like post: %w", err)
	}
	return nil
}
