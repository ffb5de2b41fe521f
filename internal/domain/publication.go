package domain

import "time"

// Identity is a verified user as reported by the identity provider.
type Identity struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}

// PublishRequest is a generated article submitted for publishing as a CMS draft.
type PublishRequest struct {
	Headline    string `json:"headline"`
	Article     string `json:"article"`
	Excerpt     string `json:"excerpt"`
	ArticleType string `json:"articleType,omitempty"`
}

// DraftPost is the post sent to the CMS.
type DraftPost struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt"`
	Status  string `json:"status"`
	Author  int    `json:"author"`
}

// CreatedPost is the CMS response for a created draft.
type CreatedPost struct {
	ID      int64  `json:"id"`
	EditURL string `json:"editUrl"`
}

// Publication is a recorded draft published by a user.
type Publication struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserEmail   string    `json:"user_email"`
	PostID      int64     `json:"post_id"`
	EditURL     string    `json:"edit_url"`
	Headline    string    `json:"headline"`
	ArticleType string    `json:"article_type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
