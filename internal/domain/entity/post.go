package entity

import "time"

// Post is authored content. Writer is a read-only snapshot of the user
// resolved at creation time, not a live reference.
type Post struct {
	ID         int64
	Content    string
	Writer     User
	CreatedAt  time.Time
	ModifiedAt time.Time // zero until the first edit
}

// PostCreate carries the fields of a post creation request.
type PostCreate struct {
	WriterID int64
	Content  string
}

// PostUpdate carries a content edit.
type PostUpdate struct {
	Content string
}

// NewPost builds a post from a resolved writer and a creation request,
// stamping CreatedAt exactly once.
func NewPost(writer User, create PostCreate, clock ClockHolder) Post {
	return Post{
		Content:   create.Content,
		Writer:    writer,
		CreatedAt: clock.Now(),
	}
}

// Update replaces the content and stamps ModifiedAt.
func (p Post) Update(update PostUpdate, clock ClockHolder) Post {
	p.Content = update.Content
	p.ModifiedAt = clock.Now()
	return p
}
