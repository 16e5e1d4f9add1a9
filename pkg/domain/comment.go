package domain

// Comment is a message attached to a topic.
type Comment struct {
	Content   string `json:"content"`
	CreatedBy Author `json:"created_by"`
}

// Line renders the comment the way list views show it: "author: content".
func (c Comment) Line() string {
	return c.CreatedBy.Username + ": " + c.Content
}

// CommentList is the envelope returned by GET /topics/{id}/comments.
type CommentList struct {
	Comments []Comment `json:"comments"`
}
