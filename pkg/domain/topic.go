package domain

// Topic is a discussion thread. Topics are immutable once created.
type Topic struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TopicList is the envelope returned by GET /topics.
type TopicList struct {
	Topics []Topic `json:"topics"`
}
