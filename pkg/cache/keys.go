package cache

import "fmt"

// Record keys. Patterns are used when a cascade removes an unknown set of rows.
const (
	AuthorPattern    = "author:*"
	BookPattern      = "book:*"
	EventPattern     = "event:*"
	BiographyPattern = "biography:*"
)

func AuthorKey(id int64) string { return fmt.Sprintf("author:%d", id) }
func BookKey(id int64) string { return fmt.Sprintf("book:%d", id) }
func EventKey(id int64) string { return fmt.Sprintf("event:%d", id) }
func BiographyKey(authorID int64) string { return fmt.Sprintf("biography:%d", authorID) }
