package models

// Tracks how far the student is through the course. Completed only ever
// increases; nothing is persisted between runs.
type LessonProgress struct {
	Completed int
	Total     int
}
