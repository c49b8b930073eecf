package models

// Flashcard is a word/definition pair belonging to a category.
type Flashcard struct {
	ID         int64  `json:"id"`
	Word       string `json:"word"`
	Definition string `json:"definition"`
	CategoryID int64  `json:"category_id"`
}

func (f Flashcard) TableName() string {
	return "flashcards"
}
