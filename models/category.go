package models

// FlashcardCategory groups flashcards. Flashcard.CategoryID must reference
// an existing category before an insert or update succeeds.
type FlashcardCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c FlashcardCategory) TableName() string {
	return "flashcard_categories"
}
