package models

// StatusNeedsStudying is the initial study status seeded for every
// (user, flashcard) pair.
const StatusNeedsStudying = "Needs studying"

// UserFlashcard is a per-user study progress record. One row exists for
// every user/flashcard pair that existed simultaneously: rows are seeded
// for all flashcards when a user registers, and for all users when a
// flashcard is created.
type UserFlashcard struct {
	UserID      int64  `json:"user_id"`
	FlashcardID int64  `json:"flashcard_id"`
	CategoryID  int64  `json:"category_id"`
	Status      string `json:"status"`
	IsFavorite  bool   `json:"is_favorite"`
}

func (u UserFlashcard) TableName() string {
	return "users_flashcards"
}
