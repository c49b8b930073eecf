package store

const (
	createUser = `INSERT INTO users (username, password_hash, role)
    VALUES ($1, $2, $3)
    RETURNING id;`

	usernameExists = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1);`

	findIDByUsername = `SELECT id FROM users WHERE username = $1;`

	getPasswordHash = `SELECT password_hash FROM users WHERE id = $1;`

	getRole = `SELECT role FROM users WHERE id = $1;`

	isAdmin = `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1 AND role = 'admin');`

	listUserIDs = `SELECT id FROM users;`

	createCommand = `INSERT INTO commands (command, description) VALUES ($1, $2);`

	listCommands = `SELECT id, command, description FROM commands ORDER BY id;`

	deleteCommand = `DELETE FROM commands WHERE id = $1;`

	createCategory = `INSERT INTO flashcard_categories (name) VALUES ($1);`

	listCategories = `SELECT id, name FROM flashcard_categories ORDER BY id;`

	deleteCategory = `DELETE FROM flashcard_categories WHERE id = $1;`

	categoryExists = `SELECT EXISTS (SELECT 1 FROM flashcard_categories WHERE id = $1);`

	createFlashcard = `INSERT INTO flashcards (word, definition, category_id)
    VALUES ($1, $2, $3)
    RETURNING id;`

	listFlashcards = `SELECT id, word, definition, category_id FROM flashcards ORDER BY id;`

	listFlashcardsForSeeding = `SELECT id, category_id FROM flashcards;`

	deleteFlashcard = `DELETE FROM flashcards WHERE id = $1;`

	seedUserFlashcard = `INSERT INTO users_flashcards (user_id, flashcard_id, category_id, status, is_favorite)
    VALUES ($1, $2, $3, $4, false);`

	listUserFlashcards = `SELECT user_id, flashcard_id, category_id, status, is_favorite
    FROM users_flashcards
    WHERE user_id = $1
    ORDER BY flashcard_id;`
)
