package models

// Command is a reference record describing a shell command and what it does.
// Writable by admins only; readable by everyone.
type Command struct {
	ID          int64  `json:"id"`
	Command     string `json:"command"`
	Description string `json:"description"`
}

func (c Command) TableName() string {
	return "commands"
}
