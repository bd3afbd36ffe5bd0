package models

// Category maps the categories table
type Category struct {
	ID   int64  `db:"id"`
	Type string `db:"type"`
}

// Question maps the questions table
type Question struct {
	ID         int64  `db:"id"`
	Question   string `db:"question"`
	Answer     string `db:"answer"`
	Difficulty int    `db:"difficulty"`
	Category   int64  `db:"category"`
}
