package repository

// Page is a 1-based pagination window. Zero values mean "use defaults".
type Page struct {
	Page  int
	Limit int
}
