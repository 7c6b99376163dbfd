package model

// Book is a catalog entry (livros.json). Title is the key every other
// operation matches on, but duplicates are permitted on add; removal takes
// every exact-title match with it.
type Book struct {
	Title  string `json:"titulo"`
	Author string `json:"autor"`
}
