package model

type Problem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Points       int    `json:"points"`
	TestFileHash string `json:"test_file_hash"`
}
