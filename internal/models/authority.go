package models

// Authority is a local government body that owns schemes.
type Authority struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	FullName     string `json:"fullName"`
}
