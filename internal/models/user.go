package models

// UserRow is one flattened random user as shown in the grid
type UserRow struct {
	ID           int    `json:"id"` // position in the response, 0-based
	Title        string `json:"title"`
	First        string `json:"first"`
	Last         string `json:"last"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	LargePicture string `json:"large_picture"`
}

// FullName returns "First Last" for button labels
func (r UserRow) FullName() string {
	switch {
	case r.First == "":
		return r.Last
	case r.Last == "":
		return r.First
	}
	return r.First + " " + r.Last
}
