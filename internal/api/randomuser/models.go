package randomuser

type UsersResponse struct {
	Results []User `json:"results"`
	Info    Info   `json:"info"`
}

// User holds the fields of a result the grid uses. Name and Picture are
// pointers so that a missing substructure is detectable.
type User struct {
	Gender  string   `json:"gender"`
	Name    *Name    `json:"name"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Cell    string   `json:"cell"`
	Nat     string   `json:"nat"`
	Picture *Picture `json:"picture"`
}

type Name struct {
	Title string `json:"title"`
	First string `json:"first"`
	Last  string `json:"last"`
}

type Picture struct {
	Large     string `json:"large"`
	Medium    string `json:"medium"`
	Thumbnail string `json:"thumbnail"`
}

type Info struct {
	Seed    string `json:"seed"`
	Results int    `json:"results"`
	Page    int    `json:"page"`
	Version string `json:"version"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
