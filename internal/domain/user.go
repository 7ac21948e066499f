package domain

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}
