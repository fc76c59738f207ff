package dto

type RegisterInput struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeat_password"`
	PhoneNumber    string `json:"phone_number"`
	Pin            string `json:"pin"`
	Name           string `json:"name"`
	LastName       string `json:"last_name"`
	Country        string `json:"country"`
	Birthdate      string `json:"birthdate"`
}
