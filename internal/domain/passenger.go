package domain

type Passenger struct {
	ID                   int64  `json:"id"`
	PassportNumber       string `json:"passport_number"`
	Name                 string `json:"name"`
	GenderID             int64  `json:"gender_id"`
	Gender               string `json:"gender"`
	NationalityCountryID int64  `json:"nationality_country_id"`
	Nationality          string `json:"nationality"`
	CountryCode          string `json:"country_code"`
}

type PassengerInput struct {
	PassportNumber       string `json:"passport_number"`
	Name                 string `json:"name"`
	GenderID             int64  `json:"gender_id"`
	NationalityCountryID int64  `json:"nationality_country_id"`
}
