package domain

// Option is a selectable reference item. Label is for display only,
// callers submit ID.
type Option struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

type OptionKind string

const (
	OptionCountries  OptionKind = "countries"
	OptionGenders    OptionKind = "genders"
	OptionClasses    OptionKind = "classes"
	OptionTerminals  OptionKind = "terminals"
	OptionAirports   OptionKind = "airports"
	OptionPassengers OptionKind = "passengers"
	OptionFlights    OptionKind = "flights"
)

func (k OptionKind) Valid() bool {
	switch k {
	case OptionCountries, OptionGenders, OptionClasses, OptionTerminals,
		OptionAirports, OptionPassengers, OptionFlights:
		return true
	}
	return false
}

type Country struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type Gender struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Class struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Terminal struct {
	ID     int64  `json:"id"`
	Number string `json:"number"`
	Name   string `json:"name"`
}

type Airport struct {
	ID          int64  `json:"id"`
	AirportCode string `json:"airport_code"`
	Name        string `json:"name"`
	CountryID   int64  `json:"country_id"`
}
