package domain

const FlightStatusScheduled = "scheduled"

const FlightNumberPrefix = "AK"

type Flight struct {
	ID                   int64  `json:"id"`
	FlightNumber         string `json:"flight_number"`
	PlaneID              int64  `json:"plane_id"`
	BranchID             int64  `json:"branch_id"`
	OriginAirportID      int64  `json:"origin_airport_id"`
	DestinationAirportID int64  `json:"destination_airport_id"`
	OriginCode           string `json:"origin_code"`
	OriginName           string `json:"origin_name"`
	DestinationCode      string `json:"destination_code"`
	DestinationName      string `json:"destination_name"`
	DepartureDate        string `json:"departure_date"`
	DepartureTime        string `json:"departure_time"`
	ArrivalDate          string `json:"arrival_date"`
	ArrivalTime          string `json:"arrival_time"`
	Status               string `json:"status"`
}

// Departure is the "YYYY-MM-DD HH:MM" form shown in listings.
func (f Flight) Departure() string {
	return f.DepartureDate + " " + f.DepartureTime
}

func (f Flight) Arrival() string {
	return f.ArrivalDate + " " + f.ArrivalTime
}

type FlightSortField string

const (
	FlightSortID          FlightSortField = "id"
	FlightSortNumber      FlightSortField = "flight_number"
	FlightSortOrigin      FlightSortField = "origin"
	FlightSortDestination FlightSortField = "destination"
	FlightSortDeparture   FlightSortField = "departure"
	FlightSortArrival     FlightSortField = "arrival"
	FlightSortStatus      FlightSortField = "status"
)

type FlightSort struct {
	Field FlightSortField
	Desc  bool
}

type NewFlight struct {
	FlightNumber         string
	PlaneID              int64
	BranchID             int64
	OriginAirportID      int64
	DestinationAirportID int64
	DepartureDate        string
	DepartureTime        string
	ArrivalDate          string
	ArrivalTime          string
}
