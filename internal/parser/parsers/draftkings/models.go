package draftkings

// API shapes for the sportsbook league-subcategory markets endpoint.
// Only the fields this service reads are declared.

type apiResponse struct {
	Events     []apiEvent     `json:"events"`
	Markets    []apiMarket    `json:"markets"`
	Selections []apiSelection `json:"selections"`
}

type apiEvent struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type apiMarket struct {
	ID      string `json:"id"`
	EventID string `json:"eventId"`
	Name    string `json:"name"`
}

type apiSelection struct {
	MarketID     string           `json:"marketId"`
	Label        string           `json:"label"`
	Participants []apiParticipant `json:"participants"`
	DisplayOdds  apiDisplayOdds   `json:"displayOdds"`
}

type apiParticipant struct {
	Name string `json:"name"`
}

type apiDisplayOdds struct {
	American string `json:"american"`
}
