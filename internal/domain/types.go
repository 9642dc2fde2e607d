package domain

// User is a registered account. Authentication is email-plus-name only;
// there are no credentials to verify.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

// WeatherData is a forecast snapshot embedded in an Event at creation time.
// It is never refreshed afterwards.
type WeatherData struct {
	Temperature   float64 `json:"temperature"` // °C
	Humidity      float64 `json:"humidity"`    // %
	WindSpeed     float64 `json:"windSpeed"`   // km/h
	Conditions    string  `json:"conditions"`
	Visibility    float64 `json:"visibility"`    // %
	Precipitation float64 `json:"precipitation"` // %
}

// Event is a planned outdoor activity owned by a single user.
type Event struct {
	ID                string       `json:"id"`
	UserID            string       `json:"userId"`
	Title             string       `json:"title"`
	Location          string       `json:"location"`
	Date              string       `json:"date"`
	Time              string       `json:"time"`
	Type              string       `json:"type"`
	WeatherPrediction *WeatherData `json:"weatherPrediction,omitempty"`
	AIRecommendations []string     `json:"aiRecommendations,omitempty"`
}

// Review is a community rating for a location. UserName is a denormalized
// copy taken at creation time; a later rename of the user does not propagate.
type Review struct {
	ID         string   `json:"id"`
	UserID     string   `json:"userId"`
	UserName   string   `json:"userName"`
	LocationID string   `json:"locationId"`
	Rating     int      `json:"rating"` // 1-5
	Comment    string   `json:"comment"`
	Date       string   `json:"date"`
	Photos     []string `json:"photos,omitempty"`
}

// Astronomical event types.
const (
	AstroFullMoon     = "full-moon"
	AstroNewMoon      = "new-moon"
	AstroEclipse      = "eclipse"
	AstroMeteorShower = "meteor-shower"
	AstroSuperMoon    = "super-moon"
	AstroBloodMoon    = "blood-moon"
)

// AstronomicalEvent describes an upcoming celestial event and where to
// watch it from.
type AstronomicalEvent struct {
	ID              string   `json:"id"`
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Description     string   `json:"description"`
	Visibility      int      `json:"visibility"` // 0-100
	OptimalLocation string   `json:"optimalLocation"`
	Recommendations []string `json:"recommendations"`
}

// Recommendation is one entry from the static activity catalog.
type Recommendation struct {
	Location    string  `json:"location"`
	Dates       string  `json:"dates"`
	Score       float64 `json:"score"`       // 0-10
	Temperature float64 `json:"temperature"` // °C
	Conditions  string  `json:"conditions"`
	Rainfall    float64 `json:"rainfall"` // %
	Reason      string  `json:"reason"`
}

// EventForecast is the fully-parsed reply from the generative forecast
// service for a specific date, location, and activity.
type EventForecast struct {
	Temperature    float64  `json:"temperature"`
	Conditions     string   `json:"conditions"`
	Humidity       float64  `json:"humidity"`
	WindSpeed      float64  `json:"windSpeed"`
	Precipitation  float64  `json:"precipitation"`
	Visibility     float64  `json:"visibility"`
	Recommendation string   `json:"recommendation"`
	Warnings       []string `json:"warnings"`
}

// WeatherSnapshot converts a forecast into the embeddable Event snapshot.
func (f EventForecast) WeatherSnapshot() WeatherData {
	return WeatherData{
		Temperature:   f.Temperature,
		Humidity:      f.Humidity,
		WindSpeed:     f.WindSpeed,
		Conditions:    f.Conditions,
		Visibility:    f.Visibility,
		Precipitation: f.Precipitation,
	}
}

// ClimateNormal holds the historical monthly averages for the region.
type ClimateNormal struct {
	Month    string  `json:"month"`
	Temp     float64 `json:"temp"`     // °C
	Rain     float64 `json:"rain"`     // mm
	Humidity float64 `json:"humidity"` // %
}

// WeatherAlert is a static advisory shown on the alerts screen.
type WeatherAlert struct {
	Type            string   `json:"type"` // "warning", "info", or "alert"
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	Date            string   `json:"date"`
	Severity        string   `json:"severity"`
	Recommendations []string `json:"recommendations"`
}
