package entities

import "time"

// DateFormat is the calendar-day wire format used everywhere in this system.
const DateFormat = "2006-01-02"

// Calendar status values.
const (
	CalendarActive    = "active"
	CalendarCompleted = "completed"
	CalendarAbandoned = "abandoned"
)

// Activity status values.
const (
	StatusPending     = "pending"
	StatusCompleted   = "completed"
	StatusSkipped     = "skipped"
	StatusRescheduled = "rescheduled"
)

// Activity categories.
const (
	CategoryPlanting      = "planting"
	CategoryIrrigation    = "irrigation"
	CategoryFertilization = "fertilization"
	CategorySpraying      = "spraying"
	CategoryWeeding       = "weeding"
	CategoryMaintenance   = "maintenance"
	CategoryHarvesting    = "harvesting"
)

type Location struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	State    string  `json:"state,omitempty"`
	District string  `json:"district,omitempty"`
	Village  string  `json:"village,omitempty"`
	Geohash  string  `json:"geohash,omitempty"`
}

type OptimalConditions struct {
	TempMin             float64           `json:"tempMin"`
	TempMax             float64           `json:"tempMax"`
	RainfallThresholdMm float64           `json:"rainfallThresholdMm"`
	SoilPh              [2]float64        `json:"soilPh"`
	CriticalStages      map[string]string `json:"criticalStages,omitempty"`
}

// Activity is one dated task inside a Calendar. Name is the lookup key and is
// unique within a calendar. OriginalDate and DayOffset never change after
// generation; ScheduledDate moves when the rescheduler shifts the task.
type Activity struct {
	Name               string `json:"name"`
	Category           string `json:"category"`
	Description        string `json:"description"`
	Source             string `json:"source"`
	ScheduledDate      string `json:"scheduledDate"` // YYYY-MM-DD
	OriginalDate       string `json:"originalDate"`
	DayOffset          int    `json:"dayOffset"`
	Status             string `json:"status"` // pending|completed|skipped|rescheduled
	Notes              string `json:"notes,omitempty"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
	RescheduledAt      string `json:"rescheduledAt,omitempty"`
	ReschedulingReason string `json:"reschedulingReason,omitempty"`
}

type HistoryChange struct {
	Activity string `json:"activity"`
	OldDate  string `json:"oldDate"`
	NewDate  string `json:"newDate"`
	Reason   string `json:"reason"`
}

// HistoryEntry records one rescheduling pass. The history list is append-only;
// entries are never edited or removed.
type HistoryEntry struct {
	Timestamp string          `json:"timestamp"`
	Changes   []HistoryChange `json:"changes"`
	Reason    string          `json:"reason"`
}

// Calendar is the mutable aggregate for one crop cycle. OptimalConditions is a
// snapshot taken from the catalog at generation time; later catalog edits do
// not flow into existing calendars.
type Calendar struct {
	CalendarID          string            `gorm:"primaryKey" json:"calendarId"`
	UserID              string            `gorm:"index" json:"userId"`
	Crop                string            `json:"crop"`
	SowingDate          string            `json:"sowingDate"`
	ExpectedHarvestDate string            `json:"expectedHarvestDate"`
	Location            Location          `gorm:"serializer:json" json:"location"`
	DurationDays        int               `json:"durationDays"`
	Activities          []Activity        `gorm:"serializer:json" json:"lifecycle"`
	ReschedulingHistory []HistoryEntry    `gorm:"serializer:json" json:"reschedulingHistory"`
	OptimalConditions   OptimalConditions `gorm:"serializer:json" json:"optimalConditions"`
	Status              string            `gorm:"index" json:"status"` // active|completed|abandoned
	DataSource          string            `json:"dataSource,omitempty"`
	CreatedAt           time.Time         `json:"createdAt"`
	UpdatedAt           time.Time         `json:"updatedAt"`
}
