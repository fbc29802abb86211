package models

import "time"

// Content type keys. Each keys a singleton document in the content collection.
const (
	ContentSpeakers = "speakers"
	ContentSchedule = "schedule"
	ContentSponsors = "sponsors"
	ContentPartners = "partners"
)

// SponsorTiers is the fixed tier vocabulary, in display order.
var SponsorTiers = []string{"platinum", "gold", "silver", "bronze", "community"}

// IsSponsorTier reports whether tier is one of the known tiers.
func IsSponsorTier(tier string) bool {
	for _, t := range SponsorTiers {
		if t == tier {
			return true
		}
	}
	return false
}

// Speaker is a single conference speaker entry.
type Speaker struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Title    string `bson:"title" json:"title"`
	Company  string `bson:"company,omitempty" json:"company,omitempty"`
	Bio      string `bson:"bio,omitempty" json:"bio,omitempty"`
	PhotoURL string `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	LinkedIn string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Twitter  string `bson:"twitter,omitempty" json:"twitter,omitempty"`
}

// ScheduleSession is a single slot on the event schedule. Time is a sortable
// "HH:MM" string; the schedule is kept ordered by it.
type ScheduleSession struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Time        string `bson:"time" json:"time"`
	EndTime     string `bson:"endTime,omitempty" json:"endTime,omitempty"`
	Speaker     string `bson:"speaker,omitempty" json:"speaker,omitempty"`
	Location    string `bson:"location,omitempty" json:"location,omitempty"`
	Track       string `bson:"track,omitempty" json:"track,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Sponsor is a single sponsor entry. Tier must match the tier array the
// entry is stored under.
type Sponsor struct {
	ID          string `bson:"id" json:"id"`
	Name        string `bson:"name" json:"name"`
	Tier        string `bson:"tier" json:"tier"`
	LogoURL     string `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	Website     string `bson:"website,omitempty" json:"website,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
}

// Partner is a community or media partner entry.
type Partner struct {
	ID      string `bson:"id" json:"id"`
	Name    string `bson:"name" json:"name"`
	LogoURL string `bson:"logoUrl,omitempty" json:"logoUrl,omitempty"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
	Kind    string `bson:"kind,omitempty" json:"kind,omitempty"`
}

// SpeakersDocument is the singleton document holding all speakers.
type SpeakersDocument struct {
	ID        string    `bson:"_id" json:"-"`
	Items     []Speaker `bson:"items" json:"speakers"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy string    `bson:"updatedBy" json:"updatedBy"`
}

// ScheduleDocument is the singleton document holding all schedule sessions.
type ScheduleDocument struct {
	ID        string            `bson:"_id" json:"-"`
	Items     []ScheduleSession `bson:"items" json:"sessions"`
	UpdatedAt time.Time         `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy string            `bson:"updatedBy" json:"updatedBy"`
}

// SponsorsDocument is the singleton document holding sponsors grouped by tier.
type SponsorsDocument struct {
	ID        string               `bson:"_id" json:"-"`
	Tiers     map[string][]Sponsor `bson:"tiers" json:"sponsors"`
	UpdatedAt time.Time            `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy string               `bson:"updatedBy" json:"updatedBy"`
}

// PartnersDocument is the singleton document holding all partners.
type PartnersDocument struct {
	ID        string    `bson:"_id" json:"-"`
	Items     []Partner `bson:"items" json:"partners"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy string    `bson:"updatedBy" json:"updatedBy"`
}

// EmptySponsorTiers returns a tier map with every known tier present and empty.
func EmptySponsorTiers() map[string][]Sponsor {
	tiers := make(map[string][]Sponsor, len(SponsorTiers))
	for _, t := range SponsorTiers {
		tiers[t] = []Sponsor{}
	}
	return tiers
}
