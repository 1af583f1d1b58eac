package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Exercise is a single logged activity belonging to a user.
// Records are immutable once created.
type Exercise struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	Description string             `bson:"description" json:"description"`
	Duration    int                `bson:"duration" json:"duration"` // Minutes, strictly positive
	Date        time.Time          `bson:"date" json:"date"`         // Calendar date at UTC midnight
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

const (
	// dateLayout is the only accepted input format for dates.
	dateLayout = "2006-01-02"
	// dateStringLayout is the wire rendering, e.g. "Mon Jan 01 2024".
	dateStringLayout = "Mon Jan 02 2006"
)

// ParseDate parses a strict YYYY-MM-DD calendar date. Anything else,
// including out-of-range components, is rejected.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.UTC)
}

// FormatDate renders a date in its weekday-month-day-year wire form.
func FormatDate(t time.Time) string {
	return t.Format(dateStringLayout)
}

// Today returns the current calendar date at UTC midnight.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}
