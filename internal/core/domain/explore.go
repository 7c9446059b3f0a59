package domain

// ExploreOrder is a named sort option of the explore page.
type ExploreOrder string

// Explore orders.
const (
	ExploreToday   ExploreOrder = "today"
	ExplorePopular ExploreOrder = "popular"
	ExploreRecent  ExploreOrder = "recent"
	ExploreRating  ExploreOrder = "rating"
)

// IsValid returns true if the order is recognised.
func (o ExploreOrder) IsValid() bool {
	_, ok := exploreSortKeys[o]
	return ok
}

// SortKey returns the server-side sort key, or "" for unknown orders.
func (o ExploreOrder) SortKey() string {
	return exploreSortKeys[o]
}

// String returns the string representation.
func (o ExploreOrder) String() string {
	return string(o)
}

// Description returns a human-readable description of the order.
func (o ExploreOrder) Description() string {
	switch o {
	case ExploreToday:
		return "Most viewed today"
	case ExplorePopular:
		return "Most viewed of all time"
	case ExploreRecent:
		return "Newest first"
	case ExploreRating:
		return "Highest rated"
	default:
		return unknownDescription
	}
}

var exploreSortKeys = map[ExploreOrder]string{
	ExploreToday:   "hits_daily_desc",
	ExplorePopular: "hitstotal_desc",
	ExploreRecent:  "date_desc",
	ExploreRating:  "rating_desc",
}

// AllExploreOrders returns the explore orders.
func AllExploreOrders() []ExploreOrder {
	return []ExploreOrder{ExploreToday, ExplorePopular, ExploreRecent, ExploreRating}
}
