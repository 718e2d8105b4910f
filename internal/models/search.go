package models

import "strings"

// FilterSpec describes the active filter selection. Empty fields do not restrict.
type FilterSpec struct {
	Query         string
	Location      string
	Office        string
	Area          string
	PublishType   string
	FavoritesOnly bool
}

// SortKey names the field a view is ordered by.
type SortKey string

const (
	SortLastDate    SortKey = "lastDate"
	SortPublishDate SortKey = "publishDate"
	SortName        SortKey = "name"
	SortOffice      SortKey = "office"
	SortLocation    SortKey = "location"
)

// SortOrder is the sort direction.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SortSpec describes the active ordering.
type SortSpec struct {
	Key   SortKey
	Order SortOrder
}

// DefaultSort orders by last submission date, soonest first.
func DefaultSort() SortSpec {
	return SortSpec{Key: SortLastDate, Order: OrderAsc}
}

// ParseSortKey accepts the canonical keys case-insensitively plus a few aliases.
// Unknown values map to SortName.
func ParseSortKey(value string) SortKey {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "lastdate", "last-date", "last_date", "deadline":
		return SortLastDate
	case "publishdate", "publish-date", "publish_date", "published":
		return SortPublishDate
	case "office":
		return SortOffice
	case "location":
		return SortLocation
	default:
		return SortName
	}
}

// ParseSortOrder maps anything other than "desc" to ascending.
func ParseSortOrder(value string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(value), string(OrderDesc)) {
		return OrderDesc
	}
	return OrderAsc
}
