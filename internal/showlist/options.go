package showlist

// Time buckets.
const (
	BucketAll      = "all"
	BucketToday    = "today"
	BucketTomorrow = "tomorrow"
	BucketWeekend  = "weekend"
	BucketWeek     = "week"
	BucketMonth    = "month"
)

// Sort orders.
const (
	SortDate      = "date"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
)

// AllSentinel is the venue/source value meaning "no restriction".
const AllSentinel = "all"

// Options is the full filter/sort configuration for one view. It is an
// immutable value passed on every invocation; the visible list is a pure
// function of (events, options, now).
type Options struct {
	TimeBucket  string
	Venue       string
	Source      string
	MaxPrice    *float64
	ShowOpenMic bool
	Sort        string
	HorizonDays int
}

func DefaultOptions() Options {
	return Options{
		TimeBucket:  BucketAll,
		Venue:       AllSentinel,
		Source:      AllSentinel,
		MaxPrice:    nil,
		ShowOpenMic: true,
		Sort:        SortDate,
		HorizonDays: 90,
	}
}

func validBucket(b string) bool {
	switch b {
	case BucketAll, BucketToday, BucketTomorrow, BucketWeekend, BucketWeek, BucketMonth:
		return true
	}
	return false
}

func validSort(s string) bool {
	switch s {
	case SortDate, SortPriceLow, SortPriceHigh, SortName:
		return true
	}
	return false
}

// Normalize replaces unrecognized values with their defaults so a bad
// query parameter can never break rendering.
func (o Options) Normalize() Options {
	if !validBucket(o.TimeBucket) {
		o.TimeBucket = BucketAll
	}
	if o.Venue == "" {
		o.Venue = AllSentinel
	}
	if o.Source == "" {
		o.Source = AllSentinel
	}
	if !validSort(o.Sort) {
		o.Sort = SortDate
	}
	if o.HorizonDays <= 0 {
		o.HorizonDays = 90
	}
	return o
}
