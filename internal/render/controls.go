package render

import (
	"fmt"
	"strings"

	"comedy-houston/internal/showlist"
)

var bucketLabels = []struct{ value, label string }{
	{showlist.BucketAll, "All Dates"},
	{showlist.BucketToday, "Today"},
	{showlist.BucketTomorrow, "Tomorrow"},
	{showlist.BucketWeekend, "This Weekend"},
	{showlist.BucketWeek, "This Week"},
	{showlist.BucketMonth, "This Month"},
}

var sortLabels = []struct{ value, label string }{
	{showlist.SortDate, "Date"},
	{showlist.SortPriceLow, "Price: Low to High"},
	{showlist.SortPriceHigh, "Price: High to Low"},
	{showlist.SortName, "Name"},
}

func option(value, label, selected string) string {
	sel := ""
	if value == selected {
		sel = ` selected`
	}
	return `<option value="` + escapeAttr(value) + `"` + sel + `>` + escapeHTML(label) + `</option>`
}

// Controls renders the filter bar as a plain GET form, so filtering the
// server-rendered page needs no script at all.
func Controls(venues []string, opts showlist.Options) string {
	var b strings.Builder

	b.WriteString(`<form class="ch-controls" method="get" action="">`)

	b.WriteString(`<select name="filter" class="ch-select">`)
	for _, bucket := range bucketLabels {
		b.WriteString(option(bucket.value, bucket.label, opts.TimeBucket))
	}
	b.WriteString(`</select>`)

	b.WriteString(`<select name="venue" class="ch-select">`)
	b.WriteString(option(showlist.AllSentinel, "All Venues", opts.Venue))
	for _, v := range venues {
		b.WriteString(option(v, v, opts.Venue))
	}
	b.WriteString(`</select>`)

	b.WriteString(`<select name="sort" class="ch-select">`)
	for _, s := range sortLabels {
		b.WriteString(option(s.value, s.label, opts.Sort))
	}
	b.WriteString(`</select>`)

	// A select rather than a checkbox: an unchecked checkbox submits
	// nothing, which would read as the default instead of "hide".
	micValue := "false"
	if opts.ShowOpenMic {
		micValue = "true"
	}
	b.WriteString(`<select name="open_mic" class="ch-select">`)
	b.WriteString(option("true", "Show Open Mics", micValue))
	b.WriteString(option("false", "Hide Open Mics", micValue))
	b.WriteString(`</select>`)

	if opts.MaxPrice != nil {
		b.WriteString(fmt.Sprintf(`<input type="hidden" name="max_price" value="%g">`, *opts.MaxPrice))
	}

	b.WriteString(`<button type="submit" class="ch-apply">Apply</button>`)
	b.WriteString(`</form>`)

	return b.String()
}
