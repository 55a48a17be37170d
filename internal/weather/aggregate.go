package weather

import (
	"sort"
	"time"
)

// SummarizeDaily groups forecast samples by calendar date in zone and returns one
// DailySummary per date, ordered by date ascending.
// Temperatures are averaged; the condition is the most frequent description of the day,
// ties going to the description seen first. A nil zone means UTC.
func SummarizeDaily(samples []ForecastSample, zone *time.Location) []DailySummary {
	if zone == nil {
		zone = time.UTC
	}
	if len(samples) == 0 {
		return []DailySummary{}
	}

	type dayBucket struct {
		date     time.Time
		meanTemp float64
		n        int

		// descriptions in first-seen order with their counts
		order  []string
		counts map[string]int
	}

	buckets := make(map[string]*dayBucket)
	for _, s := range samples {
		ts := s.Timestamp.In(zone)
		key := ts.Format("2006-01-02")

		b, ok := buckets[key]
		if !ok {
			b = &dayBucket{
				date:   time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, zone),
				counts: make(map[string]int),
			}
			buckets[key] = b
		}

		// Running mean stays exact when every sample has the same temperature.
		b.n++
		b.meanTemp += (s.Temperature - b.meanTemp) / float64(b.n)
		if _, seen := b.counts[s.Description]; !seen {
			b.order = append(b.order, s.Description)
		}
		b.counts[s.Description]++
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	summaries := make([]DailySummary, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]

		// Pick majority condition; strict > keeps the earliest on ties.
		bestCond := ""
		bestCount := 0
		for _, desc := range b.order {
			if c := b.counts[desc]; c > bestCount {
				bestCount = c
				bestCond = desc
			}
		}

		summaries = append(summaries, DailySummary{
			Date:               b.date,
			AverageTemperature: b.meanTemp,
			Condition:          bestCond,
			Samples:            b.n,
		})
	}

	return summaries
}
