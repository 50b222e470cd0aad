// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the content-planner
// pipeline: the request, the per-day content records, and the per-stage
// configuration.
package types

// ThemeRequest is the immutable input to one pipeline run.
type ThemeRequest struct {
	// Theme is the free-text brand or niche description
	// (e.g. "Fitness for Busy Professionals").
	Theme string `json:"theme" yaml:"theme"`

	// Days is the number of calendar days to generate content for.
	// Must be at least 1; callers validate before starting a run.
	Days int `json:"days" yaml:"days"`
}

// ContentEntry is one day's record in the generated calendar.
type ContentEntry struct {
	// Day is the 1-based calendar day. Entries are dense: entry i
	// carries day i+1.
	Day int `json:"day" yaml:"day"`

	// Topic is the subject assigned to this day.
	Topic string `json:"topic" yaml:"topic"`

	// Caption is the post text for this day.
	Caption string `json:"caption" yaml:"caption"`

	// Hashtags is a space-joined list of "#" prefixed tokens,
	// at most five, with no duplicates.
	Hashtags string `json:"hashtags" yaml:"hashtags"`
}

// Plan is the finished output of one pipeline run.
type Plan struct {
	// Theme echoes the request theme.
	Theme string `json:"theme" yaml:"theme"`

	// Days echoes the requested day count.
	Days int `json:"days" yaml:"days"`

	// Topics lists the day topics in calendar order. After a
	// successful run len(Topics) == Days.
	Topics []string `json:"topics" yaml:"topics"`

	// Entries holds one ContentEntry per day, in calendar order.
	// Entries[i].Topic always traces to Topics[i].
	Entries []ContentEntry `json:"entries" yaml:"entries"`
}
