// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"fmt"
	"maps"
)

// DateTimeType selects how timestamp fields are typed.
type DateTimeType string

// Supported date-time representations.
const (
	DateTimeTimestamp DateTimeType = "Timestamp" // SDK wrapper type
	DateTimeDate      DateTimeType = "Date"      // native date type
)

// Options are per-target generation options.
type Options struct {
	DateTimeType DateTimeType

	// Extra carries every other option key through to the templates untouched.
	Extra map[string]any

	// models maps normalized collection paths to model keys; set by Prepare
	// so references resolve to disambiguated model names.
	models map[string]string
}

// ParseOptions reads a flat option record. Only dateTimeType is interpreted.
func ParseOptions(raw map[string]any) (Options, error) {
	opts := Options{DateTimeType: DateTimeTimestamp, Extra: make(map[string]any)}
	for k, v := range raw {
		if k != "dateTimeType" {
			opts.Extra[k] = v
			continue
		}
		s, _ := v.(string)
		switch DateTimeType(s) {
		case DateTimeTimestamp, DateTimeDate:
			opts.DateTimeType = DateTimeType(s)
		default:
			return Options{}, fmt.Errorf("invalid dateTimeType %v: must be %q or %q", v, DateTimeDate, DateTimeTimestamp)
		}
	}
	return opts, nil
}

// NativeDates reports whether timestamps should use the native date type.
func (o Options) NativeDates() bool {
	return o.DateTimeType == DateTimeDate
}

// String returns the option value under key from Extra, or def.
func (o Options) String(key, def string) string {
	if s, ok := o.Extra[key].(string); ok && s != "" {
		return s
	}
	return def
}

func (o Options) clone() Options {
	c := o
	c.Extra = maps.Clone(o.Extra)
	if c.Extra == nil {
		c.Extra = make(map[string]any)
	}
	return c
}
