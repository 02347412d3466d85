// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps a thread-safe singleton validator (struct info is cached after
// first use) and translates field errors into short human-readable messages
// while keeping the field, tag and parameter available to callers that map
// them onto their own error types.
//
// # Usage
//
//	type Selection struct {
//	    User  int `validate:"gte=1,ltefield=Users"`
//	    Users int
//	}
//
//	if verr := validation.ValidateStruct(&sel); verr != nil {
//	    for _, e := range verr.Errors() {
//	        fmt.Println(e.Field(), e.Tag(), e.Param(), e.Value())
//	    }
//	}
//
// Errors are reported in struct field order, so callers that only surface
// the first error get the first field that failed.
//
// The gte and ltefield bound tags have dedicated messages ("User must be at
// least 1", "User must not exceed Users"); any other tag gets a generic
// "<Field> failed <tag> validation".
//
// # Validator Options
//
// The validator is created with WithRequiredStructEnabled, the behavior
// that becomes the default in validator v11.
package validation
