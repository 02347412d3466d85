// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

// Package report writes a recommend.Report for people or for programs.
//
// Two formats are supported:
//
//   - text: the four report sections in order (predictions for unrated
//     movies, top unrated movies, top movies overall, RMSE), with numbers
//     at a fixed precision. Headings can be styled with lipgloss.
//   - json: the same content as a single JSON document.
//
// Users and movies are numbered from 1 in both formats.
//
// A report is rendered completely in memory and written with a single
// Write call, so a failed render never leaves partial output behind.
//
// # Usage
//
//	w, err := report.New(cfg.Report, os.Stdout)
//	if err != nil {
//	    return err
//	}
//	if err := w.Write(rep); err != nil {
//	    return err
//	}
package report
