// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

/*
Command moviecf predicts movie ratings for one user from a CSV ratings
matrix and prints the top recommendations.

# Usage

	moviecf [-config path] [-ratings path] [-user N] [-top N] [-format text|json]

The user number and list length are 1-based. The user must be between 1
and the number of users; the list length between 1 and the number of
movies.

# Input

Each CSV line is one user and each column one movie. Values are
non-negative integer ratings; 0 means the movie was not rated:

	5,3,0,1
	4,0,0,1
	1,1,0,5
	1,0,0,4
	0,1,5,4

# Configuration

Settings are layered, highest priority first:

  - Command-line flags
  - Environment variables (RATINGS_PATH, RECOMMEND_USER, RECOMMEND_TOP_N,
    REPORT_FORMAT, REPORT_PRECISION, REPORT_COLOR, METRICS_TEXTFILE,
    LOG_LEVEL, LOG_FORMAT, LOG_CALLER)
  - Config file (-config, CONFIG_PATH, or moviecf.yaml in the working
    directory)
  - Built-in defaults

# Output

The report goes to stdout; logs and diagnostics go to stderr. With
METRICS_TEXTFILE set, run metrics are written in the node-exporter
textfile format on exit.

# Exit Codes

	0  success
	1  configuration, input, validation or output failure
	2  invalid command-line flags
*/
package main
