// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

/*
Package config provides layered configuration for MovieCF.

Configuration is loaded with Koanf v2 from, in increasing priority:
built-in defaults, an optional YAML file, environment variables, and
command-line overrides. The merged result is validated before use.

# Config File

The first existing file is used:
  - $CONFIG_PATH
  - moviecf.yaml
  - moviecf.yml
  - config.yaml
  - /etc/moviecf/config.yaml

Example:

	input:
	  path: data/ratings.csv
	recommend:
	  user: 1
	  top_n: 3
	report:
	  format: text
	  precision: 2
	  color: true
	metrics:
	  textfile: /var/lib/node_exporter/moviecf.prom
	logging:
	  level: info
	  format: console

# Environment Variables

Input:
  - RATINGS_PATH: Ratings file path (default: ratings.csv)

Selection:
  - RECOMMEND_USER: Target user number, 1-based
  - RECOMMEND_TOP_N: Length of each ranked list

Report:
  - REPORT_FORMAT: text, json (default: text)
  - REPORT_PRECISION: Decimal places, 0-6 (default: 2)
  - REPORT_COLOR: Style text headings (default: false)

Metrics:
  - METRICS_TEXTFILE: Prometheus textfile output path (default: disabled)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error, disabled (default: info)
  - LOG_FORMAT: json, console (default: console)
  - LOG_CALLER: true, false (default: false)

Unknown environment variables are ignored.

# Overrides

Command-line flags are passed as koanf paths:

	cfg, err := config.LoadWithKoanf(*configFlag, map[string]interface{}{
	    "recommend.user":  3,
	    "recommend.top_n": 5,
	})

# Validation

Validate rejects an empty input path, negative selections, unknown report
or log formats, unknown log levels and a precision outside 0-6. The upper
bounds of the user and top-N selections depend on the ratings matrix and
are checked by package recommend once it is loaded.
*/
package config
