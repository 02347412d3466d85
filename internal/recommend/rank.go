// MovieCF - User-Based Collaborative Filtering for Movie Ratings
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviecf

package recommend

import (
	"sort"

	"github.com/tomtom215/moviecf/internal/ratings"
)

// ScoreFunc returns the ranking score for movie i, or ok=false to leave
// the movie out of the ranking.
type ScoreFunc func(i int) (score float64, ok bool)

// Rank scores movies 0..n-1 with score, sorts them by descending score and
// keeps at most topN. Equal scores keep ascending movie order. A topN larger
// than the number of scored movies returns all of them; topN <= 0 returns
// an empty list.
func Rank(n int, score ScoreFunc, topN int) []ScoredItem {
	if n <= 0 || topN <= 0 {
		return []ScoredItem{}
	}

	items := make([]ScoredItem, 0, n)
	for i := 0; i < n; i++ {
		if s, ok := score(i); ok {
			items = append(items, ScoredItem{Item: i, Score: s})
		}
	}

	sort.SliceStable(items, func(a, b int) bool {
		return items[a].Score > items[b].Score
	})

	if len(items) > topN {
		items = items[:topN]
	}

	return items
}

// RankUnratedOnly ranks movies with a strictly positive prediction.
// Movies with no evidence (prediction 0) and negative predictions are
// excluded.
func RankUnratedOnly(pred Predictions, topN int) []ScoredItem {
	return Rank(len(pred), func(i int) (float64, bool) {
		return pred[i], pred[i] > 0
	}, topN)
}

// RankCombined ranks every movie, scoring each with the user's own rating
// when it is nonzero and with the prediction otherwise. Nothing is
// filtered, so the result has min(topN, len(pred)) entries.
func RankCombined(pred Predictions, actual []int, topN int) []ScoredItem {
	return Rank(len(pred), func(i int) (float64, bool) {
		if i < len(actual) && actual[i] != ratings.Unrated {
			return float64(actual[i]), true
		}
		return pred[i], true
	}, topN)
}
