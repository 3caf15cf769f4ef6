package watchlist

import "github.com/mmcdole/watchlist/internal/domain"

// Seed returns the built-in sample collection used when no durable state
// exists. Twelve items spanning all four categories.
func Seed() []domain.WatchlistItem {
	return []domain.WatchlistItem{
		{
			ID:       "1",
			Title:    "Inception",
			Type:     domain.MediaTypeMovie,
			Poster:   "https://image.tmdb.org/t/p/w500/9gk7adHYeDvHkCSEqAvQNLV5Uge.jpg",
			Category: domain.CategoryWatched,
			Score:    9,
			Notes:    "Mind-bending masterpiece",
		},
		{
			ID:       "2",
			Title:    "The Dark Knight",
			Type:     domain.MediaTypeMovie,
			Poster:   "https://image.tmdb.org/t/p/w500/qJ2tW6WMUDux911r6m7haRef0WH.jpg",
			Category: domain.CategoryWatched,
			Score:    10,
			Notes:    "Best superhero movie ever",
		},
		{
			ID:       "3",
			Title:    "Interstellar",
			Type:     domain.MediaTypeMovie,
			Poster:   "https://image.tmdb.org/t/p/w500/gEU2QniE6E77NI6lCU6MxlNBvIx.jpg",
			Category: domain.CategoryWatched,
			Score:    9,
		},
		{
			ID:       "4",
			Title:    "Breaking Bad",
			Type:     domain.MediaTypeTV,
			Poster:   "https://image.tmdb.org/t/p/w500/ggFHVNu6YYI5L9pCfOacjizRGt.jpg",
			Category: domain.CategoryWatching,
			Score:    10,
			Notes:    "Season 4, amazing so far",
		},
		{
			ID:       "5",
			Title:    "Stranger Things",
			Type:     domain.MediaTypeTV,
			Poster:   "https://image.tmdb.org/t/p/w500/49WJfeN0moxb9IPfGn8AIqMGskD.jpg",
			Category: domain.CategoryWatching,
			Score:    8,
		},
		{
			ID:       "6",
			Title:    "The Office",
			Type:     domain.MediaTypeTV,
			Poster:   "https://image.tmdb.org/t/p/w500/qWnJzyZhyy74gjpSjIXWmuk0ifX.jpg",
			Category: domain.CategoryWatching,
			Score:    9,
			Notes:    "Comfort show",
		},
		{
			ID:       "7",
			Title:    "Dune",
			Type:     domain.MediaTypeMovie,
			Poster:   "https://image.tmdb.org/t/p/w500/d5NXSklXo0qyIYkgV94XAgMIckC.jpg",
			Category: domain.CategoryPlanning,
			Notes:    "Heard great things",
		},
		{
			ID:       "8",
			Title:    "The Crown",
			Type:     domain.MediaTypeTV,
			Poster:   "https://image.tmdb.org/t/p/w500/1M876KPjulVwppEpldhdc8V4o68.jpg",
			Category: domain.CategoryPlanning,
		},
		{
			ID:       "9",
			Title:    "Oppenheimer",
			Type:     domain.MediaTypeMovie,
			Poster:   "https://image.tmdb.org/t/p/w500/8Gxv8gSFCU0XGDykEGv7zR1n2ua.jpg",
			Category: domain.CategoryPlanning,
		},
		{
			ID:       "10",
			Title:    "Iron Fist",
			Type:     domain.MediaTypeTV,
			Poster:   "https://image.tmdb.org/t/p/w500/4l6KD9HhtD6nm27VCmvFIHY2Quy.jpg",
			Category: domain.CategoryDropped,
			Score:    4,
			Notes:    "Could not get into it",
		},
		{
			ID:       "11",
			Title:    "Jupiter Ascending",
			Type:     domain.MediaTypeMovie,
			Poster:   "https://image.tmdb.org/t/p/w500/2NCcAZ4NLT5PIcHOJRlbIm3Kcpq.jpg",
			Category: domain.CategoryDropped,
			Score:    3,
		},
		{
			ID:       "12",
			Title:    "The Witcher",
			Type:     domain.MediaTypeTV,
			Poster:   "https://image.tmdb.org/t/p/w500/7vjaCdMw15FEbXyLQTVa04URsPm.jpg",
			Category: domain.CategoryDropped,
			Score:    5,
			Notes:    "Season 1 was good, lost interest",
		},
	}
}
