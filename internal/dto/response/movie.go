package response

import "cinema-tickets/internal/data/entity"

// MovieListItem denormalizes genres and actors to their display names.
type MovieListItem struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    int32    `json:"duration"`
	Genres      []string `json:"genres"`
	Actors      []string `json:"actors"`
}

// MovieDetailResponse embeds the full genre and actor objects.
type MovieDetailResponse struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Duration    int32           `json:"duration"`
	Genres      []GenreResponse `json:"genres"`
	Actors      []ActorResponse `json:"actors"`
}

func MovieToListItem(movie *entity.Movie) MovieListItem {
	genres := make([]string, len(movie.Genres))
	for i, genre := range movie.Genres {
		genres[i] = genre.Name
	}

	actors := make([]string, len(movie.Actors))
	for i, actor := range movie.Actors {
		actors[i] = actor.FullName()
	}

	return MovieListItem{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genres:      genres,
		Actors:      actors,
	}
}

func MovieToDetailResponse(movie *entity.Movie) MovieDetailResponse {
	genres := make([]GenreResponse, len(movie.Genres))
	for i, genre := range movie.Genres {
		genres[i] = GenreToResponse(genre)
	}

	actors := make([]ActorResponse, len(movie.Actors))
	for i, actor := range movie.Actors {
		actors[i] = ActorToResponse(actor)
	}

	return MovieDetailResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		Duration:    movie.Duration,
		Genres:      genres,
		Actors:      actors,
	}
}
