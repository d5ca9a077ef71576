package request

type MovieRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=255"`
	Description string  `json:"description"`
	Duration    int32   `json:"duration" validate:"required,min=1"` // minutes
	GenreIDs    []int64 `json:"genres" validate:"dive,min=1"`
	ActorIDs    []int64 `json:"actors" validate:"dive,min=1"`
}

// MovieFilter is the parsed form of the movie listing query parameters.
// Handlers build it from the raw query string before anything touches
// persistence.
type MovieFilter struct {
	Title    string
	GenreIDs []int64
	ActorIDs []int64
}
