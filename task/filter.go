package task

// Filter is a saved, named filter query. The Query string is stored
// verbatim: it is never validated or pre-compiled at save time, so a
// malformed query only shows itself when it is evaluated.
type Filter struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Query      string `yaml:"query"`
	Color      string `yaml:"color,omitempty"`
	SortOrder  int    `yaml:"sortOrder,omitempty"`
	IsFavorite bool   `yaml:"isFavorite,omitempty"`
}
