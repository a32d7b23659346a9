package catalog

// searchResponse is the root payload of GET /api/search.
type searchResponse struct {
	Results    []searchResultItem `json:"results"`
	Pagination paginationDTO      `json:"pagination"`
}

// searchResultItem is one row of a search result page.
type searchResultItem struct {
	ID         int      `json:"id"`
	Title      string   `json:"title"`
	Thumb      string   `json:"thumb,omitempty"`
	CoverImage string   `json:"cover_image,omitempty"`
	Year       int      `json:"year,omitempty"`
	Country    string   `json:"country,omitempty"`
	Genre      []string `json:"genre,omitempty"`
	Style      []string `json:"style,omitempty"`
	URI        string   `json:"uri,omitempty"`
}

type paginationDTO struct {
	PerPage int            `json:"perPage"`
	Pages   int            `json:"pages"`
	Page    int            `json:"page"`
	Items   int            `json:"items"`
	URLs    paginationURLs `json:"urls"`
}

type paginationURLs struct {
	Next string `json:"next,omitempty"`
	Last string `json:"last,omitempty"`
}

// releaseResponse is the root payload of GET /api/releases/{id}.
// The proxy reports year as a string on the detail endpoint.
type releaseResponse struct {
	ID        int         `json:"id"`
	Title     string      `json:"title"`
	Year      string      `json:"year,omitempty"`
	Country   string      `json:"country,omitempty"`
	Released  string      `json:"released,omitempty"`
	Genres    []string    `json:"genres,omitempty"`
	Styles    []string    `json:"styles,omitempty"`
	Artists   []artistDTO `json:"artists,omitempty"`
	Tracklist []trackDTO  `json:"tracklist,omitempty"`
	Labels    []labelDTO  `json:"labels,omitempty"`
	Formats   []formatDTO `json:"formats,omitempty"`
	Images    []imageDTO  `json:"images,omitempty"`
	Thumb     string      `json:"thumb,omitempty"`
}

type artistDTO struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name"`
}

type trackDTO struct {
	Position string `json:"position"`
	Title    string `json:"title"`
	Duration string `json:"duration,omitempty"`
	Type     string `json:"type_,omitempty"` // "track" or "heading"
}

type labelDTO struct {
	Name  string `json:"name"`
	CatNo string `json:"catno,omitempty"`
}

type formatDTO struct {
	Name         string   `json:"name"`
	Descriptions []string `json:"descriptions,omitempty"`
}

type imageDTO struct {
	Type        string `json:"type,omitempty"`
	URI         string `json:"uri,omitempty"`
	ResourceURL string `json:"resource_url,omitempty"`
	URI150      string `json:"uri150,omitempty"`
}
