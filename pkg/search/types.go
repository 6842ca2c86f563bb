package search

// Search categories. These map onto metasearch verticals; providers declare
// which ones they can serve.
const (
	CategoryGeneral = "general"
	CategoryNews    = "news"
	CategoryImages  = "images"
	CategoryVideos  = "videos"
)

// Request represents a normalized search request.
type Request struct {
	Query      string
	Count      int
	Category   string
	Region     string // country-language pair, e.g. "us-en"
	SafeSearch string // "off", "moderate" or "strict"
	TimeRange  string // "day", "week", "month" or "year"
}

// Result is a normalized search result.
type Result struct {
	Title       string
	URL         string
	Description string
	Published   string
	SiteName    string
	Image       string
	Thumbnail   string
	Duration    string
}

// Response is a normalized search response.
type Response struct {
	Query     string
	Provider  string
	Category  string
	Count     int
	TookMs    int64
	Results   []Result
	NoResults bool
}
