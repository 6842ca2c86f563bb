package tools

// Tool names and descriptions shared by the schema builders and executors.

const (
	SearchTextName        = "search_text"
	SearchTextDescription = "Search the web. Returns a JSON array of results with title, href and snippet, optionally including the full extracted page content."

	SearchNewsName        = "search_news"
	SearchNewsDescription = "Search recent news articles. Returns a JSON array of results with title, href, snippet, publication date and source."

	SearchImagesName        = "search_images"
	SearchImagesDescription = "Search for images. Returns a JSON array of results with title, href, image and thumbnail URLs."

	SearchVideosName        = "search_videos"
	SearchVideosDescription = "Search for videos. Returns a JSON array of results with title, href, snippet and duration."
)

// common query parameters shared by every search tool.
func searchProperties() map[string]any {
	return map[string]any{
		"query": map[string]any{
			"type":        "string",
			"description": "The search query",
		},
		"max_results": map[string]any{
			"type":        "integer",
			"description": "Maximum number of results to return (default 10, max 25)",
		},
		"region": map[string]any{
			"type":        "string",
			"description": "Region code such as 'us-en' or 'de-de' (default 'wt-wt', no region)",
		},
		"safesearch": map[string]any{
			"type":        "string",
			"enum":        []string{"on", "moderate", "off"},
			"description": "Safe search level (default 'moderate')",
		},
		"timelimit": map[string]any{
			"type":        "string",
			"enum":        []string{"d", "w", "m", "y"},
			"description": "Restrict results to the past day, week, month or year",
		},
	}
}

// SearchTextSchema returns the JSON schema for the search_text tool.
func SearchTextSchema() map[string]any {
	props := searchProperties()
	props["fetch_full_content"] = map[string]any{
		"type":        "boolean",
		"description": "Fetch each result page and include its extracted text as full_content (slower)",
	}
	props["max_content_length"] = map[string]any{
		"type":        "integer",
		"description": "Maximum length of extracted content per result (default 50000)",
	}
	return map[string]any{
		"type":       "object",
		"properties": props,
		"required":   []string{"query"},
	}
}

// SearchNewsSchema returns the JSON schema for the search_news tool.
func SearchNewsSchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": searchProperties(),
		"required":   []string{"query"},
	}
}

// SearchImagesSchema returns the JSON schema for the search_images tool.
func SearchImagesSchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": searchProperties(),
		"required":   []string{"query"},
	}
}

// SearchVideosSchema returns the JSON schema for the search_videos tool.
func SearchVideosSchema() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": searchProperties(),
		"required":   []string{"query"},
	}
}
