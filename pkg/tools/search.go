package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/metaquery/searchmcp/pkg/enrich"
	"github.com/metaquery/searchmcp/pkg/search"
)

// SearchFunc runs a normalized search request. The production value wraps
// search.Search with the server config.
type SearchFunc func(ctx context.Context, req search.Request) (*search.Response, error)

// ContentProvider attaches extracted page content to result URLs.
// *enrich.Enricher implements it.
type ContentProvider interface {
	ContentFor(ctx context.Context, urls []string, maxLen int) []string
}

// Deps carries what the search tools need to execute.
type Deps struct {
	Search   SearchFunc
	Enricher ContentProvider
}

// NewRegistryWithSearchTools builds a registry holding every search tool.
func NewRegistryWithSearchTools(deps Deps) *Registry {
	registry := NewRegistry()
	registry.Register(NewSearchTextTool(deps))
	registry.Register(NewSearchNewsTool(deps))
	registry.Register(NewSearchImagesTool(deps))
	registry.Register(NewSearchVideosTool(deps))
	return registry
}

type textRecord struct {
	Title       string `json:"title"`
	Href        string `json:"href"`
	Body        string `json:"body"`
	FullContent string `json:"full_content,omitempty"`
}

type newsRecord struct {
	Title  string `json:"title"`
	Href   string `json:"href"`
	Body   string `json:"body"`
	Date   string `json:"date,omitempty"`
	Source string `json:"source,omitempty"`
}

type imageRecord struct {
	Title     string `json:"title"`
	Href      string `json:"href"`
	Image     string `json:"image,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

type videoRecord struct {
	Title    string `json:"title"`
	Href     string `json:"href"`
	Body     string `json:"body"`
	Duration string `json:"duration,omitempty"`
}

// NewSearchTextTool builds the web search tool.
func NewSearchTextTool(deps Deps) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        SearchTextName,
			Description: SearchTextDescription,
			Annotations: &mcp.ToolAnnotations{Title: "Web Search"},
			InputSchema: SearchTextSchema(),
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			resp, result := runSearch(ctx, deps, args, SearchTextName, search.CategoryGeneral)
			if result != nil {
				return result, nil
			}

			records := make([]textRecord, len(resp.Results))
			for i, r := range resp.Results {
				records[i] = textRecord{Title: r.Title, Href: r.URL, Body: r.Description}
			}

			if ReadBool(args, "fetch_full_content", false) && deps.Enricher != nil {
				maxLen := ReadIntDefault(args, "max_content_length", enrich.DefaultMaxContentLength)
				urls := make([]string, len(resp.Results))
				for i, r := range resp.Results {
					urls[i] = r.URL
				}
				contents := deps.Enricher.ContentFor(ctx, urls, maxLen)
				for i := range records {
					records[i].FullContent = contents[i]
				}
			}
			return JSONResult(records), nil
		},
	}
}

// NewSearchNewsTool builds the news search tool.
func NewSearchNewsTool(deps Deps) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        SearchNewsName,
			Description: SearchNewsDescription,
			Annotations: &mcp.ToolAnnotations{Title: "News Search"},
			InputSchema: SearchNewsSchema(),
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			resp, result := runSearch(ctx, deps, args, SearchNewsName, search.CategoryNews)
			if result != nil {
				return result, nil
			}
			records := make([]newsRecord, len(resp.Results))
			for i, r := range resp.Results {
				records[i] = newsRecord{
					Title:  r.Title,
					Href:   r.URL,
					Body:   r.Description,
					Date:   r.Published,
					Source: r.SiteName,
				}
			}
			return JSONResult(records), nil
		},
	}
}

// NewSearchImagesTool builds the image search tool.
func NewSearchImagesTool(deps Deps) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        SearchImagesName,
			Description: SearchImagesDescription,
			Annotations: &mcp.ToolAnnotations{Title: "Image Search"},
			InputSchema: SearchImagesSchema(),
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			resp, result := runSearch(ctx, deps, args, SearchImagesName, search.CategoryImages)
			if result != nil {
				return result, nil
			}
			records := make([]imageRecord, len(resp.Results))
			for i, r := range resp.Results {
				records[i] = imageRecord{
					Title:     r.Title,
					Href:      r.URL,
					Image:     r.Image,
					Thumbnail: r.Thumbnail,
				}
			}
			return JSONResult(records), nil
		},
	}
}

// NewSearchVideosTool builds the video search tool.
func NewSearchVideosTool(deps Deps) *Tool {
	return &Tool{
		Tool: mcp.Tool{
			Name:        SearchVideosName,
			Description: SearchVideosDescription,
			Annotations: &mcp.ToolAnnotations{Title: "Video Search"},
			InputSchema: SearchVideosSchema(),
		},
		Execute: func(ctx context.Context, args map[string]any) (*Result, error) {
			resp, result := runSearch(ctx, deps, args, SearchVideosName, search.CategoryVideos)
			if result != nil {
				return result, nil
			}
			records := make([]videoRecord, len(resp.Results))
			for i, r := range resp.Results {
				records[i] = videoRecord{
					Title:    r.Title,
					Href:     r.URL,
					Body:     r.Description,
					Duration: r.Duration,
				}
			}
			return JSONResult(records), nil
		},
	}
}

// runSearch does the shared argument parsing and dispatch. It returns either
// a response to shape or a ready error result.
func runSearch(ctx context.Context, deps Deps, args map[string]any, toolName, category string) (*search.Response, *Result) {
	query, err := ReadString(args, "query", true)
	if err != nil {
		return nil, ErrorResult(toolName, err.Error())
	}
	if query == "" {
		return nil, ErrorResult(toolName, `parameter "query" is required`)
	}

	req := search.Request{
		Query:      query,
		Count:      ReadIntDefault(args, "max_results", search.DefaultSearchCount),
		Category:   category,
		Region:     ReadStringDefault(args, "region", ""),
		SafeSearch: ReadStringDefault(args, "safesearch", ""),
		TimeRange:  ReadStringDefault(args, "timelimit", ""),
	}

	resp, err := deps.Search(ctx, req)
	if err != nil {
		return nil, ErrorResultf(toolName, "search failed: %v", err)
	}
	return resp, nil
}
