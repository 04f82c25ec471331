package extractserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_jsobj/internal/engine"
	"github.com/anatolykoptev/go_jsobj/internal/engine/sources"
	"github.com/anatolykoptev/go_jsobj/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerYouTubePage(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_page_data",
		Description: "Fetch a YouTube page and return its embedded state: ytInitialData, ytInitialPlayerResponse and the merged ytcfg configuration, plus title, canonical URL, Innertube API key, client version and the videos listed on the page.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.YouTubePageInput) (*mcp.CallToolResult, engine.YouTubePageOutput, error) {
		if input.URL == "" {
			return nil, engine.YouTubePageOutput{}, errors.New("url is required")
		}

		cacheKey := engine.CacheKey("youtube_page_data", input.URL)
		if out, ok := toolutil.CacheLoadJSON[engine.YouTubePageOutput](ctx, cacheKey); ok {
			return nil, out, nil
		}

		page, err := sources.FetchYouTubePage(ctx, input.URL)
		if err != nil {
			return nil, engine.YouTubePageOutput{}, err
		}
		out := youTubePageOutput(page)
		toolutil.CacheStoreJSON(ctx, cacheKey, out)
		return nil, out, nil
	})
}

func youTubePageOutput(page *sources.YouTubePage) engine.YouTubePageOutput {
	return engine.YouTubePageOutput{
		URL:            page.URL,
		Title:          page.Title,
		CanonicalURL:   page.CanonicalURL,
		APIKey:         page.APIKey,
		ClientVersion:  page.ClientVersion,
		Videos:         page.Videos,
		InitialData:    page.InitialData.Interface(),
		PlayerResponse: page.PlayerResponse.Interface(),
		Config:         page.Config.Interface(),
	}
}
