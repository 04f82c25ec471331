package sources

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/anatolykoptev/go_jsobj/internal/engine"
	"github.com/anatolykoptev/go_jsobj/internal/jsobj"
)

// YouTube pages embed their state as assignments inside inline scripts:
// ytInitialData (page contents), ytInitialPlayerResponse (watch pages) and
// one or more ytcfg.set({...}) calls (client configuration).

var (
	ErrNotYouTube  = errors.New("not a youtube url")
	ErrNoPageData  = errors.New("no youtube page data found")
	ytcfgAnchor    = regexp.MustCompile(`ytcfg\.set\(`)
	initialData    = assignmentAnchors("ytInitialData")
	playerResponse = assignmentAnchors("ytInitialPlayerResponse")
)

const maxPageVideos = 50

// assignmentAnchors returns the spellings YouTube has used for a global
// assignment, most specific first.
func assignmentAnchors(name string) []*regexp.Regexp {
	return []*regexp.Regexp{
		regexp.MustCompile(`window\["` + name + `"\]\s*=\s*`),
		regexp.MustCompile(`var ` + name + `\s*=\s*`),
		regexp.MustCompile(`\b` + name + `\s*=\s*`),
	}
}

// YouTubePage is the embedded state of one YouTube page.
type YouTubePage struct {
	URL            string
	Title          string
	CanonicalURL   string
	APIKey         string
	ClientVersion  string
	InitialData    jsobj.Value
	PlayerResponse jsobj.Value
	Config         jsobj.Value
	Videos         []engine.YouTubeVideo
}

// InitialData returns the ytInitialData object embedded in html.
func InitialData(html string) (jsobj.Value, error) {
	return jsobj.FindFirst(html, initialData...)
}

// InitialPlayerResponse returns the ytInitialPlayerResponse object embedded in html.
func InitialPlayerResponse(html string) (jsobj.Value, error) {
	return jsobj.FindFirst(html, playerResponse...)
}

// YTCfg merges the objects passed to every ytcfg.set call, later keys winning.
// Calls with non-object arguments such as ytcfg.set("KEY", value) are ignored.
func YTCfg(html string) (jsobj.Value, error) {
	values, err := jsobj.FindAll(html, ytcfgAnchor)
	if err != nil {
		return jsobj.Value{}, err
	}
	merged := map[string]jsobj.Value{}
	objects := 0
	for _, v := range values {
		if v.Kind() != jsobj.KindObject {
			continue
		}
		objects++
		for k, f := range v.Fields() {
			merged[k] = f
		}
	}
	if objects == 0 {
		return jsobj.Value{}, fmt.Errorf("ytcfg: %w", jsobj.ErrNoValidObjects)
	}
	return jsobj.Object(merged), nil
}

// ParseYouTubePage collects the embedded state of a fetched YouTube page.
// Missing pieces are left zero; an error is returned only when none of
// ytInitialData, ytInitialPlayerResponse and ytcfg are present.
func ParseYouTubePage(html, pageURL string) (*YouTubePage, error) {
	page := &YouTubePage{URL: pageURL}

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		page.Title, _ = doc.Find(`meta[property="og:title"]`).Attr("content")
		if page.Title == "" {
			page.Title = strings.TrimSpace(doc.Find("title").First().Text())
		}
		page.CanonicalURL, _ = doc.Find(`link[rel="canonical"]`).Attr("href")
	}

	found := 0
	if v, err := InitialData(html); err == nil {
		page.InitialData = v
		page.Videos = videoRenderers(v, maxPageVideos)
		found++
	} else {
		slog.Debug("youtube: ytInitialData missing", slog.String("url", pageURL), slog.Any("error", err))
	}
	if v, err := InitialPlayerResponse(html); err == nil {
		page.PlayerResponse = v
		found++
	}
	if v, err := YTCfg(html); err == nil {
		page.Config = v
		page.APIKey, _ = v.LookupString("INNERTUBE_API_KEY")
		page.ClientVersion, _ = v.LookupString("INNERTUBE_CLIENT_VERSION")
		found++
	}

	if found == 0 {
		return nil, fmt.Errorf("%s: %w", pageURL, ErrNoPageData)
	}
	return page, nil
}

// IsYouTubeURL reports whether raw is an http(s) URL on a YouTube host.
func IsYouTubeURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}
	switch strings.ToLower(u.Hostname()) {
	case "youtube.com", "www.youtube.com", "m.youtube.com", "music.youtube.com", "youtu.be":
		return true
	}
	return false
}

// FetchYouTubePage fetches pageURL and parses its embedded state.
func FetchYouTubePage(ctx context.Context, pageURL string) (*YouTubePage, error) {
	if !IsYouTubeURL(pageURL) {
		return nil, fmt.Errorf("%q: %w", pageURL, ErrNotYouTube)
	}
	engine.IncrYouTubePages()

	html, err := engine.FetchPage(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("youtube page: %w", err)
	}
	return ParseYouTubePage(html, pageURL)
}

// videoRenderers walks ytInitialData for videoRenderer entries. Object keys
// are visited in sorted order so results are stable; array order is kept.
func videoRenderers(root jsobj.Value, limit int) []engine.YouTubeVideo {
	var results []engine.YouTubeVideo
	var walk func(v jsobj.Value)
	walk = func(v jsobj.Value) {
		if len(results) >= limit {
			return
		}
		switch v.Kind() {
		case jsobj.KindObject:
			if vr, ok := v.Field("videoRenderer"); ok {
				if video, ok := toVideo(vr); ok {
					results = append(results, video)
					return
				}
			}
			fields := v.Fields()
			keys := make([]string, 0, len(fields))
			for k := range fields {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				walk(fields[k])
			}
		case jsobj.KindArray:
			for _, item := range v.Items() {
				walk(item)
			}
		}
	}
	walk(root)
	return results
}

func toVideo(vr jsobj.Value) (engine.YouTubeVideo, bool) {
	id, ok := vr.LookupString("videoId")
	if !ok || id == "" {
		return engine.YouTubeVideo{}, false
	}
	title := runsText(vr, "title")
	channel := runsText(vr, "ownerText")
	snippet := runsText(vr, "descriptionSnippet")
	if channel != "" && snippet != "" {
		snippet = channel + ": " + snippet
	}
	return engine.YouTubeVideo{
		ID:      id,
		Title:   title,
		Channel: channel,
		URL:     "https://www.youtube.com/watch?v=" + id,
		Snippet: engine.TruncateRunes(snippet, 200, "..."),
	}, true
}

// runsText joins a text field written either as {"runs":[{"text":...}]} or
// {"simpleText":...}.
func runsText(v jsobj.Value, field string) string {
	if s, ok := v.LookupString(field, "simpleText"); ok {
		return s
	}
	runs, ok := v.Lookup(field, "runs")
	if !ok {
		return ""
	}
	var sb strings.Builder
	for _, r := range runs.Items() {
		if s, ok := r.LookupString("text"); ok {
			sb.WriteString(s)
		}
	}
	return sb.String()
}
