package sources

import (
	"context"
	"errors"
	"testing"

	"github.com/anatolykoptev/go_jsobj/internal/jsobj"
)

const channelPage = `<html><head><title>Chan - YouTube</title>
<meta property="og:title" content="Chan">
<link rel="canonical" href="https://www.youtube.com/@chan">
</head><body>
<script>ytcfg.set({"INNERTUBE_API_KEY":"AIzaKey","INNERTUBE_CLIENT_VERSION":"2.2024"}); ytcfg.set("EXPERIMENT", true); ytcfg.set({"INNERTUBE_CLIENT_VERSION":"2.2025","HL":"en"});</script>
<script>var ytInitialData = {"contents":{"list":[{"videoRenderer":{"videoId":"abcdefghijk","title":{"runs":[{"text":"First "},{"text":"video"}]},"ownerText":{"runs":[{"text":"Chan"}]},"descriptionSnippet":{"runs":[{"text":"about it"}]}}},{"videoRenderer":{"videoId":"bcdefghijkl","title":{"simpleText":"Second"}}},{"videoRenderer":{"title":{"simpleText":"no id"}}}]}};</script>
<script>window["ytInitialPlayerResponse"] = {videoDetails:{videoId:'abcdefghijk',title:'First video'}};</script>
</body></html>`

func TestParseYouTubePage(t *testing.T) {
	page, err := ParseYouTubePage(channelPage, "https://www.youtube.com/@chan/videos")
	if err != nil {
		t.Fatalf("ParseYouTubePage() error = %v", err)
	}

	if page.Title != "Chan" {
		t.Errorf("Title = %q, want Chan", page.Title)
	}
	if page.CanonicalURL != "https://www.youtube.com/@chan" {
		t.Errorf("CanonicalURL = %q", page.CanonicalURL)
	}
	if page.APIKey != "AIzaKey" {
		t.Errorf("APIKey = %q, want AIzaKey", page.APIKey)
	}
	if page.ClientVersion != "2.2025" {
		t.Errorf("ClientVersion = %q, want the later ytcfg value 2.2025", page.ClientVersion)
	}
	if hl, _ := page.Config.LookupString("HL"); hl != "en" {
		t.Errorf("Config HL = %q, want en", hl)
	}
	if title, _ := page.PlayerResponse.LookupString("videoDetails", "title"); title != "First video" {
		t.Errorf("player title = %q", title)
	}

	if len(page.Videos) != 2 {
		t.Fatalf("got %d videos, want 2: %+v", len(page.Videos), page.Videos)
	}
	first := page.Videos[0]
	if first.ID != "abcdefghijk" || first.Title != "First video" || first.Channel != "Chan" {
		t.Errorf("first video = %+v", first)
	}
	if first.Snippet != "Chan: about it" {
		t.Errorf("first snippet = %q", first.Snippet)
	}
	if first.URL != "https://www.youtube.com/watch?v=abcdefghijk" {
		t.Errorf("first URL = %q", first.URL)
	}
	if page.Videos[1].Title != "Second" {
		t.Errorf("second title = %q", page.Videos[1].Title)
	}
}

func TestParseYouTubePagePartial(t *testing.T) {
	html := `<title> Only config </title><script>ytcfg.set({'INNERTUBE_API_KEY': 'k'})</script>`
	page, err := ParseYouTubePage(html, "https://youtu.be/x")
	if err != nil {
		t.Fatalf("ParseYouTubePage() error = %v", err)
	}
	if page.Title != "Only config" {
		t.Errorf("Title = %q", page.Title)
	}
	if page.APIKey != "k" {
		t.Errorf("APIKey = %q, want k", page.APIKey)
	}
	if !page.InitialData.IsNull() || !page.PlayerResponse.IsNull() {
		t.Error("expected missing pieces to stay null")
	}
	if len(page.Videos) != 0 {
		t.Errorf("expected no videos, got %d", len(page.Videos))
	}
}

func TestParseYouTubePageNoData(t *testing.T) {
	_, err := ParseYouTubePage("<html><body>nothing here</body></html>", "https://www.youtube.com/")
	if !errors.Is(err, ErrNoPageData) {
		t.Errorf("expected ErrNoPageData, got %v", err)
	}
}

func TestInitialDataSpellings(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{"window index", `window["ytInitialData"] = {"k":1};`},
		{"var", `var ytInitialData={"k":1};`},
		{"bare", `ytInitialData = {"k":1};`},
		{"first spelling broken", `window["ytInitialData"] = loadLater(); var ytInitialData = {"k":1};`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := InitialData(tt.html)
			if err != nil {
				t.Fatalf("InitialData() error = %v", err)
			}
			if !v.Equal(jsobj.Object(map[string]jsobj.Value{"k": jsobj.Number("1")})) {
				t.Errorf("InitialData() = %v", v.Interface())
			}
		})
	}

	if _, err := InitialData(`ytInitialPlayerResponse = {"k":1}`); err == nil {
		t.Error("player response must not match the initial data anchors")
	}
}

func TestYTCfgNoObjects(t *testing.T) {
	if _, err := YTCfg(`ytcfg.set("A", 1); ytcfg.set("B", 2);`); !errors.Is(err, jsobj.ErrNoValidObjects) {
		t.Errorf("expected ErrNoValidObjects, got %v", err)
	}
	if _, err := YTCfg(`no config`); !errors.Is(err, jsobj.ErrNoAnchorMatch) {
		t.Errorf("expected ErrNoAnchorMatch, got %v", err)
	}
}

func TestIsYouTubeURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://www.youtube.com/watch?v=abcdefghijk", true},
		{"https://youtube.com/@chan", true},
		{"http://m.youtube.com/watch?v=x", true},
		{"https://music.youtube.com/playlist?list=x", true},
		{"https://youtu.be/abcdefghijk", true},
		{"https://WWW.YOUTUBE.COM/", true},
		{"https://example.com/watch?v=x", false},
		{"https://youtube.com.evil.test/", false},
		{"ftp://youtube.com/", false},
		{"not a url", false},
	}
	for _, tt := range tests {
		if got := IsYouTubeURL(tt.url); got != tt.want {
			t.Errorf("IsYouTubeURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestFetchYouTubePageRejectsOtherHosts(t *testing.T) {
	_, err := FetchYouTubePage(context.Background(), "https://example.com/")
	if !errors.Is(err, ErrNotYouTube) {
		t.Errorf("expected ErrNotYouTube, got %v", err)
	}
}
