package engine

// --- Tool input types ---

type ExtractInput struct {
	Text        string `json:"text,omitempty" jsonschema:"HTML or script text to search. Mutually exclusive with url"`
	URL         string `json:"url,omitempty" jsonschema:"Page to fetch and search. Mutually exclusive with text"`
	Anchor      string `json:"anchor" jsonschema:"Regular expression whose match ends right before the literal, e.g. ytInitialData\\s*=\\s*"`
	ScriptsOnly bool   `json:"scripts_only,omitempty" jsonschema:"Search only inline <script> bodies (default: false)"`
	Limit       int    `json:"limit,omitempty" jsonschema:"Max objects returned by extract_all_objects (default: all)"`
}

type SplitArrayInput struct {
	Array string `json:"array" jsonschema:"JavaScript array literal starting with [, elements may be anonymous functions"`
}

type YouTubePageInput struct {
	URL string `json:"url" jsonschema:"YouTube page URL (youtube.com, m.youtube.com, music.youtube.com or youtu.be)"`
}

// --- Output types (JSON responses) ---

type ExtractOutput struct {
	Anchor  string `json:"anchor"`
	Offset  int    `json:"offset"`
	Lenient bool   `json:"lenient,omitempty"`
	Value   any    `json:"value"`
}

type ExtractAllOutput struct {
	Anchor  string `json:"anchor"`
	Count   int    `json:"count"`
	Dropped int    `json:"dropped"`
	Values  []any  `json:"values"`
}

type SplitArrayOutput struct {
	Count    int      `json:"count"`
	Elements []string `json:"elements"`
}

type YouTubeVideo struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Channel string `json:"channel,omitempty"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

type YouTubePageOutput struct {
	URL            string         `json:"url"`
	Title          string         `json:"title,omitempty"`
	CanonicalURL   string         `json:"canonical_url,omitempty"`
	APIKey         string         `json:"api_key,omitempty"`
	ClientVersion  string         `json:"client_version,omitempty"`
	Videos         []YouTubeVideo `json:"videos,omitempty"`
	InitialData    any            `json:"initial_data,omitempty"`
	PlayerResponse any            `json:"player_response,omitempty"`
	Config         any            `json:"config,omitempty"`
}
