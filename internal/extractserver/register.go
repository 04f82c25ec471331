package extractserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers the literal extraction tools on the given MCP server:
// extract_object, extract_all_objects, split_js_array, youtube_page_data.
func RegisterTools(server *mcp.Server) {
	registerExtractObject(server)
	registerExtractAllObjects(server)
	registerSplitArray(server)
	registerYouTubePage(server)
}

// ToolCount is the number of tools RegisterTools adds.
const ToolCount = 4
