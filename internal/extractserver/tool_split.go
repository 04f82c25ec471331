package extractserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_jsobj/internal/engine"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerSplitArray(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "split_js_array",
		Description: "Split a JavaScript array literal into its top-level element texts. Anonymous function elements (function(a){...}) are kept whole; other elements end at the next comma, so nested arrays or objects containing commas are split apart.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.SplitArrayInput) (*mcp.CallToolResult, engine.SplitArrayOutput, error) {
		out, err := splitArray(input)
		if err != nil {
			return nil, engine.SplitArrayOutput{}, err
		}
		return nil, out, nil
	})
}

func splitArray(input engine.SplitArrayInput) (engine.SplitArrayOutput, error) {
	if input.Array == "" {
		return engine.SplitArrayOutput{}, errors.New("array is required")
	}
	elems, err := engine.SplitArray(input.Array)
	if err != nil {
		return engine.SplitArrayOutput{}, err
	}
	return engine.SplitArrayOutput{Count: len(elems), Elements: elems}, nil
}
