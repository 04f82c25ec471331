package extractserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/anatolykoptev/go_jsobj/internal/engine"
	"github.com/anatolykoptev/go_jsobj/internal/toolutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerExtractObject(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_object",
		Description: "Extract the JavaScript object or array literal that follows the first match of an anchor regex in page text or a fetched URL. Handles strings, escapes and regex literals inside the span and accepts relaxed literals (unquoted keys, single quotes, trailing commas). Returns the parsed value as JSON.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ExtractInput) (*mcp.CallToolResult, engine.ExtractOutput, error) {
		out, err := extractObject(ctx, input)
		if err != nil {
			return nil, engine.ExtractOutput{}, err
		}
		return nil, out, nil
	})
}

func registerExtractAllObjects(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_all_objects",
		Description: "Extract every JavaScript object or array literal that follows a match of an anchor regex, in document order. Anchor occurrences not followed by a valid literal are skipped and counted as dropped. Useful for repeated calls such as ytcfg.set({...}).",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.ExtractInput) (*mcp.CallToolResult, engine.ExtractAllOutput, error) {
		out, err := extractAllObjects(ctx, input)
		if err != nil {
			return nil, engine.ExtractAllOutput{}, err
		}
		return nil, out, nil
	})
}

func validateExtractInput(input engine.ExtractInput) error {
	if input.Anchor == "" {
		return errors.New("anchor is required")
	}
	if (input.Text == "") == (input.URL == "") {
		return toolutil.ErrInputSource
	}
	if input.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", input.Limit)
	}
	return nil
}

func extractObject(ctx context.Context, input engine.ExtractInput) (engine.ExtractOutput, error) {
	if err := validateExtractInput(input); err != nil {
		return engine.ExtractOutput{}, err
	}
	text, err := toolutil.LoadSource(ctx, input.Text, input.URL)
	if err != nil {
		return engine.ExtractOutput{}, err
	}

	res, err := engine.Extract(text, input.Anchor, engine.ExtractOptions{ScriptsOnly: input.ScriptsOnly})
	if err != nil {
		slog.Debug("extract_object failed", slog.String("anchor", input.Anchor), slog.Any("error", err))
		return engine.ExtractOutput{}, err
	}
	m := res.Matches[0]
	return engine.ExtractOutput{
		Anchor:  res.Anchor,
		Offset:  m.Start,
		Lenient: m.Lenient,
		Value:   m.Value.Interface(),
	}, nil
}

func extractAllObjects(ctx context.Context, input engine.ExtractInput) (engine.ExtractAllOutput, error) {
	if err := validateExtractInput(input); err != nil {
		return engine.ExtractAllOutput{}, err
	}
	text, err := toolutil.LoadSource(ctx, input.Text, input.URL)
	if err != nil {
		return engine.ExtractAllOutput{}, err
	}

	res, err := engine.Extract(text, input.Anchor, engine.ExtractOptions{
		All:         true,
		ScriptsOnly: input.ScriptsOnly,
		Limit:       input.Limit,
	})
	if err != nil {
		return engine.ExtractAllOutput{}, err
	}
	values := make([]any, len(res.Matches))
	for i, m := range res.Matches {
		values[i] = m.Value.Interface()
	}
	return engine.ExtractAllOutput{
		Anchor:  res.Anchor,
		Count:   len(values),
		Dropped: res.Dropped,
		Values:  values,
	}, nil
}
