package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/verdantlabs/salescope"
	"github.com/verdantlabs/salescope/renderer"
)

const model = "gemini-2.5-pro"

// viewNames are the dashboard views the analyst can fetch.
var viewNames = []string{"overview", "products", "bundles", "customers", "time", "profit", "insights"}

// Analyst is a chat with a retail analyst grounded on the filtered snapshot.
// It answers from the rendered views, which it fetches through the
// render_view tool as the conversation needs them.
type Analyst struct {
	view *salescope.View
	chat *genai.Chat
}

// NewAnalyst creates an analyst for the given filtered view.
func NewAnalyst(v *salescope.View) *Analyst {
	return &Analyst{view: v}
}

// Start opens the chat session, priming the model with the key-insights
// digest and declaring the render_view tool.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	ins := a.view.Insights()

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{FunctionDeclarations: []*genai.FunctionDeclaration{renderViewDeclaration()}},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: fmt.Sprintf(`
You are a retail sales analyst for a cannabis dispensary. You answer questions
about one snapshot of point-of-sale data, already filtered to the period and
categories the user selected.

Ground every figure in the data. Use the render_view tool to fetch the
markdown report of any view (%v) whenever a question needs detail beyond the
digest below. Never invent numbers; if the data cannot answer, say so.

Here is the key-insights digest of the current selection:

%s`, viewNames, renderer.InsightsMarkdown(&ins))}}},
	}

	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends one user message and resolves any tool calls before returning
// the analyst's text answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	return a.send(ctx, &genai.Part{Text: question})
}

func (a *Analyst) send(ctx context.Context, part *genai.Part) (string, error) {
	resp, err := a.chat.Send(ctx, part)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}

	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		// Answer the tool call and ask again until we get text.
		return a.send(ctx, &genai.Part{FunctionResponse: a.renderView(part0.FunctionCall)})
	}
	return part0.Text, nil
}

func renderViewDeclaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "render_view",
		Description: "Renders the named dashboard view of the current selection as markdown.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"view": {
					Type:        genai.TypeString,
					Enum:        viewNames,
					Description: "The dashboard view to render.",
				},
			},
			Required: []string{"view"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The markdown report of the requested view.",
		},
	}
}

// renderView resolves a render_view tool call. Errors go back to the model
// in the response payload, never up the call stack.
func (a *Analyst) renderView(call *genai.FunctionCall) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{ID: call.ID, Name: call.Name}

	name, ok := call.Args["view"].(string)
	if !ok {
		fresp.Response = map[string]any{"error": fmt.Sprintf("argument 'view' is not a string but %T", call.Args["view"])}
		return fresp
	}

	v := a.view
	var out string
	switch name {
	case "overview":
		out = renderer.OverviewMarkdown(v.Overview())
	case "products":
		out = renderer.ProductsMarkdown(v.Products(15, "", ""))
	case "bundles":
		out = renderer.BundlesMarkdown(v.CategoryPairs())
	case "customers":
		out = renderer.CustomersMarkdown(v.Customers(20))
	case "time":
		out = renderer.TimeMarkdown(v.TimePatterns())
	case "profit":
		out = renderer.ProfitabilityMarkdown(v.Profitability(nil, 15, 25))
	case "insights":
		ins := v.Insights()
		out = renderer.InsightsMarkdown(&ins)
	default:
		fresp.Response = map[string]any{"error": fmt.Sprintf("unknown view %q, expected one of %v", name, viewNames)}
		return fresp
	}

	fresp.Response = map[string]any{"output": out}
	return fresp
}
