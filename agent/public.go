package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/foliosim/foliosim"
	"github.com/foliosim/foliosim/docs"
	"github.com/foliosim/foliosim/renderer"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert in charge of the conversation.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his simulated portfolio: what it is worth,
			how it performed, and whether his savings and withdrawal plans hold up.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume that you know about his assets, check the portfolio first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewTrader creates an expert grounded in Google Search for market context.
func NewTrader() *Expert {
	return &Expert{
		Name: "Trader",
		Description: `This is an expert trader,
		very well aware of all the financial products and institutions,
		and of the latest news about the different funds or companies.
		Ask the Trader whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in trading, you can search and find about anything related to
			financial institutions, companies, markets, funds etc. You leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst creates the expert in charge of the user's simulated portfolio,
// loaded from the given directory.
func NewAnalyst(dir string) *Expert {
	lib := []Function{performanceFunc(dir), projectionFunc(dir)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's portfolio file.
		He can compute the portfolio's performance and project it into the future,
		including withdrawal plan sustainability.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's simulated investment portfolio.
				You know how to use the Tools to extract relevant figures.
				You are part of a team of experts, yours is everything about the user's portfolio.
				They might ask you questions in approximative language, figure out what they meant.

				Use the available tools to get information about the user's portfolio:
				  - assets, investments and their performance
				  - future projections with optional withdrawal plans
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// performanceFunc reports the portfolio's performance, including the TTWOR
// baseline.
func performanceFunc(dir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Performance",
			Description: `Performance lists all assets and investments in the portfolio with their
			current value, performance percentage and the TTWOR baseline.

			` + must(docs.GetTopic("performance")),
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted performance report of the whole portfolio.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			p, err := foliosim.FindPortfolio(dir, "")
			if err != nil {
				return errResponse(id, "Performance", fmt.Errorf("could not load portfolio: %w", err))
			}
			report := foliosim.Analyze(p.Assets)
			return okResponse(id, "Performance", renderer.RenderPerformance(p.Name, report, "EUR"))
		},
	}
}

// projectionFunc simulates the portfolio into the future.
func projectionFunc(dir string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Projection",
			Description: `Projection compounds the portfolio value into the future at a given
			annual return rate, continuing existing savings plans, with an optional monthly withdrawal.

			` + must(docs.GetTopic("projection")),
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"years": {
						Type:        genai.TypeInteger,
						Description: "The display horizon in years. Default is 10.",
					},
					"rate": {
						Type:        genai.TypeNumber,
						Description: "The assumed annual return rate in percent. Default is 5.",
					},
					"withdrawal": {
						Type:        genai.TypeNumber,
						Description: "An optional monthly withdrawal amount, starting immediately.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted projection with one row per year, and the withdrawal sustainability if requested.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			p, err := foliosim.FindPortfolio(dir, "")
			if err != nil {
				return errResponse(id, "Projection", fmt.Errorf("could not load portfolio: %w", err))
			}

			years := intArg(args, "years", 10)
			rate := floatArg(args, "rate", 5)

			var plan *foliosim.WithdrawalPlan
			withPlan := false
			if w := floatArg(args, "withdrawal", 0); w > 0 {
				plan = &foliosim.WithdrawalPlan{
					Amount:   w,
					Interval: foliosim.MonthlyWithdrawal,
					Trigger:  foliosim.TriggerDate,
					Enabled:  true,
				}
				withPlan = true
			}

			proj := foliosim.Project(p.Assets, years, rate, plan)
			out := renderer.RenderProjection(p.Name, proj, "EUR",
				renderer.ProjectionRenderOptions{Yearly: true, WithPlan: withPlan})
			return okResponse(id, "Projection", out)
		},
	}
}

func intArg(args map[string]any, name string, def int) int {
	if v, ok := args[name].(float64); ok {
		return int(v)
	}
	return def
}

func floatArg(args map[string]any, name string, def float64) float64 {
	if v, ok := args[name].(float64); ok {
		return v
	}
	return def
}
