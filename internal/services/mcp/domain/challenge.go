package domain

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	apperrors "github.com/louisbranch/hidden.space/internal/platform/errors"
	"github.com/louisbranch/hidden.space/internal/services/challenge/service"
	"github.com/louisbranch/hidden.space/internal/services/challenge/storage"
	"github.com/louisbranch/hidden.space/internal/steg"
)

// ChallengeService is the slice of the challenge service the tools call.
type ChallengeService interface {
	Generate(ctx context.Context, seed uint32, method steg.Method) (service.GenerateResult, error)
	Solve(ctx context.Context, seed uint32, method steg.Method, path string) (service.SolveResult, error)
	Verify(ctx context.Context, seed uint32) (service.VerifyResult, error)
	List(ctx context.Context, pageSize int, pageToken string) (storage.ChallengePage, error)
}

// SeedSource draws a seed when the caller does not pick one.
type SeedSource func() (uint32, error)

// ChallengeGenerateInput represents the MCP tool input for generating a challenge.
type ChallengeGenerateInput struct {
	Seed   *uint32 `json:"seed,omitempty" jsonschema:"optional seed; a random one is drawn when omitted"`
	Method string  `json:"method,omitempty" jsonschema:"optional method (LSB, RED, GREEN, BLUE, ALPHA, PVD); drawn from the seed when omitted"`
}

// ChallengeGenerateResult represents the MCP tool output for a generated challenge.
type ChallengeGenerateResult struct {
	Seed         uint32 `json:"seed" jsonschema:"seed the challenge derives from"`
	Phrase       string `json:"phrase" jsonschema:"hidden phrase"`
	Method       string `json:"method" jsonschema:"concealment method used"`
	Offset       int    `json:"offset" jsonschema:"start position of the message"`
	Layer        int    `json:"layer" jsonschema:"bit plane for single-channel methods"`
	ArtifactPath string `json:"artifact_path" jsonschema:"path of the written PNG"`
	Digest       string `json:"digest" jsonschema:"BLAKE3 digest of the artifact"`
}

// ChallengeSolveInput represents the MCP tool input for solving a challenge.
type ChallengeSolveInput struct {
	Seed   uint32 `json:"seed" jsonschema:"seed the challenge derives from"`
	Method string `json:"method,omitempty" jsonschema:"optional method; drawn from the seed when omitted"`
	Path   string `json:"path,omitempty" jsonschema:"optional artifact path; defaults to the output directory"`
}

// ChallengeSolveResult represents the MCP tool output for a solved challenge.
type ChallengeSolveResult struct {
	Seed         uint32 `json:"seed" jsonschema:"seed the challenge derives from"`
	Method       string `json:"method" jsonschema:"concealment method used"`
	Phrase       string `json:"phrase" jsonschema:"recovered phrase"`
	ArtifactPath string `json:"artifact_path" jsonschema:"path of the artifact read"`
}

// ChallengeVerifyInput represents the MCP tool input for verifying an artifact.
type ChallengeVerifyInput struct {
	Seed uint32 `json:"seed" jsonschema:"seed of a catalogued challenge"`
}

// ChallengeVerifyResult represents the MCP tool output for an artifact check.
type ChallengeVerifyResult struct {
	Seed         uint32 `json:"seed" jsonschema:"seed of the challenge"`
	ArtifactPath string `json:"artifact_path" jsonschema:"path of the artifact checked"`
	Expected     string `json:"expected" jsonschema:"digest recorded at generation"`
	Actual       string `json:"actual" jsonschema:"digest of the artifact now"`
	Intact       bool   `json:"intact" jsonschema:"whether the artifact is unchanged"`
}

// ChallengeListInput represents the MCP tool input for listing the catalog.
type ChallengeListInput struct {
	PageSize  int    `json:"page_size,omitempty" jsonschema:"maximum entries to return (default 10, max 50)"`
	PageToken string `json:"page_token,omitempty" jsonschema:"token from a previous page"`
}

// ChallengeEntry is one catalog record.
type ChallengeEntry struct {
	Seed         uint32 `json:"seed" jsonschema:"seed of the challenge"`
	ArtifactPath string `json:"artifact_path" jsonschema:"path of the artifact"`
	Digest       string `json:"digest" jsonschema:"digest recorded at generation"`
	Width        int    `json:"width" jsonschema:"image width"`
	Height       int    `json:"height" jsonschema:"image height"`
	CreatedAt    string `json:"created_at" jsonschema:"RFC 3339 creation time"`
}

// ChallengeListResult represents the MCP tool output for a catalog page.
type ChallengeListResult struct {
	Challenges    []ChallengeEntry `json:"challenges" jsonschema:"catalog entries ordered by seed"`
	NextPageToken string           `json:"next_page_token,omitempty" jsonschema:"token for the next page"`
}

// ChallengeGenerateTool defines the MCP tool schema for generating a challenge.
func ChallengeGenerateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "challenge_generate",
		Description: "Hides a seed-derived phrase in a generated image and writes it as a PNG",
	}
}

// ChallengeSolveTool defines the MCP tool schema for solving a challenge.
func ChallengeSolveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "challenge_solve",
		Description: "Recovers the hidden phrase from a challenge image given its seed",
	}
}

// ChallengeVerifyTool defines the MCP tool schema for verifying an artifact.
func ChallengeVerifyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "challenge_verify",
		Description: "Checks a catalogued challenge image against its recorded digest",
	}
}

// ChallengeListTool defines the MCP tool schema for listing the catalog.
func ChallengeListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "challenge_list",
		Description: "Lists catalogued challenges ordered by seed",
	}
}

// ChallengeGenerateHandler generates a challenge artifact.
func ChallengeGenerateHandler(svc ChallengeService, seeds SeedSource) mcp.ToolHandlerFor[ChallengeGenerateInput, ChallengeGenerateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ChallengeGenerateInput) (*mcp.CallToolResult, ChallengeGenerateResult, error) {
		method, err := steg.ParseMethod(input.Method)
		if err != nil {
			return nil, ChallengeGenerateResult{}, err
		}
		var seed uint32
		if input.Seed != nil {
			seed = *input.Seed
		} else {
			if seeds == nil {
				return nil, ChallengeGenerateResult{}, errors.New("seed is required")
			}
			if seed, err = seeds(); err != nil {
				return nil, ChallengeGenerateResult{}, fmt.Errorf("draw seed: %w", err)
			}
		}

		generated, err := svc.Generate(ctx, seed, method)
		if err != nil {
			return nil, ChallengeGenerateResult{}, fmt.Errorf("generate challenge %d: %w", seed, err)
		}
		c := generated.Challenge
		return nil, ChallengeGenerateResult{
			Seed:         c.Seed,
			Phrase:       c.Phrase,
			Method:       c.Method.String(),
			Offset:       c.Placement.Offset,
			Layer:        c.Placement.Index,
			ArtifactPath: generated.ArtifactPath,
			Digest:       generated.Digest,
		}, nil
	}
}

// ChallengeSolveHandler recovers a phrase from an artifact.
func ChallengeSolveHandler(svc ChallengeService) mcp.ToolHandlerFor[ChallengeSolveInput, ChallengeSolveResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ChallengeSolveInput) (*mcp.CallToolResult, ChallengeSolveResult, error) {
		method, err := steg.ParseMethod(input.Method)
		if err != nil {
			return nil, ChallengeSolveResult{}, err
		}
		solved, err := svc.Solve(ctx, input.Seed, method, input.Path)
		if err != nil {
			return nil, ChallengeSolveResult{}, fmt.Errorf("solve challenge %d: %w", input.Seed, err)
		}
		return nil, ChallengeSolveResult{
			Seed:         solved.Seed,
			Method:       solved.Method.String(),
			Phrase:       solved.Phrase,
			ArtifactPath: solved.ArtifactPath,
		}, nil
	}
}

// ChallengeVerifyHandler checks an artifact against the catalog. A modified
// artifact is a result, not an error.
func ChallengeVerifyHandler(svc ChallengeService) mcp.ToolHandlerFor[ChallengeVerifyInput, ChallengeVerifyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ChallengeVerifyInput) (*mcp.CallToolResult, ChallengeVerifyResult, error) {
		verified, err := svc.Verify(ctx, input.Seed)
		result := ChallengeVerifyResult{
			Seed:         input.Seed,
			ArtifactPath: verified.ArtifactPath,
			Expected:     verified.Expected,
			Actual:       verified.Actual,
		}
		switch {
		case err == nil:
			result.Intact = true
		case apperrors.GetCode(err) == apperrors.CodeArtifactModified:
			result.Intact = false
		default:
			return nil, ChallengeVerifyResult{}, fmt.Errorf("verify challenge %d: %w", input.Seed, err)
		}
		return nil, result, nil
	}
}

// ChallengeListHandler returns one catalog page.
func ChallengeListHandler(svc ChallengeService) mcp.ToolHandlerFor[ChallengeListInput, ChallengeListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ChallengeListInput) (*mcp.CallToolResult, ChallengeListResult, error) {
		page, err := svc.List(ctx, input.PageSize, input.PageToken)
		if err != nil {
			return nil, ChallengeListResult{}, fmt.Errorf("list challenges: %w", err)
		}
		entries := make([]ChallengeEntry, 0, len(page.Challenges))
		for _, c := range page.Challenges {
			entries = append(entries, ChallengeEntry{
				Seed:         c.Seed,
				ArtifactPath: c.ArtifactPath,
				Digest:       c.Digest,
				Width:        c.Width,
				Height:       c.Height,
				CreatedAt:    c.CreatedAt.Format(time.RFC3339),
			})
		}
		return nil, ChallengeListResult{Challenges: entries, NextPageToken: page.NextPageToken}, nil
	}
}
