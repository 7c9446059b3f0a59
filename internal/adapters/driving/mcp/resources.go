package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/tabula/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for tabula resources.
	uriScheme = "tabula://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "explore",
		Name:        "explore-orders",
		Description: "Orders accepted by the explore_tabs tool",
		MIMEType:    "application/json",
	}, s.handleExploreOrdersResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "explore/{order}",
		Name:        "explore",
		Description: "Top tabs of the explore page in the given order",
		MIMEType:    "application/json",
	}, s.handleExploreResource)
}

// handleExploreOrdersResource lists the explore orders.
func (s *Server) handleExploreOrdersResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type orderInfo struct {
		Order       string `json:"order"`
		Description string `json:"description"`
	}

	orders := domain.AllExploreOrders()
	infos := make([]orderInfo, len(orders))
	for i, o := range orders {
		infos[i] = orderInfo{Order: o.String(), Description: o.Description()}
	}

	return jsonResource(req.Params.URI, infos)
}

// handleExploreResource returns the top explore results for an order.
func (s *Server) handleExploreResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	order := extractExploreOrder(req.Params.URI)
	if !order.IsValid() {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	tabs, err := s.ports.Search.Explore(ctx, order, domain.FilterAll, DefaultLimit)
	if err != nil {
		return nil, fmt.Errorf("exploring %s: %w", order, toolError(err))
	}

	return jsonResource(req.Params.URI, tabList(tabs))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractExploreOrder extracts the order from a URI like tabula://explore/{order}.
func extractExploreOrder(uri string) domain.ExploreOrder {
	const prefix = uriScheme + "explore/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return domain.ExploreOrder(strings.TrimPrefix(uri, prefix))
}
