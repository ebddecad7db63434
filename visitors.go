package unifiaccess

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
)

// VisitorRequest describes a visitor to create.
type VisitorRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Remarks     string `json:"remarks,omitempty"`
	MobilePhone string `json:"mobile_phone,omitempty"`
	Email       string `json:"email,omitempty"`

	// StartTime and EndTime bound the visit window (unix seconds).
	StartTime int64 `json:"start_time"`
	EndTime   int64 `json:"end_time"`

	// Resources lists the doors or door groups the visitor may use.
	Resources []VisitorResource `json:"resources,omitempty"`
}

// CreateVisitor registers a visitor and returns the created record.
func (c *Client) CreateVisitor(ctx context.Context, req VisitorRequest) (*Visitor, error) {
	visitor, err := request[Visitor](ctx, c, http.MethodPost, apiPrefix+"/visitors", req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create visitor")
	}
	return &visitor, nil
}

// ListVisitors retrieves all visitors known to the controller.
func (c *Client) ListVisitors(ctx context.Context) ([]Visitor, error) {
	visitors, err := request[[]Visitor](ctx, c, http.MethodGet, apiPrefix+"/visitors", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list visitors")
	}
	return visitors, nil
}

// GetVisitor retrieves a single visitor by their UUID.
func (c *Client) GetVisitor(ctx context.Context, visitorID string) (*Visitor, error) {
	visitor, err := request[Visitor](ctx, c, http.MethodGet, apiPrefix+"/visitors/"+visitorID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get visitor "+visitorID)
	}
	return &visitor, nil
}

// DeleteVisitor removes a visitor. The controller also revokes any
// credentials issued for the visit.
func (c *Client) DeleteVisitor(ctx context.Context, visitorID string) error {
	if _, err := c.do(ctx, http.MethodDelete, apiPrefix+"/visitors/"+visitorID, nil); err != nil {
		return errors.Wrap(err, "failed to delete visitor "+visitorID)
	}
	return nil
}
