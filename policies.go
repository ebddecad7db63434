package unifiaccess

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
)

// ListAccessPolicies retrieves all access policies configured on the controller.
func (c *Client) ListAccessPolicies(ctx context.Context) ([]AccessPolicy, error) {
	policies, err := request[[]AccessPolicy](ctx, c, http.MethodGet, apiPrefix+"/access_policies", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list access policies")
	}
	return policies, nil
}

// UserAccessPolicies retrieves the access policies assigned to a user.
func (c *Client) UserAccessPolicies(ctx context.Context, userID string) ([]AccessPolicy, error) {
	policies, err := request[[]AccessPolicy](ctx, c, http.MethodGet, apiPrefix+"/users/"+userID+"/access_policies", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get access policies for user "+userID)
	}
	return policies, nil
}

// AssignAccessPolicies replaces the set of access policies assigned to a user.
func (c *Client) AssignAccessPolicies(ctx context.Context, userID string, policyIDs []string) error {
	if policyIDs == nil {
		policyIDs = []string{}
	}

	body := map[string]any{
		"access_policy_ids": policyIDs,
	}

	if _, err := c.do(ctx, http.MethodPut, apiPrefix+"/users/"+userID+"/access_policies", body); err != nil {
		return errors.Wrap(err, "failed to assign access policies to user "+userID)
	}
	return nil
}

// ClearAccessPolicies removes all access policies from a user, making them
// effectively inactive while retaining their NFC card information.
func (c *Client) ClearAccessPolicies(ctx context.Context, userID string) error {
	return c.AssignAccessPolicies(ctx, userID, nil)
}
