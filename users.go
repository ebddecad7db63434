package unifiaccess

import (
	"context"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
)

// ListUsers retrieves all users registered in the Access system.
// The endpoint supports partial fetches and pagination; neither is used here.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	users, err := request[[]User](ctx, c, http.MethodGet, apiPrefix+"/users", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	return users, nil
}

// GetUser retrieves a single user by their UUID.
func (c *Client) GetUser(ctx context.Context, userID string) (*User, error) {
	user, err := request[User](ctx, c, http.MethodGet, apiPrefix+"/users/"+userID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user "+userID)
	}
	return &user, nil
}

// RegisterUser creates a new user with onboarding time set to now and
// returns the UUID of the created user.
func (c *Client) RegisterUser(ctx context.Context, firstName, lastName, email, employeeNumber string) (string, error) {
	body := map[string]any{
		"first_name":      firstName,
		"last_name":       lastName,
		"user_email":      email,
		"employee_number": employeeNumber,
		"onboard_time":    time.Now().Unix(),
	}

	created, err := request[struct {
		ID string `json:"id"`
	}](ctx, c, http.MethodPost, apiPrefix+"/users", body)
	if err != nil {
		return "", errors.Wrap(err, "failed to register user")
	}
	if created.ID == "" {
		return "", errors.New("id not found in register user response")
	}

	return created.ID, nil
}

// ListUsersWithAccessPolicies is ListUsers plus the access policies of each
// user. The users endpoint does not return policies, so this makes one
// additional request per user and can be slow for large directories.
func (c *Client) ListUsersWithAccessPolicies(ctx context.Context) ([]User, error) {
	users, err := c.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		policies, err := c.UserAccessPolicies(ctx, users[i].ID)
		if err != nil {
			return nil, err
		}
		users[i].AccessPolicies = policies
	}

	return users, nil
}
