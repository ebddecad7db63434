package unifiaccess

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
)

// ListDoors retrieves all doors configured on the controller.
func (c *Client) ListDoors(ctx context.Context) ([]Door, error) {
	doors, err := request[[]Door](ctx, c, http.MethodGet, apiPrefix+"/doors", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list doors")
	}
	return doors, nil
}

// GetDoor retrieves a single door by its UUID.
func (c *Client) GetDoor(ctx context.Context, doorID string) (*Door, error) {
	door, err := request[Door](ctx, c, http.MethodGet, apiPrefix+"/doors/"+doorID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get door "+doorID)
	}
	return &door, nil
}

// UnlockDoor remotely releases the door lock relay once. The door must be
// bound to a hub (Door.IsBindHub); the controller rejects the request
// otherwise.
func (c *Client) UnlockDoor(ctx context.Context, doorID string) error {
	if _, err := c.do(ctx, http.MethodPut, apiPrefix+"/doors/"+doorID+"/unlock", nil); err != nil {
		return errors.Wrap(err, "failed to unlock door "+doorID)
	}
	return nil
}

// SetDoorLockingRule applies a locking rule to a door. For
// LockingRuleCustom, intervalMinutes sets how long the rule stays active;
// it is ignored for every other rule type. LockingRuleReset clears a
// previously applied rule.
func (c *Client) SetDoorLockingRule(ctx context.Context, doorID string, rule LockingRuleType, intervalMinutes int) error {
	body := map[string]any{
		"type": rule,
	}
	if rule == LockingRuleCustom {
		body["interval"] = intervalMinutes
	}

	if _, err := c.do(ctx, http.MethodPut, apiPrefix+"/doors/"+doorID+"/lock_rule", body); err != nil {
		return errors.Wrapf(err, "failed to set locking rule %s on door %s", rule, doorID)
	}
	return nil
}

// GetDoorLockingRule retrieves the locking rule currently applied to a door.
func (c *Client) GetDoorLockingRule(ctx context.Context, doorID string) (*DoorLockingRule, error) {
	rule, err := request[DoorLockingRule](ctx, c, http.MethodGet, apiPrefix+"/doors/"+doorID+"/lock_rule", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get locking rule for door "+doorID)
	}
	return &rule, nil
}
