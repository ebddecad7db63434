package unifiaccess

import (
	"context"
	"net/http"

	"github.com/cockroachdb/errors"
)

// ListDevices retrieves all Access hardware known to the controller.
func (c *Client) ListDevices(ctx context.Context) ([]Device, error) {
	// The endpoint returns a list of lists of devices, one inner list per
	// hub. Callers get the flattened view.
	grouped, err := request[[][]Device](ctx, c, http.MethodGet, apiPrefix+"/devices", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}

	var devices []Device
	for _, group := range grouped {
		devices = append(devices, group...)
	}

	return devices, nil
}
