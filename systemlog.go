package unifiaccess

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
)

// SystemLogTopic selects which category of system log events to fetch.
type SystemLogTopic string

// System log topics accepted by the controller.
const (
	TopicAll           SystemLogTopic = "all"
	TopicDoorOpenings  SystemLogTopic = "door_openings"
	TopicCritical      SystemLogTopic = "critical"
	TopicUpdates       SystemLogTopic = "updates"
	TopicDeviceEvents  SystemLogTopic = "device_events"
	TopicAdminActivity SystemLogTopic = "admin_activity"
	TopicVisitor       SystemLogTopic = "visitor"
)

// SystemLogEntry is one hit from the system log. The controller returns
// search-engine shaped documents with metadata fields alongside the source.
type SystemLogEntry struct {
	Timestamp string          `json:"@timestamp"`
	ID        string          `json:"_id"`
	Source    SystemLogSource `json:"_source"`
}

// SystemLogSource is the event payload of a system log entry. The shapes of
// these fields vary per event type and controller release, so they are left
// raw for callers to interpret.
type SystemLogSource struct {
	Actor          json.RawMessage `json:"actor"`
	Authentication json.RawMessage `json:"authentication"`
	Event          json.RawMessage `json:"event"`
	Target         json.RawMessage `json:"target"`
}

// systemLogPage is one page of the system log response.
type systemLogPage struct {
	Hits []SystemLogEntry `json:"hits"`
}

// FetchSystemLogs retrieves system log entries for a topic. A zero since
// fetches from the beginning of the log. The endpoint paginates; only the
// first page is fetched.
func (c *Client) FetchSystemLogs(ctx context.Context, topic SystemLogTopic, since time.Time) ([]SystemLogEntry, error) {
	body := map[string]any{
		"topic": topic,
		"since": nil,
	}
	if !since.IsZero() {
		body["since"] = since.Unix()
	}

	// The endpoint is a POST despite being a read.
	page, err := request[systemLogPage](ctx, c, http.MethodPost, apiPrefix+"/system/logs", body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch system logs for topic %s", topic)
	}

	return page.Hits, nil
}
