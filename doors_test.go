package unifiaccess

import (
	"context"
	"net/http"
	"testing"

	"github.com/lexfrei/go-unifi-access/internal/testutil"
)

const (
	doorID = "0be4cda0-0f1a-4b2c-8d3e-4f5a6b7c8d9e"

	listDoorsSuccess = `{
  "code": "SUCCESS",
  "msg": "success",
  "data": [
    {
      "id": "0be4cda0-0f1a-4b2c-8d3e-4f5a6b7c8d9e",
      "name": "Front Door",
      "full_name": "HQ - 1F - Front Door",
      "floor_id": "a1b2c3d4-5e6f-4a7b-8c9d-0e1f2a3b4c5d",
      "type": "door",
      "is_bind_hub": true,
      "door_lock_relay_status": "lock",
      "door_position_status": "close"
    },
    {
      "id": "7f8e9d0c-1b2a-4c3d-8e5f-6a7b8c9d0e1f",
      "name": "Workshop",
      "full_name": "HQ - 1F - Workshop",
      "floor_id": "a1b2c3d4-5e6f-4a7b-8c9d-0e1f2a3b4c5d",
      "type": "door",
      "is_bind_hub": false,
      "door_lock_relay_status": "unlock",
      "door_position_status": ""
    }
  ]
}`

	getDoorSuccess = `{
  "code": "SUCCESS",
  "msg": "success",
  "data": {
    "id": "0be4cda0-0f1a-4b2c-8d3e-4f5a6b7c8d9e",
    "name": "Front Door",
    "full_name": "HQ - 1F - Front Door",
    "floor_id": "a1b2c3d4-5e6f-4a7b-8c9d-0e1f2a3b4c5d",
    "type": "door",
    "is_bind_hub": true,
    "door_lock_relay_status": "lock",
    "door_position_status": "close"
  }
}`
)

func TestListDoors(t *testing.T) {
	server := testutil.NewMockController(t, "/api/v1/developer/doors", "test-token", listDoorsSuccess, http.StatusOK)
	defer server.Close()

	client := newTestClient(t, server.URL)

	doors, err := client.ListDoors(context.Background())
	if err != nil {
		t.Fatalf("ListDoors() failed: %v", err)
	}

	if len(doors) != 2 {
		t.Fatalf("len(doors) = %d, want 2", len(doors))
	}
	if !doors[0].IsBindHub {
		t.Error("Front Door should be bound to a hub")
	}
	if doors[1].DoorPositionStatus != "" {
		t.Error("Workshop has no position sensor, status should be empty")
	}
}

func TestGetDoor(t *testing.T) {
	server := testutil.NewMockController(t, "/api/v1/developer/doors/"+doorID, "test-token", getDoorSuccess, http.StatusOK)
	defer server.Close()

	client := newTestClient(t, server.URL)

	door, err := client.GetDoor(context.Background(), doorID)
	if err != nil {
		t.Fatalf("GetDoor() failed: %v", err)
	}

	if door.Name != "Front Door" {
		t.Errorf("Name = %q, want %q", door.Name, "Front Door")
	}
	if door.DoorLockRelayStatus != "lock" {
		t.Errorf("DoorLockRelayStatus = %q, want %q", door.DoorLockRelayStatus, "lock")
	}
}

func TestUnlockDoor(t *testing.T) {
	server := testutil.NewMockControllerMulti(t, map[string]http.HandlerFunc{
		"PUT /api/v1/developer/doors/" + doorID + "/unlock": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code":"SUCCESS","msg":"success","data":null}`))
		},
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	if err := client.UnlockDoor(context.Background(), doorID); err != nil {
		t.Fatalf("UnlockDoor() failed: %v", err)
	}
}

func TestUnlockDoorNotBound(t *testing.T) {
	server := testutil.NewMockControllerMulti(t, map[string]http.HandlerFunc{
		"PUT /api/v1/developer/doors/" + doorID + "/unlock": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code":"CODE_RESOURCE_NOT_BIND_HUB","msg":"door not bound to hub","data":null}`))
		},
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	err := client.UnlockDoor(context.Background(), doorID)
	if err == nil {
		t.Fatal("UnlockDoor() should fail for a door without a hub")
	}
	if !HasAPICode(err, "NOT_BIND_HUB") {
		t.Errorf("error should carry the API code, got: %v", err)
	}
}

func TestSetDoorLockingRule(t *testing.T) {
	tests := []struct {
		name         string
		rule         LockingRuleType
		interval     int
		wantInterval bool
	}{
		{name: "keep unlock", rule: LockingRuleKeepUnlock, wantInterval: false},
		{name: "custom with interval", rule: LockingRuleCustom, interval: 10, wantInterval: true},
		{name: "reset", rule: LockingRuleReset, wantInterval: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewMockControllerMulti(t, map[string]http.HandlerFunc{
				"PUT /api/v1/developer/doors/" + doorID + "/lock_rule": func(w http.ResponseWriter, r *http.Request) {
					var body map[string]any
					testutil.DecodeBody(t, r, &body)

					if body["type"] != string(tt.rule) {
						t.Errorf("type = %v, want %q", body["type"], tt.rule)
					}
					_, hasInterval := body["interval"]
					if hasInterval != tt.wantInterval {
						t.Errorf("interval present = %v, want %v", hasInterval, tt.wantInterval)
					}

					_, _ = w.Write([]byte(`{"code":"SUCCESS","msg":"success","data":null}`))
				},
			})
			defer server.Close()

			client := newTestClient(t, server.URL)

			if err := client.SetDoorLockingRule(context.Background(), doorID, tt.rule, tt.interval); err != nil {
				t.Fatalf("SetDoorLockingRule() failed: %v", err)
			}
		})
	}
}

func TestGetDoorLockingRule(t *testing.T) {
	server := testutil.NewMockControllerMulti(t, map[string]http.HandlerFunc{
		"GET /api/v1/developer/doors/" + doorID + "/lock_rule": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code":"SUCCESS","msg":"success","data":{"type":"custom","ended_time":1739448000}}`))
		},
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	rule, err := client.GetDoorLockingRule(context.Background(), doorID)
	if err != nil {
		t.Fatalf("GetDoorLockingRule() failed: %v", err)
	}

	if rule.Type != LockingRuleCustom {
		t.Errorf("Type = %q, want %q", rule.Type, LockingRuleCustom)
	}
	if rule.EndedTime != 1739448000 {
		t.Errorf("EndedTime = %d, want %d", rule.EndedTime, 1739448000)
	}
}
