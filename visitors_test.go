package unifiaccess

import (
	"context"
	"net/http"
	"testing"

	"github.com/lexfrei/go-unifi-access/internal/testutil"
)

const (
	visitorID = "b4c5d6e7-2f3a-4b5c-8d9e-0f1a2b3c4d5e"

	createVisitorSuccess = `{
  "code": "SUCCESS",
  "msg": "success",
  "data": {
    "id": "b4c5d6e7-2f3a-4b5c-8d9e-0f1a2b3c4d5e",
    "first_name": "Edsger",
    "last_name": "Dijkstra",
    "status": "UPCOMING",
    "start_time": 1739448000,
    "end_time": 1739534400,
    "resources": [
      {"id": "0be4cda0-0f1a-4b2c-8d3e-4f5a6b7c8d9e", "type": "door"}
    ]
  }
}`

	listVisitorsSuccess = `{
  "code": "SUCCESS",
  "msg": "success",
  "data": [
    {
      "id": "b4c5d6e7-2f3a-4b5c-8d9e-0f1a2b3c4d5e",
      "first_name": "Edsger",
      "last_name": "Dijkstra",
      "status": "VISITING",
      "start_time": 1739448000,
      "end_time": 1739534400
    }
  ]
}`
)

func TestCreateVisitor(t *testing.T) {
	server := testutil.NewMockControllerMulti(t, map[string]http.HandlerFunc{
		"POST /api/v1/developer/visitors": func(w http.ResponseWriter, r *http.Request) {
			var body map[string]any
			testutil.DecodeBody(t, r, &body)

			if body["first_name"] != "Edsger" {
				t.Errorf("first_name = %v, want %q", body["first_name"], "Edsger")
			}
			if body["start_time"] != float64(1739448000) {
				t.Errorf("start_time = %v, want 1739448000", body["start_time"])
			}

			_, _ = w.Write([]byte(createVisitorSuccess))
		},
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	visitor, err := client.CreateVisitor(context.Background(), VisitorRequest{
		FirstName: "Edsger",
		LastName:  "Dijkstra",
		StartTime: 1739448000,
		EndTime:   1739534400,
		Resources: []VisitorResource{{ID: doorID, Type: "door"}},
	})
	if err != nil {
		t.Fatalf("CreateVisitor() failed: %v", err)
	}

	if visitor.ID != visitorID {
		t.Errorf("ID = %q, want %q", visitor.ID, visitorID)
	}
	if visitor.Status != "UPCOMING" {
		t.Errorf("Status = %q, want %q", visitor.Status, "UPCOMING")
	}
	if len(visitor.Resources) != 1 {
		t.Fatalf("len(Resources) = %d, want 1", len(visitor.Resources))
	}
}

func TestListVisitors(t *testing.T) {
	server := testutil.NewMockController(t, "/api/v1/developer/visitors", "test-token", listVisitorsSuccess, http.StatusOK)
	defer server.Close()

	client := newTestClient(t, server.URL)

	visitors, err := client.ListVisitors(context.Background())
	if err != nil {
		t.Fatalf("ListVisitors() failed: %v", err)
	}

	if len(visitors) != 1 {
		t.Fatalf("len(visitors) = %d, want 1", len(visitors))
	}
	if visitors[0].Status != "VISITING" {
		t.Errorf("Status = %q, want %q", visitors[0].Status, "VISITING")
	}
}

func TestGetVisitor(t *testing.T) {
	server := testutil.NewMockController(t, "/api/v1/developer/visitors/"+visitorID, "test-token", createVisitorSuccess, http.StatusOK)
	defer server.Close()

	client := newTestClient(t, server.URL)

	visitor, err := client.GetVisitor(context.Background(), visitorID)
	if err != nil {
		t.Fatalf("GetVisitor() failed: %v", err)
	}

	if visitor.LastName != "Dijkstra" {
		t.Errorf("LastName = %q, want %q", visitor.LastName, "Dijkstra")
	}
}

func TestDeleteVisitor(t *testing.T) {
	server := testutil.NewMockControllerMulti(t, map[string]http.HandlerFunc{
		"DELETE /api/v1/developer/visitors/" + visitorID: func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"code":"SUCCESS","msg":"success","data":null}`))
		},
	})
	defer server.Close()

	client := newTestClient(t, server.URL)

	if err := client.DeleteVisitor(context.Background(), visitorID); err != nil {
		t.Fatalf("DeleteVisitor() failed: %v", err)
	}
}
