package unifiaccess

import (
	"context"
	"time"
)

// AccessAPIClient defines the interface for UniFi Access developer API
// operations. This interface enables consumers to create mock
// implementations for testing.
//
// All methods mirror the corresponding methods in Client to ensure
// compatibility and ease of use.
//
// Example usage with mocking frameworks:
//
//	// Using gomock:
//	//go:generate mockgen -destination=mocks/access_client.go -package=mocks github.com/lexfrei/go-unifi-access AccessAPIClient
//
//	// Using testify/mock:
//	type MockClient struct {
//	    mock.Mock
//	}
//
//	func (m *MockClient) ListUsers(ctx context.Context) ([]unifiaccess.User, error) {
//	    args := m.Called(ctx)
//	    return args.Get(0).([]unifiaccess.User), args.Error(1)
//	}
//
//nolint:revive // AccessAPIClient is intentionally explicit to avoid confusion with the Client struct
type AccessAPIClient interface {
	// User operations

	// ListUsers retrieves all users registered in the Access system.
	ListUsers(ctx context.Context) ([]User, error)

	// GetUser retrieves a single user by their UUID.
	GetUser(ctx context.Context, userID string) (*User, error)

	// RegisterUser creates a new user and returns the UUID of the created user.
	RegisterUser(ctx context.Context, firstName, lastName, email, employeeNumber string) (string, error)

	// ListUsersWithAccessPolicies is ListUsers plus per-user policies.
	ListUsersWithAccessPolicies(ctx context.Context) ([]User, error)

	// Access policy operations

	// ListAccessPolicies retrieves all access policies on the controller.
	ListAccessPolicies(ctx context.Context) ([]AccessPolicy, error)

	// UserAccessPolicies retrieves the access policies assigned to a user.
	UserAccessPolicies(ctx context.Context, userID string) ([]AccessPolicy, error)

	// AssignAccessPolicies replaces the access policies assigned to a user.
	AssignAccessPolicies(ctx context.Context, userID string, policyIDs []string) error

	// ClearAccessPolicies removes all access policies from a user.
	ClearAccessPolicies(ctx context.Context, userID string) error

	// Device operations

	// ListDevices retrieves all Access hardware known to the controller.
	ListDevices(ctx context.Context) ([]Device, error)

	// Door operations

	// ListDoors retrieves all doors configured on the controller.
	ListDoors(ctx context.Context) ([]Door, error)

	// GetDoor retrieves a single door by its UUID.
	GetDoor(ctx context.Context, doorID string) (*Door, error)

	// UnlockDoor remotely releases the door lock relay once.
	UnlockDoor(ctx context.Context, doorID string) error

	// SetDoorLockingRule applies a locking rule to a door.
	SetDoorLockingRule(ctx context.Context, doorID string, rule LockingRuleType, intervalMinutes int) error

	// GetDoorLockingRule retrieves the locking rule applied to a door.
	GetDoorLockingRule(ctx context.Context, doorID string) (*DoorLockingRule, error)

	// Visitor operations

	// CreateVisitor registers a visitor and returns the created record.
	CreateVisitor(ctx context.Context, req VisitorRequest) (*Visitor, error)

	// ListVisitors retrieves all visitors known to the controller.
	ListVisitors(ctx context.Context) ([]Visitor, error)

	// GetVisitor retrieves a single visitor by their UUID.
	GetVisitor(ctx context.Context, visitorID string) (*Visitor, error)

	// DeleteVisitor removes a visitor and revokes their credentials.
	DeleteVisitor(ctx context.Context, visitorID string) error

	// Credential operations

	// BeginEnrollment starts an NFC enrollment session on a reader device.
	BeginEnrollment(ctx context.Context, deviceID string) (string, error)

	// EnrollmentStatus reads an enrollment session once.
	EnrollmentStatus(ctx context.Context, sessionID string) (*NFCCard, error)

	// EnrollCard begins an enrollment session and polls until a card is presented.
	EnrollCard(ctx context.Context, deviceID string, onSession func(sessionID string)) (*NFCCard, error)

	// CancelEnrollment ends an ongoing enrollment session.
	CancelEnrollment(ctx context.Context, sessionID string) error

	// AssignCard assigns an enrolled NFC card to a user.
	AssignCard(ctx context.Context, userID string, card NFCCard) error

	// CardHolder returns the id of the user a card token is assigned to.
	CardHolder(ctx context.Context, token string) (string, error)

	// RemoveCard deletes an NFC card from the system entirely.
	RemoveCard(ctx context.Context, card NFCCard) error

	// GeneratePINCode asks the controller for a new random PIN code.
	GeneratePINCode(ctx context.Context) (string, error)

	// AssignPINCode assigns a PIN code credential to a user.
	AssignPINCode(ctx context.Context, userID, pinCode string) error

	// System log operations

	// FetchSystemLogs retrieves system log entries for a topic.
	FetchSystemLogs(ctx context.Context, topic SystemLogTopic, since time.Time) ([]SystemLogEntry, error)
}
