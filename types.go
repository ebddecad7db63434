package unifiaccess

// User is a person registered in the Access system.
type User struct {
	// ID is a UUID.
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	UserEmail      string    `json:"user_email"`
	EmployeeNumber string    `json:"employee_number"`
	NFCCards       []NFCCard `json:"nfc_cards"`

	// AccessPolicies is not returned by the users endpoints themselves;
	// ListUsersWithAccessPolicies fills it with one extra request per user.
	AccessPolicies []AccessPolicy `json:"access_policies,omitempty"`
}

// NFCCard is an NFC credential known to the controller.
type NFCCard struct {
	// ID is the display name of the card in the UI.
	ID string `json:"id"`
	// Token is the actual NFC token.
	Token string `json:"token"`
}

// AccessPolicy grants a set of users access to a set of resources on a
// schedule. Only the fields needed to assign policies are decoded.
type AccessPolicy struct {
	// ID is a UUID.
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Device is a piece of Access hardware: a hub, a reader, or a door sensor.
type Device struct {
	// Device ids are not UUIDs, unlike every other id in the API.
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Door is a controlled door position with its lock relay.
type Door struct {
	// ID is a UUID.
	ID       string `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	FloorID  string `json:"floor_id"`
	Type     string `json:"type"`

	// IsBindHub reports whether the door is wired to a hub and can be
	// operated remotely.
	IsBindHub bool `json:"is_bind_hub"`

	// DoorLockRelayStatus is "lock" or "unlock".
	DoorLockRelayStatus string `json:"door_lock_relay_status"`

	// DoorPositionStatus is "open", "close", or empty when the door has
	// no position sensor.
	DoorPositionStatus string `json:"door_position_status"`
}

// LockingRuleType enumerates door locking rule types.
type LockingRuleType string

// Locking rule types accepted by the door lock_rule endpoint.
const (
	LockingRuleKeepLock   LockingRuleType = "keep_lock"
	LockingRuleKeepUnlock LockingRuleType = "keep_unlock"
	LockingRuleCustom     LockingRuleType = "custom"
	LockingRuleReset      LockingRuleType = "reset"
	LockingRuleLockEarly  LockingRuleType = "lock_early"
)

// DoorLockingRule is the lock rule currently applied to a door.
type DoorLockingRule struct {
	Type LockingRuleType `json:"type"`
	// EndedTime is the unix time the rule expires, for custom rules.
	EndedTime int64 `json:"ended_time,omitempty"`
}

// Visitor is a temporary user with a bounded validity window.
type Visitor struct {
	// ID is a UUID.
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Remarks     string `json:"remarks,omitempty"`
	MobilePhone string `json:"mobile_phone,omitempty"`
	Email       string `json:"email,omitempty"`

	// Status is one of UPCOMING, VISITING, VISITED, CANCELLED.
	Status string `json:"status,omitempty"`

	// StartTime and EndTime bound the visit window (unix seconds).
	StartTime int64 `json:"start_time"`
	EndTime   int64 `json:"end_time"`

	Resources []VisitorResource `json:"resources,omitempty"`
}

// VisitorResource is a door or door group a visitor may use.
type VisitorResource struct {
	ID string `json:"id"`
	// Type is "door" or "door_group".
	Type string `json:"type"`
}
