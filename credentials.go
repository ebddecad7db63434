package unifiaccess

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
)

// enrollmentPollInterval is how often EnrollCard re-reads the session while
// waiting for a card to be presented to the reader.
const enrollmentPollInterval = 100 * time.Millisecond

// BeginEnrollment starts an NFC enrollment session on a reader device and
// returns the session id. The reader begins polling for a card.
func (c *Client) BeginEnrollment(ctx context.Context, deviceID string) (string, error) {
	body := map[string]any{
		"device_id": deviceID,
		// Wipe third-party data from UA cards so they read consistently.
		"reset_ua_card": true,
	}

	session, err := request[struct {
		SessionID string `json:"session_id"`
	}](ctx, c, http.MethodPost, apiPrefix+"/credentials/nfc_cards/sessions", body)
	if err != nil {
		return "", errors.Wrap(err, "failed to begin enrollment on device "+deviceID)
	}
	if session.SessionID == "" {
		return "", errors.New("session_id not found in enrollment response")
	}

	return session.SessionID, nil
}

// EnrollmentStatus reads an enrollment session once.
// It returns ErrSessionNotFound if the session was cancelled, (nil, nil) if
// no card has been presented yet, and the scanned card otherwise.
func (c *Client) EnrollmentStatus(ctx context.Context, sessionID string) (*NFCCard, error) {
	data, err := c.do(ctx, http.MethodGet, apiPrefix+"/credentials/nfc_cards/sessions/"+sessionID, nil)
	if err != nil {
		switch {
		case HasAPICode(err, codeSessionNotFound):
			return nil, errors.Wrap(ErrSessionNotFound, "session "+sessionID)
		case HasAPICode(err, codeTokenEmpty):
			// No card presented yet, keep polling.
			return nil, nil
		default:
			return nil, errors.Wrap(err, "failed to read enrollment session "+sessionID)
		}
	}

	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var card NFCCard
	if err := json.Unmarshal(data, &card); err != nil {
		return nil, errors.Wrap(err, "failed to decode enrolled card")
	}
	if card.Token == "" {
		return nil, nil
	}

	return &card, nil
}

// EnrollCard begins an enrollment session on the reader and polls until a
// card is presented or ctx is cancelled. onSession, if non-nil, receives
// the session id as soon as the session exists so callers can cancel it
// out-of-band with CancelEnrollment.
func (c *Client) EnrollCard(ctx context.Context, deviceID string, onSession func(sessionID string)) (*NFCCard, error) {
	sessionID, err := c.BeginEnrollment(ctx, deviceID)
	if err != nil {
		return nil, err
	}
	if onSession != nil {
		onSession(sessionID)
	}

	ticker := time.NewTicker(enrollmentPollInterval)
	defer ticker.Stop()

	for {
		card, err := c.EnrollmentStatus(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if card != nil {
			return card, nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "context canceled while waiting for card")
		}
	}
}

// CancelEnrollment ends an ongoing enrollment session. The reader stops
// polling for a card.
func (c *Client) CancelEnrollment(ctx context.Context, sessionID string) error {
	if _, err := c.do(ctx, http.MethodDelete, apiPrefix+"/credentials/nfc_cards/sessions/"+sessionID, nil); err != nil {
		return errors.Wrap(err, "failed to cancel enrollment session "+sessionID)
	}
	return nil
}

// AssignCard assigns an enrolled NFC card to a user.
func (c *Client) AssignCard(ctx context.Context, userID string, card NFCCard) error {
	body := map[string]any{
		"token": card.Token,
	}

	if _, err := c.do(ctx, http.MethodPut, apiPrefix+"/users/"+userID+"/nfc_cards", body); err != nil {
		return errors.Wrap(err, "failed to assign card to user "+userID)
	}
	return nil
}

// CardHolder returns the id of the user an NFC card token is assigned to,
// or the empty string if the card is unassigned.
func (c *Client) CardHolder(ctx context.Context, token string) (string, error) {
	// The endpoint returns the full card record; only the holder is needed.
	holder, err := request[struct {
		UserID string `json:"user_id"`
	}](ctx, c, http.MethodGet, apiPrefix+"/credentials/nfc_cards/tokens/"+token, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to look up card holder")
	}

	return holder.UserID, nil
}

// RemoveCard deletes an NFC card from the system entirely. If the card is
// assigned to a user it is unassigned first. The card must be re-enrolled
// to be used again.
func (c *Client) RemoveCard(ctx context.Context, card NFCCard) error {
	holder, err := c.CardHolder(ctx, card.Token)
	if err != nil {
		return err
	}

	if holder != "" {
		body := map[string]any{
			"token": card.Token,
		}
		if _, err := c.do(ctx, http.MethodPut, apiPrefix+"/users/"+holder+"/nfc_cards/delete", body); err != nil {
			return errors.Wrap(err, "failed to unassign card from user "+holder)
		}
	}

	if _, err := c.do(ctx, http.MethodDelete, apiPrefix+"/credentials/nfc_cards/tokens/"+card.Token, nil); err != nil {
		return errors.Wrap(err, "failed to delete card")
	}
	return nil
}

// GeneratePINCode asks the controller for a new random PIN code.
func (c *Client) GeneratePINCode(ctx context.Context) (string, error) {
	pin, err := request[string](ctx, c, http.MethodPost, apiPrefix+"/credentials/pin_codes", nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate PIN code")
	}
	return pin, nil
}

// AssignPINCode assigns a PIN code credential to a user.
func (c *Client) AssignPINCode(ctx context.Context, userID, pinCode string) error {
	body := map[string]any{
		"pin_code": pinCode,
	}

	if _, err := c.do(ctx, http.MethodPut, apiPrefix+"/users/"+userID+"/pin_codes", body); err != nil {
		return errors.Wrap(err, "failed to assign PIN code to user "+userID)
	}
	return nil
}
