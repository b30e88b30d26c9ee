package account

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"parceltrack/internal/core/domain/model/shipment"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"

	"golang.org/x/crypto/bcrypt"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser constructor.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is the aggregate owning a collection of shipments.
//
// Shipment mutations for one user are serialized through an internal mutex,
// preserving insertion order of the owned collection; operations against
// different users are fully independent.
type User struct {
	username     string
	email        string
	passwordHash []byte

	// shipments holds the owned collection in insertion order.
	shipments []*shipment.Shipment

	mu    sync.Mutex
	guard guard.ConstructorGuard
}

// NewUser creates a user with a bcrypt hash of the password. The plaintext is
// not retained.
func NewUser(username, email, password string) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setUsername(username),
		u.setEmail(email),
	); err != nil {
		return nil, err
	}

	if err := u.setPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was created via NewUser.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// Username returns the unique username.
func (u *User) Username() string {
	return u.username
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// VerifyPassword reports whether the password matches the stored hash.
// The comparison is one-way; no recoverable secret is involved.
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) == nil
}

// AddShipment attaches a shipment exclusively to this user. A second
// shipment with the same tracking number is rejected so that status updates
// and tag edits always address exactly one shipment.
func (u *User) AddShipment(s *shipment.Shipment) error {
	if err := s.Validate(); err != nil {
		return err
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	for _, existing := range u.shipments {
		if existing.TrackingNumber() == s.TrackingNumber() {
			return errs.NewValueIsInvalidErrorWithCause("trackingNumber",
				fmt.Errorf("shipment %s is already tracked", s.TrackingNumber()))
		}
	}
	u.shipments = append(u.shipments, s)
	return nil
}

// Shipments returns a copy of the owned collection in insertion order.
func (u *User) Shipments() []*shipment.Shipment {
	u.mu.Lock()
	defer u.mu.Unlock()
	shipments := make([]*shipment.Shipment, len(u.shipments))
	copy(shipments, u.shipments)
	return shipments
}

// FindShipment locates an owned shipment by tracking number.
// Returns ObjectNotFoundError when this user does not track it.
func (u *User) FindShipment(trackingNumber string) (*shipment.Shipment, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, s := range u.shipments {
		if s.TrackingNumber() == trackingNumber {
			return s, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("trackingNumber", trackingNumber)
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email",
			fmt.Errorf("%s is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("password", err)
	}
	u.passwordHash = hash
	return nil
}
