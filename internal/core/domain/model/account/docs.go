// Package account contains the User aggregate.
//
// A User owns a collection of shipments exclusively: no shipment is ever
// shared between users, and every shipment lookup goes through its owner.
// Credentials are stored as bcrypt hashes, which salt internally; the
// plaintext password is never retained and never compared directly.
package account
