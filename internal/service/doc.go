// Package service contains the application use cases for profiles, skills
// and endorsements. Services sit between the HTTP handlers and the stores:
// they own the transaction boundaries, apply the field-patch rules from the
// domain package and turn persistence failures into the sentinel errors the
// API layer maps to status codes.
//
// Every mutating operation runs inside store.RunInTransaction, so a failed
// request never leaves a partial write behind. Reads go straight to the
// stores.
package service
