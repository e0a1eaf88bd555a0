// Package domain holds the Endorsa entities: profiles (people who give and
// receive endorsements), skills (endorsable competencies) and endorsements
// (one profile vouching for another on a skill at a point in time).
//
// Entities validate themselves and know how to apply partial updates; they
// carry no persistence logic.
package domain
