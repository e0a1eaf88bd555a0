// Package api handles incoming HTTP requests, request validation and
// response formatting for profiles, skills and endorsements. It adapts
// HTTP to the service layer and maps service errors to the JSON error
// envelope.
package api
