// SPDX-License-Identifier: Apache-2.0

// Package app contains shared application-layer constants used across the
// go-folio server handlers and the admin client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or shown in the dashboard to describe the outcome of
// an operation. Keeping them in one place ensures consistent wording
// throughout the API.
package app

const (
	// MsgInvalidRequestBody is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidRequestBody = "Invalid request body"

	// MsgInvalidCredentials is returned when the supplied username/password
	// combination does not match the admin account. Unknown usernames and
	// wrong passwords produce the same message on purpose.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgAuthorizationRequired is returned when a protected route is called
	// without a usable Authorization header.
	MsgAuthorizationRequired = "Authorization required"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "Invalid or expired token"

	// MsgInvalidID is returned when the {id} route parameter is not a number.
	MsgInvalidID = "Invalid id"

	// MsgProjectNotFound is returned when a read targets a project id that
	// does not exist.
	MsgProjectNotFound = "Project not found"

	// MsgExperienceNotFound is returned when a read targets an experience
	// entry that does not exist.
	MsgExperienceNotFound = "Experience entry not found"

	// MsgSkillNotFound is returned when a read targets a skill id that does
	// not exist.
	MsgSkillNotFound = "Skill not found"

	// MsgFeatureNotFound is returned when a read targets a feature id that
	// does not exist.
	MsgFeatureNotFound = "Feature not found"

	// MsgSEONotFound is returned when no SEO settings exist for the requested
	// page name.
	MsgSEONotFound = "SEO settings not found"

	// MsgSomethingWentWrong is the client-side fallback shown when the server
	// answers with a body that is not the uniform error shape.
	MsgSomethingWentWrong = "Something went wrong"
)
