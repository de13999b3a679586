// Package session implements the signed cookie session of the web front end
// and the expiring password-reset tokens.
//
// Both are HS256 JWTs keyed by the application secret. A session holds the
// logged-in courier id, the store slugs the visitor administers and pending
// flash messages. A tampered or expired cookie simply yields an empty
// session.
package session
