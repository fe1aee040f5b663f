// Package gist implements the SnippetService port against the GitHub
// Gists API, with dual-strategy rate limiting: a proactive token
// bucket plus reactive tracking of the X-RateLimit-* response headers.
package gist
