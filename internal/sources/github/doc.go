// Package github implements the ChangeSource port against the GitHub REST
// API using go-github.
//
// # Authentication
//
// A personal access token is resolved lazily through the configured
// TokenProvider. Without a token the source still works against public
// repositories at GitHub's unauthenticated quota.
//
// # Rate limiting
//
// Every API call goes through a dual-strategy limiter: a proactive token
// bucket keeps the request rate under the hourly quota, and the quota
// headers on each response are tracked so the client waits for the reset
// once the remaining budget drops below a reserve. A quota exhaustion
// mid-fetch surfaces a rate limit error carrying the host's reset time;
// no partial change list is returned.
package github
