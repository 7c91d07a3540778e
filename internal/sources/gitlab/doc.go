// Package gitlab implements the ChangeSource port against the GitLab REST
// API, demonstrating the second host variant. It authenticates with a
// private token and follows Link-header pagination.
package gitlab
