// Package github syncs a user's GitHub repositories and organizations
// into the local database and registers build webhooks.
//
// Pagination follows the "next" relation of the HTTP Link header until
// absent, accumulating each page's JSON array into one flat sequence.
// Responses whose shape does not match the API contract surface as a
// SyncError telling the user to reconnect their account.
package github
