// Package bitbucket syncs a user's Bitbucket repositories and team
// repositories into the local database and registers build webhooks.
//
// Pagination follows the "next" URL embedded in each response body.
// Unlike the GitHub walk, callers receive one element per page (the raw
// page object with its "values" array), not a flattened item sequence.
package bitbucket
