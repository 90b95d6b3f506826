// Package file provides the TOML-backed configuration store.
//
// Settings live in a single config.toml; nested tables are exposed as
// dotted keys ("bitbucket.consumer_key"). Watch keeps the in-memory
// view current when the file changes on disk, so flag flips like
// allow_private_repos take effect without a process restart.
package file
