// Package services contains the core orchestration for remote
// repository sync: per-provider import dispatch and project token
// lookup. Services depend only on domain types and driven ports;
// request handlers above this layer decide when to call them.
package services
