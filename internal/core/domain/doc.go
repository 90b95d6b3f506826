// Package domain defines the core business entities for Doclift's
// remote-repository sync.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - User: A local application account
//   - Project: A documentation project tied to a source repository
//   - SocialAccount / SocialToken: A vendor-linked identity and its OAuth credential
//   - RemoteRepository / RemoteOrganization: Local mirrors of vendor records
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
