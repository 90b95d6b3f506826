// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - SocialAccountStore / SocialTokenStore: Stored vendor credentials (read)
//   - RemoteRepositoryStore / RemoteOrganizationStore: Mirror record upserts
//   - ProjectStore: Project reads for token lookup and webhooks
//   - ConfigStore: Application configuration flags
//   - Importer: Per-provider repository import
//
// # Optional Interfaces
//
//   - ProjectAPI: Remote token endpoint. Only consulted when the
//     configuration directs token lookup away from the local database.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
