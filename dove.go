// Package dove provides a static navigation-site generator.
// It turns a declarative link configuration into a bundle of HTML pages,
// a sitemap and a robots file, optionally caching remote icons locally.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., pongo2/, goldmark/, yaml/).
package dove

// Version is the default build version reported in rendered pages and
// in the icon fetcher's user agent.
const Version = "0.1.0"

// UserAgent identifies dove in outgoing HTTP requests.
const UserAgent = "dove/" + Version
