// Package domain contains the core entities of the funding-discovery system:
// registered domains, review candidates, search results and per-batch
// processing statistics. These types represent business concepts and are
// intentionally free of infrastructure concerns so they can be shared across
// packages.
package domain
