// Package services contains the core business logic orchestrating
// markdown conversion, snippet publication and the adaptive auto-sync
// scheduler. Services depend only on port interfaces.
package services
