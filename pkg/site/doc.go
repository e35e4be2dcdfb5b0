// Package site defines the pages of the agency site, per-visitor navigation
// state and the brand theme shared by every page.
package site
