// Package web serves the agency site: static pages, the contact form, the
// AI audit wizard and a small JSON API around the audit contract.
package web
