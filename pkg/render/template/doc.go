// Package template defines the template engine contract page renderers rely
// on. The pongo subpackage provides the implementation used by the site.
package template
