// Package view renders the HTML pages of the application from templates
// embedded in the binary.
package view
