// Package api handles incoming HTTP requests, form decoding and validation,
// and page rendering. It adapts browser requests to the service layer: every
// handler resolves the authenticated user, passes it explicitly to a service
// call, and answers with a rendered view, a redirect, or an error page.
package api
