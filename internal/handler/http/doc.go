// Package http implements the headless HTTP front-end of the wallet demo.
//
// It exposes the three wallet events, the current UI state, a server-sent
// event stream of user-facing messages, the build version and Prometheus
// metrics. Request tracing and access logging are handled here before
// requests reach the event coordinator.
package http
