// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting for the task and habit endpoints. It acts as an
// adapter between external clients and the stores, translating HTTP
// concerns into store operations and domain mutations.
package api
