// Package handlers implements the HTTP API layer for the async-pool-agent.
//
// Handlers delegate to the services layer and only deal with parameter
// parsing, error mapping to HTTP status codes and model-to-API conversion.
//
// # API Endpoints
//
//	┌────────┬──────────────────────────┬──────────────────────────────────────┐
//	│ Method │ Endpoint                 │ Description                          │
//	├────────┼──────────────────────────┼──────────────────────────────────────┤
//	│ GET    │ /health                  │ Liveness, outside /api/v1            │
//	│ GET    │ /api/v1/pool             │ Worker pool snapshot                 │
//	│ GET    │ /api/v1/rounds           │ Round history, paginated             │
//	│ GET    │ /api/v1/rounds/summary   │ Totals and average elapsed time      │
//	│ GET    │ /api/v1/rounds/{id}      │ One round with its slots             │
//	│ POST   │ /api/v1/rounds           │ Run one round now and return it      │
//	└────────┴──────────────────────────┴──────────────────────────────────────┘
//
// GET /rounds query parameters:
//
//   - page (default 1)
//   - pageSize (default 20, capped at 100)
//   - succeeded (true|false, optional)
//
// # Error Mapping
//
//	┌──────────────────────────────┬──────────────────────┐
//	│ Error                        │ HTTP Status          │
//	├──────────────────────────────┼──────────────────────┤
//	│ invalid query or id          │ 400 Bad Request      │
//	│ ResourceNotFoundError        │ 404 Not Found        │
//	│ anything else                │ 500 Internal Error   │
//	└──────────────────────────────┴──────────────────────┘
//
// A round that fails is not an HTTP error: POST /rounds answers 200 with
// succeeded=false, the failing slots and the joined error message.
package handlers
