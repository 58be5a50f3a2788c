// Package services implements the business logic of the async-pool-agent.
//
// Services receive the shared *pool.Pool and the metrics sink through their
// constructors; nothing is looked up from a registry.
//
// # Service Dependency Graph
//
//	Ticker (requestData)        Ticker (requestReturnData)      POST /api/v1/rounds
//	    │                           │                               │
//	    ▼                           ▼                               │
//	TaskService.RequestData     TaskService.RequestReturnData       │
//	    │                           │                               │
//	    ▼                           ▼                               │
//	AsyncService                JoinCoordinator ◄───────────────────┘
//	    │                           │
//	    │                           ▼
//	    │                       AsyncReturnService
//	    │                           │
//	    └─────────────┬─────────────┘
//	                  ▼
//	              pool.Pool ──► metrics.Sink
//
// # AsyncService
//
// FireAndForget submits a task that waits for the simulated I/O latency and
// then emits the payload as an INFO event. The caller gets no handle: a
// discarded task simply never logs.
//
// # AsyncReturnService
//
// Call(label, param) submits one value-returning task and returns its
// future. The work itself is a Remote; SimulatedRemote sleeps for the
// configured latency and answers with a pseudo-random value in [0, 10).
//
// # JoinCoordinator
//
// RunRound is one fan-out / fan-in round:
//
//  1. submit every call, keep the futures in submission order
//  2. wait for all futures OR pool idle OR the last slot deadline;
//     crossing the soft deadline is only logged
//  3. resolve each slot against its own deadline (submission + task timeout)
//  4. all slots ok → sum emitted; any failure → no sum, each slot logged
//  5. elapsed time always emitted, round recorded in the sink
//
// Slot outcomes:
//
//	┌──────────────────┬──────────────────────────────────────────────┐
//	│ Kind             │ Cause                                        │
//	├──────────────────┼──────────────────────────────────────────────┤
//	│ rejected         │ pool saturated, task discarded or aborted    │
//	│ execution        │ the call returned an error or panicked       │
//	│ timeout          │ not resolved before the slot deadline        │
//	│ interrupted_wait │ the caller's context ended while waiting     │
//	│ pool_closed      │ the pool shut down before running the call   │
//	└──────────────────┴──────────────────────────────────────────────┘
//
// Two rounds may overlap when a round outlives the tick period; they share
// the pool and never share a batch.
//
// # TaskService
//
// RequestData and RequestReturnData are the tick handlers. They recover from
// panics and never return an error, so the ticker is never stopped by a
// failed tick.
package services
