// Package companion simulates the paired device that receives alerts.
//
// It serves two routes over gorilla/mux:
//
//	POST /api/appmessage  {"transaction_id": "...", "tuples": [...]} -> {"result": <code>}
//	GET  /api/status      {"running": true, "alerts": N, "last_alert": "..."} (last_alert omitted until the first alert)
//
// Malformed bodies, a nil transaction id, an empty tuple list or a non-int
// tuple answer 400, which the watch reports as MSG_SEND_REJECTED. Setting
// fail_with in the YAML config makes every valid message answer with that
// result code instead of MSG_OK, so each failure path on the watch can be
// driven by hand.
package companion
