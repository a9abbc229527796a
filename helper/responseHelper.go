package helper

import "net/http"

// OrderCreationResponse picks the status and message for a persisted
// order: a fresh insert answers 201, an idempotency replay answers 200
// with a distinct message so clients can tell a dedupe hit from a new
// order.
func OrderCreationResponse(replayed bool) (int, string) {
	if replayed {
		return http.StatusOK, "Order already created"
	}
	return http.StatusCreated, "Order created successfully"
}
