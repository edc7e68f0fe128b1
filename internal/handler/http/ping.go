package http

import "net/http"

// ping is the reachability probe used by client connectivity monitors. It is
// deliberately unauthenticated and side-effect free: answering 200 means only
// that the HTTP stack is up and routable from the caller.
func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
