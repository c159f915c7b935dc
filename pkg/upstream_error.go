package pkg

import "fmt"

// UpstreamError reports a failed partner API call, keeping the upstream
// status code and raw error body so the boundary can echo them where safe.

type UpstreamError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream call failed op=%s: %s", e.Op, e.Body)
	}
	return fmt.Sprintf("upstream call failed op=%s status=%d body=%s", e.Op, e.StatusCode, e.Body)
}
