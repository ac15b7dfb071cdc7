package interfaces

// -----------------------------------------------------------------------------
// INetworkManager defines the contract for outbound HTTP requests.
// -----------------------------------------------------------------------------

type INetworkManager interface {

	// -----------------------------------------------------------------------------

	// Get performs a single GET request to the specified URL with query
	// parameters. Returns the response body and HTTP status code, or an
	// error when the transport itself failed. No retries.
	Get(url string, params map[string]string) (body []byte, status int, err error)
}
