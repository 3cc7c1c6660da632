package hypr

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"strings"
)

// Query sends one batched read over the request/response socket and
// returns the JSON document for each requested resource, in request
// order. A fresh connection is opened per call; Hyprland closes it
// after writing the full response.
//
// The response concatenates the documents with no separator, so they
// are split back apart by decoding one balanced JSON value at a time.
// The document count is not checked against the request count.
func Query(resources ...string) ([]json.RawMessage, error) {
	path, err := SocketPath(QuerySocket)
	if err != nil {
		return nil, err
	}

	conn, err := net.Dial("unix", path)
	if err != nil {
		return nil, &ConnError{Op: "open query socket", Err: err}
	}
	defer conn.Close()

	if _, err := conn.Write([]byte(batchRequest(resources))); err != nil {
		return nil, &ConnError{Op: "write to query socket", Err: err}
	}

	response, err := io.ReadAll(conn)
	if err != nil {
		return nil, &ConnError{Op: "read from query socket", Err: err}
	}

	return splitDocuments(response)
}

// batchRequest formats e.g. "[[BATCH]] j/monitors ; j/workspaces".
func batchRequest(resources []string) string {
	parts := make([]string, len(resources))
	for i, r := range resources {
		parts[i] = "j/" + r
	}
	return "[[BATCH]] " + strings.Join(parts, " ; ")
}

// splitDocuments decodes consecutive JSON values from an unframed
// response. The decoder resumes at the byte after each balanced value,
// which also tolerates whitespace between documents and bracket pairs
// inside string literals.
func splitDocuments(response []byte) ([]json.RawMessage, error) {
	var docs []json.RawMessage
	dec := json.NewDecoder(bytes.NewReader(response))
	for dec.More() {
		var doc json.RawMessage
		if err := dec.Decode(&doc); err != nil {
			return nil, &ProtocolError{Reason: "query socket did not return valid json", Err: err}
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
