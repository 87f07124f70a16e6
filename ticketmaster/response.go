package ticketmaster

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is an error returned by the Ticketmaster Discovery API.
type Error struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	return fmt.Sprintf("%s status=%d code=%q", e.Message, e.Status, e.Code)
}

// fault is the Apigee-style error envelope the Discovery API uses for
// authentication and quota failures.
type fault struct {
	Fault struct {
		FaultString string `json:"faultstring"`
		Detail      struct {
			ErrorCode string `json:"errorcode"`
		} `json:"detail"`
	} `json:"fault"`
	// Validation failures come back as an errors array instead.
	Errors []struct {
		Code   string `json:"code"`
		Detail string `json:"detail"`
		Status string `json:"status"`
	} `json:"errors"`
}

func parseError(status int, body io.Reader) Error {
	var f fault
	if err := json.NewDecoder(body).Decode(&f); err != nil {
		return Error{Status: status, Message: fmt.Sprintf("failed to decode error: %v", err)}
	}

	if f.Fault.FaultString != "" {
		return Error{
			Status:  status,
			Code:    f.Fault.Detail.ErrorCode,
			Message: f.Fault.FaultString,
		}
	}
	if len(f.Errors) > 0 {
		return Error{
			Status:  status,
			Code:    f.Errors[0].Code,
			Message: f.Errors[0].Detail,
		}
	}
	return Error{Status: status, Message: "ticketmaster request failed"}
}

// IsNotFound returns true if the error is an upstream "no such event"
// response.
func IsNotFound(err error) bool {
	e, ok := err.(Error)
	if !ok {
		return false
	}
	return e.Status == 404
}
