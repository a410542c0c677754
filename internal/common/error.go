package common

import (
	"encoding/json"
	"log"
	"runtime"
	"strconv"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/huffpack/huffpack/utils/helpers"
)

type CodedErrors interface {
	Message() string
	Error() string
	StatusCode() int
	Body() []byte
	String() string
}

func IsCodedErrors(err error) bool {
	_, ok := err.(CodedErrors)
	return ok
}

type codedError struct {
	Status  int    `json:"code"`
	Name    string `json:"error"`
	Msg     string `json:"message"`
	Details error  `json:"details,omitempty"`
	file    string
	line    int
}

func (e codedError) Message() string {
	return e.Msg
}

func (e codedError) Error() string {
	if e.Details == nil {
		return helpers.Concat(e.Name, ": ", e.Message())
	}
	return e.Details.Error()
}

func (e codedError) StatusCode() int {
	return e.Status
}

func (e codedError) Body() []byte {
	data, err := json.Marshal(e)
	if err != nil {
		log.Fatal(err)
	}
	return data
}

func (e codedError) String() string {
	return e.Error() + " \n" + e.file + ":" + strconv.Itoa(e.line)
}

func NewCodedError(status int, name, msg string, errs ...error) codedError {
	errs = slice.Compact(errs)
	if len(errs) <= 0 {
		return codedError{
			Status:  status,
			Name:    name,
			Msg:     msg,
			Details: nil,
		}
	}

	msg = errs[0].Error()

	return codedError{
		Status:  status,
		Name:    name,
		Msg:     msg,
		Details: errs[0],
	}
}

func BadRequestError(msg string, errs ...error) codedError {
	err := NewCodedError(400, "Bad Request", msg, errs...)
	_, file, line, _ := runtime.Caller(1)
	err.file, err.line = file, line
	return err
}

func NotFoundError(msg string, errs ...error) codedError {
	err := NewCodedError(404, "Not Found", msg, errs...)
	_, file, line, _ := runtime.Caller(1)
	err.file, err.line = file, line
	return err
}

func UnprocessableEntityError(msg string, errs ...error) codedError {
	err := NewCodedError(422, "Unprocessable Entity", msg, errs...)
	_, file, line, _ := runtime.Caller(1)
	err.file, err.line = file, line
	return err
}

func InternalServerError(msg string, errs ...error) codedError {
	err := NewCodedError(500, "Internal Server Error", msg, errs...)
	_, file, line, _ := runtime.Caller(1)
	err.file, err.line = file, line
	return err
}
